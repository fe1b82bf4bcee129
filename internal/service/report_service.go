package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/model"
	"github.com/yasiralharfash/chronos/internal/repository"
)

// exportColumns is the header row shared by the CSV and XLSX exports.
var exportColumns = []string{
	"Employee", "Date", "Clock In", "Clock Out", "Hours",
	"Department", "Hourly Rate", "Cost",
}

// ReportService aggregates closed time entries into summaries and exports.
// Labor cost is hours times the employee's current hourly rate.
type ReportService interface {
	Summary(ctx context.Context, companyID string, req *dto.ReportRequest) (*dto.ReportSummaryResponse, error)
	// Export renders the entries in the range as a downloadable file and
	// returns the content plus a suggested filename.
	Export(ctx context.Context, companyID string, req *dto.ExportRequest) (*bytes.Buffer, string, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService creates a ReportService.
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// ────────────────────── Summary ──────────────────────

func (s *reportService) Summary(ctx context.Context, companyID string, req *dto.ReportRequest) (*dto.ReportSummaryResponse, error) {
	entries, users, departments, err := s.load(ctx, companyID, req.From, req.To)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReportSummaryResponse{
		From:         req.From,
		To:           req.To,
		EntryCount:   len(entries),
		ByEmployee:   []dto.EmployeeHours{},
		ByDepartment: []dto.DepartmentHours{},
	}

	byEmployee := make(map[string]*dto.EmployeeHours)
	byDepartment := make(map[string]*dto.DepartmentHours)

	for i := range entries {
		e := &entries[i]
		if e.TotalHours == nil {
			continue
		}
		hours := *e.TotalHours

		var rate float64
		var deptID string
		user, known := users[e.UserEmail]
		if known {
			rate = user.HourlyRate
			if user.DepartmentID != nil {
				deptID = *user.DepartmentID
			}
		}
		cost := round2(hours * rate)

		resp.TotalHours += hours
		resp.TotalCost += cost

		emp, ok := byEmployee[e.UserEmail]
		if !ok {
			emp = &dto.EmployeeHours{UserEmail: e.UserEmail}
			if known {
				emp.FullName = user.FullName
			}
			byEmployee[e.UserEmail] = emp
		}
		emp.Hours = round2(emp.Hours + hours)
		emp.Cost = round2(emp.Cost + cost)

		if deptID != "" {
			dept, ok := byDepartment[deptID]
			if !ok {
				dept = &dto.DepartmentHours{DepartmentID: deptID, Name: departments[deptID]}
				byDepartment[deptID] = dept
			}
			dept.Hours = round2(dept.Hours + hours)
		}
	}

	resp.TotalHours = round2(resp.TotalHours)
	resp.TotalCost = round2(resp.TotalCost)

	for _, emp := range byEmployee {
		resp.ByEmployee = append(resp.ByEmployee, *emp)
	}
	sort.Slice(resp.ByEmployee, func(i, j int) bool {
		return resp.ByEmployee[i].Hours > resp.ByEmployee[j].Hours
	})

	for _, dept := range byDepartment {
		resp.ByDepartment = append(resp.ByDepartment, *dept)
	}
	sort.Slice(resp.ByDepartment, func(i, j int) bool {
		return resp.ByDepartment[i].Hours > resp.ByDepartment[j].Hours
	})

	return resp, nil
}

// ────────────────────── Export ──────────────────────

func (s *reportService) Export(ctx context.Context, companyID string, req *dto.ExportRequest) (*bytes.Buffer, string, error) {
	entries, users, departments, err := s.load(ctx, companyID, req.From, req.To)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]string, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.ClockOut == nil {
			continue
		}

		var name, deptName string
		var rate float64
		if user, ok := users[e.UserEmail]; ok {
			name = user.FullName
			rate = user.HourlyRate
			if user.DepartmentID != nil {
				deptName = departments[*user.DepartmentID]
			}
		}
		if name == "" {
			name = e.UserEmail
		}

		var hours float64
		if e.TotalHours != nil {
			hours = *e.TotalHours
		}

		rows = append(rows, []string{
			name,
			e.ClockIn.UTC().Format("2006-01-02"),
			e.ClockIn.UTC().Format("15:04"),
			e.ClockOut.UTC().Format("15:04"),
			strconv.FormatFloat(hours, 'f', 2, 64),
			deptName,
			strconv.FormatFloat(rate, 'f', 2, 64),
			strconv.FormatFloat(round2(hours*rate), 'f', 2, 64),
		})
	}

	stamp := time.Now().UTC().Format("20060102")

	switch req.Format {
	case "xlsx":
		buf, err := s.writeXLSX(rows)
		if err != nil {
			s.logger.Error("render xlsx failed", zap.Error(err))
			return nil, "", err
		}
		return buf, fmt.Sprintf("timesheet_%s.xlsx", stamp), nil
	default:
		buf, err := writeCSV(rows)
		if err != nil {
			s.logger.Error("render csv failed", zap.Error(err))
			return nil, "", err
		}
		return buf, fmt.Sprintf("timesheet_%s.csv", stamp), nil
	}
}

// ── renderers ──

func writeCSV(rows [][]string) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf, nil
}

func (s *reportService) writeXLSX(rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timesheet"
	f.SetSheetName("Sheet1", sheet)

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	for col, title := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// ── shared loading ──

// load fetches the closed entries in the range plus the user and department
// lookups used to decorate them.
func (s *reportService) load(ctx context.Context, companyID, fromStr, toStr string) ([]model.TimeEntry, map[string]*model.User, map[string]string, error) {
	from, to, err := parseDateRange(fromStr, toStr)
	if err != nil {
		return nil, nil, nil, err
	}
	if to != nil {
		t := to.AddDate(0, 0, 1)
		to = &t
	}

	entries, err := s.repo.TimeEntry.ListRange(ctx, companyID, from, to)
	if err != nil {
		s.logger.Error("list entries for report failed", zap.Error(err))
		return nil, nil, nil, err
	}

	allUsers, err := s.repo.User.ListAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list users for report failed", zap.Error(err))
		return nil, nil, nil, err
	}
	users := make(map[string]*model.User, len(allUsers))
	for i := range allUsers {
		users[allUsers[i].Email] = &allUsers[i]
	}

	depts, err := s.repo.Department.List(ctx, companyID, true)
	if err != nil {
		s.logger.Error("list departments for report failed", zap.Error(err))
		return nil, nil, nil, err
	}
	departments := make(map[string]string, len(depts))
	for _, d := range depts {
		departments[d.DepartmentID] = d.Name
	}

	return entries, users, departments, nil
}
