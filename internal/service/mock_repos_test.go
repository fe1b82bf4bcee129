package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/model"
	"github.com/yasiralharfash/chronos/internal/repository"
)

// ── Mock CompanyRepository ──

type mockCompanyRepo struct {
	companies map[string]*model.Company
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: make(map[string]*model.Company)}
}

func (m *mockCompanyRepo) Create(_ context.Context, company *model.Company) error {
	if company.CompanyID == "" {
		company.CompanyID = "co-" + company.Name
	}
	m.companies[company.CompanyID] = company
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id string) (*model.Company, error) {
	if c, ok := m.companies[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) GetByOwnerEmail(_ context.Context, email string) (*model.Company, error) {
	for _, c := range m.companies {
		if c.OwnerEmail == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) Update(_ context.Context, company *model.Company) error {
	m.companies[company.CompanyID] = company
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "u-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			result = append(result, *u)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) ListAllByCompany(_ context.Context, companyID string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	departments map[string]*model.Department
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{departments: make(map[string]*model.Department)}
}

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.DepartmentID == "" {
		dept.DepartmentID = "dept-" + dept.Name
	}
	m.departments[dept.DepartmentID] = dept
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) List(_ context.Context, companyID string, includeInactive bool) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.departments {
		if d.CompanyID != companyID {
			continue
		}
		if !includeInactive && !d.IsActive {
			continue
		}
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDeptRepo) Update(_ context.Context, dept *model.Department) error {
	m.departments[dept.DepartmentID] = dept
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id string) error {
	delete(m.departments, id)
	return nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[string]*model.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*model.Project)}
}

func (m *mockProjectRepo) Create(_ context.Context, project *model.Project) error {
	if project.ProjectID == "" {
		project.ProjectID = "proj-" + project.Name
	}
	m.projects[project.ProjectID] = project
	return nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id string) (*model.Project, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectRepo) List(_ context.Context, companyID string, status string) ([]model.Project, error) {
	var result []model.Project
	for _, p := range m.projects {
		if p.CompanyID != companyID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockProjectRepo) Update(_ context.Context, project *model.Project) error {
	m.projects[project.ProjectID] = project
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id string) error {
	delete(m.projects, id)
	return nil
}

// ── Mock GeofenceRepository ──

type mockGeofenceRepo struct {
	fences  map[string]*model.GeofenceLocation
	listErr error
}

func newMockGeofenceRepo() *mockGeofenceRepo {
	return &mockGeofenceRepo{fences: make(map[string]*model.GeofenceLocation)}
}

func (m *mockGeofenceRepo) Create(_ context.Context, fence *model.GeofenceLocation) error {
	if fence.GeofenceID == "" {
		fence.GeofenceID = "geo-" + fence.Name
	}
	m.fences[fence.GeofenceID] = fence
	return nil
}

func (m *mockGeofenceRepo) GetByID(_ context.Context, id string) (*model.GeofenceLocation, error) {
	if f, ok := m.fences[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGeofenceRepo) List(_ context.Context, companyID string, includeInactive bool) ([]model.GeofenceLocation, error) {
	var result []model.GeofenceLocation
	for _, f := range m.fences {
		if f.CompanyID != companyID {
			continue
		}
		if !includeInactive && !f.IsActive {
			continue
		}
		result = append(result, *f)
	}
	return result, nil
}

func (m *mockGeofenceRepo) ListActive(_ context.Context, companyID string) ([]model.GeofenceLocation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.GeofenceLocation
	for _, f := range m.fences {
		if f.CompanyID == companyID && f.IsActive {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (m *mockGeofenceRepo) Update(_ context.Context, fence *model.GeofenceLocation) error {
	m.fences[fence.GeofenceID] = fence
	return nil
}

func (m *mockGeofenceRepo) Delete(_ context.Context, id string) error {
	delete(m.fences, id)
	return nil
}

// ── Mock TimeEntryRepository ──

type mockTimeEntryRepo struct {
	entries   map[string]*model.TimeEntry
	nextID    int
	createErr error
	updateErr error
}

func newMockTimeEntryRepo() *mockTimeEntryRepo {
	return &mockTimeEntryRepo{entries: make(map[string]*model.TimeEntry)}
}

func (m *mockTimeEntryRepo) Create(_ context.Context, entry *model.TimeEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	if entry.TimeEntryID == "" {
		m.nextID++
		entry.TimeEntryID = fmt.Sprintf("te-%d", m.nextID)
	}
	clone := *entry
	m.entries[entry.TimeEntryID] = &clone
	return nil
}

func (m *mockTimeEntryRepo) GetByID(_ context.Context, id string) (*model.TimeEntry, error) {
	if e, ok := m.entries[id]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeEntryRepo) GetOpenByUser(_ context.Context, userEmail string) (*model.TimeEntry, error) {
	for _, e := range m.entries {
		if e.UserEmail == userEmail && e.ClockOut == nil {
			clone := *e
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeEntryRepo) Update(_ context.Context, entry *model.TimeEntry) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	clone := *entry
	m.entries[entry.TimeEntryID] = &clone
	return nil
}

func (m *mockTimeEntryRepo) List(_ context.Context, companyID string, filter repository.TimeEntryFilter) ([]model.TimeEntry, int64, error) {
	var result []model.TimeEntry
	for _, e := range m.entries {
		if e.CompanyID != companyID {
			continue
		}
		if filter.UserEmail != "" && e.UserEmail != filter.UserEmail {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.From != nil && e.ClockIn.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !e.ClockIn.Before(*filter.To) {
			continue
		}
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

func (m *mockTimeEntryRepo) ListRange(_ context.Context, companyID string, from, to *time.Time) ([]model.TimeEntry, error) {
	var result []model.TimeEntry
	for _, e := range m.entries {
		if e.CompanyID != companyID || e.ClockOut == nil {
			continue
		}
		if from != nil && e.ClockIn.Before(*from) {
			continue
		}
		if to != nil && !e.ClockIn.Before(*to) {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockTimeEntryRepo) ListOpenByCompany(_ context.Context, companyID string) ([]model.TimeEntry, error) {
	var result []model.TimeEntry
	for _, e := range m.entries {
		if e.CompanyID == companyID && e.ClockOut == nil {
			result = append(result, *e)
		}
	}
	return result, nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[string]*model.Schedule
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[string]*model.Schedule)}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	if schedule.ScheduleID == "" {
		schedule.ScheduleID = fmt.Sprintf("sch-%d", len(m.schedules)+1)
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) List(_ context.Context, companyID string, from, to *time.Time, userEmail string) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, s := range m.schedules {
		if s.CompanyID != companyID {
			continue
		}
		if from != nil && s.Date.Before(*from) {
			continue
		}
		if to != nil && s.Date.After(*to) {
			continue
		}
		if userEmail != "" && s.UserEmail != userEmail {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

// ── Mock TimeOffRepository ──

type mockTimeOffRepo struct {
	requests map[string]*model.TimeOffRequest
}

func newMockTimeOffRepo() *mockTimeOffRepo {
	return &mockTimeOffRepo{requests: make(map[string]*model.TimeOffRequest)}
}

func (m *mockTimeOffRepo) Create(_ context.Context, req *model.TimeOffRequest) error {
	if req.TimeOffRequestID == "" {
		req.TimeOffRequestID = fmt.Sprintf("to-%d", len(m.requests)+1)
	}
	m.requests[req.TimeOffRequestID] = req
	return nil
}

func (m *mockTimeOffRepo) GetByID(_ context.Context, id string) (*model.TimeOffRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeOffRepo) ListByCompany(_ context.Context, companyID string, status string) ([]model.TimeOffRequest, error) {
	var result []model.TimeOffRequest
	for _, r := range m.requests {
		if r.CompanyID != companyID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockTimeOffRepo) ListByUser(_ context.Context, userEmail string) ([]model.TimeOffRequest, error) {
	var result []model.TimeOffRequest
	for _, r := range m.requests {
		if r.UserEmail == userEmail {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockTimeOffRepo) Update(_ context.Context, req *model.TimeOffRequest) error {
	m.requests[req.TimeOffRequestID] = req
	return nil
}

// ── Mock InvitationRepository ──

type mockInvitationRepo struct {
	invitations map[string]*model.Invitation
}

func newMockInvitationRepo() *mockInvitationRepo {
	return &mockInvitationRepo{invitations: make(map[string]*model.Invitation)}
}

func (m *mockInvitationRepo) Create(_ context.Context, inv *model.Invitation) error {
	if inv.InvitationID == "" {
		inv.InvitationID = fmt.Sprintf("inv-%d", len(m.invitations)+1)
	}
	m.invitations[inv.InvitationID] = inv
	return nil
}

func (m *mockInvitationRepo) GetByID(_ context.Context, id string) (*model.Invitation, error) {
	if i, ok := m.invitations[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInvitationRepo) GetByToken(_ context.Context, token string) (*model.Invitation, error) {
	for _, i := range m.invitations {
		if i.InvitationToken == token {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInvitationRepo) ListPending(_ context.Context, companyID string) ([]model.Invitation, error) {
	var result []model.Invitation
	for _, i := range m.invitations {
		if i.CompanyID == companyID && i.Status == model.InvitationStatusPending {
			result = append(result, *i)
		}
	}
	return result, nil
}

func (m *mockInvitationRepo) Update(_ context.Context, inv *model.Invitation) error {
	m.invitations[inv.InvitationID] = inv
	return nil
}

// ── Mock PreregisteredRepository ──

type mockPreregisteredRepo struct {
	employees map[string]*model.PreregisteredEmployee
}

func newMockPreregisteredRepo() *mockPreregisteredRepo {
	return &mockPreregisteredRepo{employees: make(map[string]*model.PreregisteredEmployee)}
}

func (m *mockPreregisteredRepo) Create(_ context.Context, emp *model.PreregisteredEmployee) error {
	if emp.PreregisteredID == "" {
		emp.PreregisteredID = fmt.Sprintf("pre-%d", len(m.employees)+1)
	}
	m.employees[emp.PreregisteredID] = emp
	return nil
}

func (m *mockPreregisteredRepo) GetPendingByEmail(_ context.Context, companyID, email string) (*model.PreregisteredEmployee, error) {
	for _, e := range m.employees {
		if e.CompanyID == companyID && e.Email == email && e.Status == model.PreregStatusPending {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPreregisteredRepo) List(_ context.Context, companyID string) ([]model.PreregisteredEmployee, error) {
	var result []model.PreregisteredEmployee
	for _, e := range m.employees {
		if e.CompanyID == companyID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockPreregisteredRepo) Update(_ context.Context, emp *model.PreregisteredEmployee) error {
	m.employees[emp.PreregisteredID] = emp
	return nil
}

// ── shared wiring ──

func newMockRepository() (*repository.Repository, *mockTimeEntryRepo, *mockGeofenceRepo, *mockUserRepo) {
	timeEntryRepo := newMockTimeEntryRepo()
	geofenceRepo := newMockGeofenceRepo()
	userRepo := newMockUserRepo()
	repo := &repository.Repository{
		Company:       newMockCompanyRepo(),
		User:          userRepo,
		Department:    newMockDeptRepo(),
		Project:       newMockProjectRepo(),
		Geofence:      geofenceRepo,
		TimeEntry:     timeEntryRepo,
		Schedule:      newMockScheduleRepo(),
		TimeOff:       newMockTimeOffRepo(),
		Invitation:    newMockInvitationRepo(),
		Preregistered: newMockPreregisteredRepo(),
	}
	return repo, timeEntryRepo, geofenceRepo, userRepo
}
