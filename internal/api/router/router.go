package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yasiralharfash/chronos/config"
	"github.com/yasiralharfash/chronos/internal/api/handler"
	"github.com/yasiralharfash/chronos/internal/api/middleware"
	"github.com/yasiralharfash/chronos/pkg/jwt"
	"github.com/yasiralharfash/chronos/pkg/redis"
)

const (
	maxBodyBytes = 1 << 20 // 1 MiB

	authRateLimit  = 20
	authRateWindow = time.Minute
)

// Setup builds the gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth endpoints (no token required, rate limited)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, authRateLimit, authRateWindow))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// public invitation check for the join page
		v1.GET("/invitations/validate/:token",
			middleware.RateLimit(rdb, authRateLimit, authRateWindow),
			h.Invitation.Validate)

		// everything below requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// session and current user
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/users/me", h.Auth.Me)
			authorized.POST("/users/me/change-password", h.Auth.ChangePassword)

			// company
			authorized.POST("/company/setup", h.Company.Setup)
			authorized.GET("/company", h.Company.Get)
			authorized.PUT("/company", middleware.RoleAuth("owner", "admin"), h.Company.Update)

			// clock workflow (every authenticated employee)
			clock := authorized.Group("/clock")
			{
				clock.GET("/status", h.Clock.Status)
				clock.POST("/in", h.Clock.ClockIn)
				clock.POST("/out", h.Clock.ClockOut)
				clock.POST("/break/start", h.Clock.StartBreak)
				clock.POST("/break/end", h.Clock.EndBreak)
			}

			// employee management
			employees := authorized.Group("/employees")
			employees.Use(middleware.RoleAuth("owner", "admin"))
			{
				employees.GET("", h.User.List)
				employees.GET("/:id", h.User.Get)
				employees.PUT("/:id", h.User.Update)
				employees.DELETE("/:id", h.User.Deactivate)
				employees.POST("/preregister", h.User.Preregister)
			}

			// departments
			departments := authorized.Group("/departments")
			{
				departments.GET("", h.Department.List)
				departments.GET("/:id", h.Department.Get)
				departments.POST("", middleware.RoleAuth("owner", "admin"), h.Department.Create)
				departments.PUT("/:id", middleware.RoleAuth("owner", "admin"), h.Department.Update)
				departments.DELETE("/:id", middleware.RoleAuth("owner", "admin"), h.Department.Delete)
			}

			// projects
			projects := authorized.Group("/projects")
			{
				projects.GET("", h.Project.List)
				projects.GET("/:id", h.Project.Get)
				projects.POST("", middleware.RoleAuth("owner", "admin"), h.Project.Create)
				projects.PUT("/:id", middleware.RoleAuth("owner", "admin"), h.Project.Update)
				projects.DELETE("/:id", middleware.RoleAuth("owner", "admin"), h.Project.Delete)
			}

			// geofences
			geofences := authorized.Group("/geofences")
			{
				geofences.GET("", h.Geofence.List)
				geofences.GET("/:id", h.Geofence.Get)
				geofences.POST("", middleware.RoleAuth("owner", "admin"), h.Geofence.Create)
				geofences.PUT("/:id", middleware.RoleAuth("owner", "admin"), h.Geofence.Update)
				geofences.DELETE("/:id", middleware.RoleAuth("owner", "admin"), h.Geofence.Delete)
			}

			// timesheets
			timesheets := authorized.Group("/timesheets")
			{
				timesheets.GET("/mine", h.Timesheet.ListMine)
				timesheets.GET("", middleware.RoleAuth("owner", "admin", "manager"), h.Timesheet.List)
				timesheets.GET("/live", middleware.RoleAuth("owner", "admin", "manager"), h.Timesheet.LiveStatus)
				timesheets.GET("/:id", middleware.RoleAuth("owner", "admin", "manager"), h.Timesheet.Get)
				timesheets.PUT("/:id", middleware.RoleAuth("owner", "admin"), h.Timesheet.Update)
			}

			// schedules
			schedules := authorized.Group("/schedules")
			{
				schedules.GET("/mine", h.Schedule.ListMine)
				schedules.GET("", middleware.RoleAuth("owner", "admin", "manager"), h.Schedule.List)
				schedules.POST("", middleware.RoleAuth("owner", "admin", "manager"), h.Schedule.Create)
				schedules.DELETE("/:id", middleware.RoleAuth("owner", "admin", "manager"), h.Schedule.Delete)
			}

			// time off
			timeOff := authorized.Group("/time-off")
			{
				timeOff.POST("", h.TimeOff.Create)
				timeOff.GET("/mine", h.TimeOff.ListMine)
				timeOff.GET("", middleware.RoleAuth("owner", "admin", "manager"), h.TimeOff.List)
				timeOff.PUT("/:id/review", middleware.RoleAuth("owner", "admin", "manager"), h.TimeOff.Review)
			}

			// invitations
			invitations := authorized.Group("/invitations")
			invitations.Use(middleware.RoleAuth("owner", "admin"))
			{
				invitations.POST("", h.Invitation.Invite)
				invitations.GET("", h.Invitation.ListPending)
				invitations.DELETE("/:id", h.Invitation.Revoke)
			}

			// reports
			reports := authorized.Group("/reports")
			reports.Use(middleware.RoleAuth("owner", "admin"))
			{
				reports.GET("/summary", h.Report.Summary)
				reports.GET("/export", h.Report.Export)
			}
		}
	}

	return r
}
