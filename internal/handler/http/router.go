package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftline/shiftline-backend-go/internal/config"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/middleware"
)

type Handlers struct {
	User         *UserHandler
	WorkRole     *WorkRoleHandler
	Shift        *ShiftHandler
	Attendance   *AttendanceHandler
	Callout      *CalloutHandler
	Swap         *SwapHandler
	TimeOff      *TimeOffHandler
	Availability *AvailabilityHandler
	Notification *NotificationHandler
	Onboarding   *OnboardingHandler
	Settings     *SettingsHandler
}

func NewRouter(cfg *config.Config, verifier *jwtauth.JWTAuth, users user.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftline"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(verifier))
		r.Use(middleware.AuthRequired)
		r.Use(middleware.ResolveIdentity(users, cfg.Auth.RoleClaim))

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.Shift.List)
			r.Get("/my", h.Shift.My)
			r.Get("/next", h.Shift.Next)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionManageShifts))
				r.Post("/", h.Shift.Create)
				r.Put("/{id}", h.Shift.Update)
				r.Delete("/{id}", h.Shift.Delete)
			})

			r.With(middleware.RequirePermission(user.PermissionPublishShifts)).
				Post("/publish", h.Shift.Publish)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clockin", h.Attendance.ClockIn)
			r.Post("/clockout", h.Attendance.ClockOut)
			r.Get("/shift/{shiftID}", h.Attendance.GetForShift)

			r.With(middleware.RequirePermission(user.PermissionViewTodayBoard)).
				Get("/today", h.Attendance.Today)
		})

		r.Route("/callouts", func(r chi.Router) {
			r.Post("/", h.Callout.Create)
			r.Get("/open", h.Callout.ListOpen)
			r.Get("/user/{userID}", h.Callout.ListByUser)
		})

		r.Route("/shift-swaps", func(r chi.Router) {
			r.Get("/", h.Swap.List)
			r.Post("/", h.Swap.Create)
			r.Patch("/{id}/claim", h.Swap.Claim)
			r.Delete("/{id}", h.Swap.Cancel)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReviewRequests))
				r.Patch("/{id}/approve", h.Swap.Approve)
				r.Patch("/{id}/deny", h.Swap.Deny)
			})
		})

		r.Route("/time-off", func(r chi.Router) {
			r.Get("/", h.TimeOff.List)
			r.Post("/", h.TimeOff.Create)
			r.Delete("/{id}", h.TimeOff.Cancel)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReviewRequests))
				r.Patch("/{id}/approve", h.TimeOff.Approve)
				r.Patch("/{id}/deny", h.TimeOff.Deny)
			})
		})

		r.Route("/availability-changes", func(r chi.Router) {
			r.Get("/", h.Availability.List)
			r.Post("/", h.Availability.Submit)
			r.Delete("/{id}", h.Availability.Cancel)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReviewRequests))
				r.Patch("/{id}/approve", h.Availability.Approve)
				r.Patch("/{id}/deny", h.Availability.Deny)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notification.List)
			r.Get("/unread/count", h.Notification.UnreadCount)
			r.Patch("/{id}/read", h.Notification.MarkRead)
			r.Patch("/read-all", h.Notification.MarkAllRead)
			r.Delete("/{id}", h.Notification.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", h.User.Me)
			r.Get("/{id}", h.User.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionManageUsers))
				r.Get("/", h.User.List)
				r.Patch("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})
		})

		r.With(middleware.RequirePermission(user.PermissionManageUsers)).
			Post("/admin/sync-users", h.User.SyncUsers)

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", h.WorkRole.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionManageWorkRoles))
				r.Post("/", h.WorkRole.Create)
				r.Put("/{id}", h.WorkRole.Update)
				r.Delete("/{id}", h.WorkRole.Delete)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/business", h.Settings.GetBusiness)

			r.With(middleware.RequirePermission(user.PermissionManageSettings)).
				Post("/business", h.Settings.UpdateBusiness)
		})

		r.Route("/onboarding", func(r chi.Router) {
			r.Get("/progress", h.Onboarding.Get)
			r.Patch("/progress", h.Onboarding.RecordStep)
			r.Post("/complete", h.Onboarding.Complete)
			r.Post("/skip", h.Onboarding.Skip)
			r.Post("/reset", h.Onboarding.Reset)
		})
	})

	return r
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
