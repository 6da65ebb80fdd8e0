package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/config"
	appHTTP "github.com/shiftline/shiftline-backend-go/internal/handler/http"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/middleware"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sms"
	"github.com/shiftline/shiftline-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftline/shiftline-backend-go/internal/service/attendance"
	availabilityService "github.com/shiftline/shiftline-backend-go/internal/service/availability"
	calloutService "github.com/shiftline/shiftline-backend-go/internal/service/callout"
	notificationService "github.com/shiftline/shiftline-backend-go/internal/service/notification"
	onboardingService "github.com/shiftline/shiftline-backend-go/internal/service/onboarding"
	"github.com/shiftline/shiftline-backend-go/internal/service/reminder"
	settingsService "github.com/shiftline/shiftline-backend-go/internal/service/settings"
	shiftService "github.com/shiftline/shiftline-backend-go/internal/service/shift"
	swapService "github.com/shiftline/shiftline-backend-go/internal/service/swap"
	timeoffService "github.com/shiftline/shiftline-backend-go/internal/service/timeoff"
	userService "github.com/shiftline/shiftline-backend-go/internal/service/user"
	workroleService "github.com/shiftline/shiftline-backend-go/internal/service/workrole"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	if loc, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		time.Local = loc
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "shiftline"),
	)

	userRepo := postgresql.NewUserRepository(db)
	workRoleRepo := postgresql.NewWorkRoleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	calloutRepo := postgresql.NewCalloutRepository(db)
	swapRepo := postgresql.NewSwapRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	availabilityRepo := postgresql.NewAvailabilityRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	onboardingRepo := postgresql.NewOnboardingRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	var gateway sms.Gateway = sms.NoopGateway{}
	if cfg.SMS.AccountSID != "" {
		gateway = sms.NewTwilioGateway(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromNumber)
	}

	notifier := notificationService.NewNotificationService(notificationRepo, userRepo, gateway, logger, notificationService.Config{})

	users := userService.NewUserService(userRepo, cfg.Admin.SyncTokenHash)
	workRoles := workroleService.NewWorkRoleService(workRoleRepo)
	shifts := shiftService.NewShiftService(shiftRepo, notifier, db)
	attendances := attendanceService.NewAttendanceService(attendanceRepo, shiftRepo, db)
	callouts := calloutService.NewCalloutService(calloutRepo, shiftRepo, workRoleRepo, userRepo, notifier, db)
	swaps := swapService.NewSwapService(swapRepo, shiftRepo, notifier, db)
	timeOffs := timeoffService.NewTimeOffService(timeOffRepo, notifier)
	availabilities := availabilityService.NewAvailabilityService(availabilityRepo, userRepo, db)
	onboardings := onboardingService.NewOnboardingService(onboardingRepo)
	businessSettings := settingsService.NewSettingsService(settingsRepo)

	sweeper := reminder.NewSweeper(shiftRepo, attendanceRepo, userRepo, notifier, logger)
	if err := sweeper.Start(); err != nil {
		log.Fatal("Failed to start reminder sweeper:", err)
	}

	verifier, err := middleware.NewVerifier(cfg.Auth)
	if err != nil {
		log.Fatal("Failed to build token verifier:", err)
	}

	router := appHTTP.NewRouter(cfg, verifier, users, appHTTP.Handlers{
		User:         appHTTP.NewUserHandler(users),
		WorkRole:     appHTTP.NewWorkRoleHandler(workRoles),
		Shift:        appHTTP.NewShiftHandler(shifts),
		Attendance:   appHTTP.NewAttendanceHandler(attendances),
		Callout:      appHTTP.NewCalloutHandler(callouts),
		Swap:         appHTTP.NewSwapHandler(swaps),
		TimeOff:      appHTTP.NewTimeOffHandler(timeOffs),
		Availability: appHTTP.NewAvailabilityHandler(availabilities),
		Notification: appHTTP.NewNotificationHandler(notifier),
		Onboarding:   appHTTP.NewOnboardingHandler(onboardings),
		Settings:     appHTTP.NewSettingsHandler(businessSettings),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", slog.Any("error", err))
	}

	sweeper.Stop()
	notifier.Stop()
}
