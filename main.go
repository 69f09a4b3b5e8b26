package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"monipee-hotel/config"
	"monipee-hotel/controllers"
	"monipee-hotel/jobs"
	"monipee-hotel/routes"
	"monipee-hotel/services"
	"monipee-hotel/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	config.SetupLogging(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	decimal.MarshalJSONWithoutQuotes = true

	backend, err := config.OpenStorage(cfg)
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.StorageDriver).Fatal("storage connect failed")
	}
	store := services.NewStore(backend)
	defer func() {
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("storage close failed")
		}
	}()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	err = store.Init(initCtx)
	cancelInit()
	if err != nil {
		logrus.WithError(err).Fatal("store initialization failed")
	}
	logrus.WithField("driver", cfg.StorageDriver).Info("storage ready")

	mailer := utils.NewMailer(utils.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
	})
	if !mailer.Configured() {
		logrus.Warn("SMTP is not configured; emails will only be logged")
	}

	// Services
	authService := services.NewAuthService(store, mailer, services.AuthOptions{
		SessionTTL:    cfg.SessionTTL,
		ResetTokenTTL: cfg.ResetTokenTTL,
		FrontendURL:   cfg.FrontendURL,
	})
	settingsService := services.NewSettingsService(store)
	roomService := services.NewRoomService(store)
	bookingService := services.NewBookingService(store, roomService, settingsService, mailer)
	roomReviewService := services.NewRoomReviewService(store, settingsService)

	handlers := routes.Handlers{
		Auth:         controllers.NewAuthController(authService),
		Bookings:     controllers.NewBookingController(bookingService),
		Rooms:        controllers.NewRoomController(roomService, roomReviewService),
		Reviews:      controllers.NewReviewController(services.NewReviewService(store)),
		Messages:     controllers.NewMessageController(services.NewMessageService(store)),
		Users:        controllers.NewUserController(services.NewUserService(store)),
		Gallery:      controllers.NewGalleryController(services.NewGalleryService(store)),
		Content:      controllers.NewContentController(services.NewContentService(store)),
		Settings:     controllers.NewSettingsController(settingsService),
		Dashboard:    controllers.NewDashboardController(services.NewDashboardService(store)),
		Integrations: controllers.NewIntegrationsController(cfg.TawkPropertyID, cfg.TawkWidgetID),
	}
	router := routes.SetupRouter(cfg, authService, settingsService, handlers)

	c := cron.New()
	if err := jobs.InitCronJobs(c, cfg.PurgeSchedule, authService); err != nil {
		logrus.WithError(err).WithField("schedule", cfg.PurgeSchedule).Fatal("cron setup failed")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received")

	<-c.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("server forced to shutdown")
		return
	}
	logrus.Info("server stopped gracefully")
}
