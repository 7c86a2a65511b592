package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/okan-kantar/portfolio-backend/internal/api"
	"github.com/okan-kantar/portfolio-backend/internal/mailer"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
	"github.com/okan-kantar/portfolio-backend/internal/services"
	"github.com/okan-kantar/portfolio-backend/pkg/config"
	"github.com/okan-kantar/portfolio-backend/pkg/database"
	"github.com/okan-kantar/portfolio-backend/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting portfolio backend",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	personalInfo := repository.NewPersonalInfoRepository(db)
	siteSettings := repository.NewSiteSettingsRepository(db)
	education := repository.NewEducationRepository(db)
	experience := repository.NewExperienceRepository(db)
	skills := repository.NewSkillRepository(db)
	projects := repository.NewProjectRepository(db)
	certificates := repository.NewCertificateRepository(db)
	messages := repository.NewContactMessageRepository(db)

	var mail mailer.Mailer
	if cfg.SMTPConfigured() {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
		log.Info("contact notifications enabled", zap.String("smtp_host", cfg.SMTPHost))
	} else {
		log.Warn("SMTP not configured, contact notifications disabled")
	}

	router := api.NewRouter(api.Deps{
		Config:       cfg,
		DB:           db,
		Pages:        services.NewPagesService(personalInfo, siteSettings, education, experience, skills, projects, certificates),
		Contact:      services.NewContactService(messages, personalInfo, mail, cfg.NotifyTimeout),
		PersonalInfo: personalInfo,
		SiteSettings: siteSettings,
		Education:    education,
		Experience:   experience,
		Skills:       skills,
		Projects:     projects,
		Certificates: certificates,
		Messages:     messages,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
