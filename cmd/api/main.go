package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/la121/consultants-api/internal/auth"
	"github.com/la121/consultants-api/internal/config"
	"github.com/la121/consultants-api/internal/database"
	"github.com/la121/consultants-api/internal/handler"
	"github.com/la121/consultants-api/internal/mailer"
	middlewarepkg "github.com/la121/consultants-api/internal/middleware"
	"github.com/la121/consultants-api/internal/payments"
	"github.com/la121/consultants-api/internal/repository"
	"github.com/la121/consultants-api/internal/router"
	"github.com/la121/consultants-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	usersRepo := repository.NewPGXUsersRepository(pool)
	profilesRepo := repository.NewPGXProfilesRepository(pool)
	submissionsRepo := repository.NewPGXSubmissionsRepository(pool)
	jobsRepo := repository.NewPGXJobsRepository(pool)
	reviewsRepo := repository.NewPGXReviewsRepository(pool)
	ebooksRepo := repository.NewPGXEbooksRepository(pool)
	blogRepo := repository.NewPGXBlogRepository(pool)

	httpClient := &http.Client{Timeout: 15 * time.Second}

	var sender mailer.Sender
	if cfg.ResendAPIKey != "" && len(cfg.PartnershipNotifyTo) > 0 {
		sender = mailer.NewResendClient(httpClient, "", cfg.ResendAPIKey, cfg.EmailFrom, cfg.PartnershipNotifyTo)
	} else {
		log.Print("partnership notifications disabled: RESEND_API_KEY or PARTNERSHIP_NOTIFY_TO not set")
	}

	var checkout service.CheckoutCreator
	if cfg.StripeSecretKey != "" {
		checkout = payments.NewStripeClient(httpClient, "", cfg.StripeSecretKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	} else {
		log.Print("ebook checkout disabled: STRIPE_SECRET_KEY not set")
	}

	authService := service.NewAuthService(usersRepo, jwtManager)
	userService := service.NewUserService(usersRepo)
	intakeService := service.NewIntakeService(profilesRepo, submissionsRepo, sender, cfg.PhoneRegion)
	jobsService := service.NewJobsService(jobsRepo)
	reviewsService := service.NewReviewsService(reviewsRepo)
	ebooksService := service.NewEbooksService(ebooksRepo, checkout)
	blogService := service.NewBlogService(blogRepo)
	statsService := service.NewStatsService(profilesRepo, submissionsRepo, jobsRepo, reviewsRepo)

	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Users:       handler.NewUserAdminHandler(userService),
		Forms:       handler.NewFormsHandler(intakeService),
		Submissions: handler.NewSubmissionsAdminHandler(intakeService),
		Jobs:        handler.NewJobsHandler(jobsService),
		JobsAdmin:   handler.NewJobsAdminHandler(jobsService),
		Reviews:     handler.NewReviewsHandler(reviewsService),
		Ebooks:      handler.NewEbooksHandler(ebooksService),
		Blog:        handler.NewBlogHandler(blogService),
		Stats:       handler.NewStatsHandler(statsService),
	}
	if sender != nil {
		handlers.PartnershipEmail = handler.NewPartnershipEmailHandler(sender)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
