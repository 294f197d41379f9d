package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/neumorstudio/plantillas-api/internal/config"
	"github.com/neumorstudio/plantillas-api/internal/handler"
	availabilityHandler "github.com/neumorstudio/plantillas-api/internal/handler/availability"
	bookingHandler "github.com/neumorstudio/plantillas-api/internal/handler/booking"
	catalogHandler "github.com/neumorstudio/plantillas-api/internal/handler/catalog"
	hoursHandler "github.com/neumorstudio/plantillas-api/internal/handler/hours"
	specialdayHandler "github.com/neumorstudio/plantillas-api/internal/handler/specialday"
	websiteHandler "github.com/neumorstudio/plantillas-api/internal/handler/website"
	"github.com/neumorstudio/plantillas-api/internal/middleware"
	"github.com/neumorstudio/plantillas-api/internal/repository/postgres"
	"github.com/neumorstudio/plantillas-api/internal/router"
	availabilityService "github.com/neumorstudio/plantillas-api/internal/service/availability"
	bookingService "github.com/neumorstudio/plantillas-api/internal/service/booking"
	catalogService "github.com/neumorstudio/plantillas-api/internal/service/catalog"
	eventService "github.com/neumorstudio/plantillas-api/internal/service/event"
	hoursService "github.com/neumorstudio/plantillas-api/internal/service/hours"
	specialdayService "github.com/neumorstudio/plantillas-api/internal/service/specialday"
	websiteService "github.com/neumorstudio/plantillas-api/internal/service/website"
	"github.com/neumorstudio/plantillas-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	websiteRepo := postgres.NewWebsiteRepository(db)
	professionalRepo := postgres.NewProfessionalRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	hoursRepo := postgres.NewHoursRepository(db)
	specialDayRepo := postgres.NewSpecialDayRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	m := metrics.NewMetrics("plantillas", "api")

	availabilitySvc := availabilityService.NewService(
		websiteRepo, hoursRepo, specialDayRepo, bookingRepo, serviceRepo,
		cfg.Booking.ScheduleCacheTTL, m,
	)
	eventSvc := eventService.NewService(outboxRepo)
	bookingSvc := bookingService.NewService(bookingRepo, serviceRepo, availabilitySvc, eventSvc, m)
	hoursSvc := hoursService.NewService(hoursRepo, availabilitySvc)
	specialDaySvc := specialdayService.NewService(specialDayRepo, availabilitySvc)
	catalogSvc := catalogService.NewService(serviceRepo, professionalRepo)
	websiteSvc := websiteService.NewService(websiteRepo)

	h := handler.NewHandler(db)
	r := router.NewRouter(h, router.RouterConfig{
		RateLimit:  rate.Limit(100),
		RateBurst:  200,
		Timeout:    time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CORSConfig: middleware.DefaultCORSConfig(),
	},
		websiteHandler.NewHandler(websiteSvc),
		availabilityHandler.NewHandler(availabilitySvc),
		bookingHandler.NewHandler(bookingSvc),
		hoursHandler.NewHandler(hoursSvc),
		specialdayHandler.NewHandler(specialDaySvc),
		catalogHandler.NewHandler(catalogSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
