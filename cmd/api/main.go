package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"repair_intake/internal/adapter/http/middleware"
	"repair_intake/internal/adapter/http/routes"
	"repair_intake/internal/app"
	"repair_intake/internal/infrastructure/config"
	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/jobs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Repair Intake API
// @version         1.0
// @description     Repair requests, appointment slots and staff calendar backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.basic BasicAuth

const limiterCleanupInterval = 10 * time.Minute

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logging.New("", "info").Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := logging.New(cfg.Env, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to startup the application")
	}
	defer a.Close()

	if err := a.Bootstrap(ctx); err != nil {
		logger.Fatal().Err(err).Msg("bootstrap failed")
	}

	var limiter *middleware.RateLimiter
	background := []*jobs.Periodic{
		jobs.NewHorizonJob(a.Slots.EnsureHorizon, cfg.HorizonInterval, logger),
		jobs.NewReleaseReconcileJob(a.Requests.ReconcileReleases, cfg.ReconcileInterval, logger),
	}
	if cfg.SubmitRatePerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.SubmitRatePerMinute, cfg.SubmitBurst)
		background = append(background, &jobs.Periodic{
			Name:     "rate_limit_cleanup",
			Interval: limiterCleanupInterval,
			Task: func(context.Context) (int, error) {
				limiter.Cleanup()
				return 0, nil
			},
			Logger: logger,
		})
	}

	var wg sync.WaitGroup
	for _, job := range background {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = job.Run(ctx)
		}()
	}

	if err := routes.Run(ctx, a, limiter); err != nil {
		logger.Error().Err(err).Msg("http server stopped")
	}
	cancel()
	wg.Wait()
}
