package api

import (
	"context"
	"log"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/mergington-activities/internal/service"
)

type HealthChecker interface {
	HealthCheck() echo.HandlerFunc
}

type healthChecker struct {
	health *health.Health
}

func MustNewHealthChecker(version string, checks ...health.Config) HealthChecker {
	h, err := health.New(health.WithComponent(health.Component{Name: "mergington-activities", Version: version}))
	if err != nil {
		log.Fatal("failed to create health checker:", err)
	}

	for _, check := range checks {
		if err := h.Register(check); err != nil {
			log.Fatal("failed to register health check:", err)
		}
	}

	return &healthChecker{
		health: h,
	}
}

func (h *healthChecker) HealthCheck() echo.HandlerFunc {
	return echo.WrapHandler(h.health.Handler())
}

// RegistryCheck fails when the registry is empty, i.e. seeding did not run.
func RegistryCheck(activities *service.ActivityService) health.Config {
	return health.Config{
		Name:    "registry",
		Timeout: time.Second,
		Check: func(ctx context.Context) error {
			all, err := activities.List(ctx)
			if err != nil {
				return err
			}
			if len(all) == 0 {
				return errors.New("registry is empty")
			}
			return nil
		},
	}
}
