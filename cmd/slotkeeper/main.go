package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"slotkeeper/internal/scheduling/handler"
	"slotkeeper/internal/scheduling/service"
	"slotkeeper/internal/timezone"
	"slotkeeper/internal/validator"
	"slotkeeper/pkg/app"
	"slotkeeper/pkg/config"
	"slotkeeper/pkg/metrics"
)

const ServiceName = "slotkeeper"

func main() {
	cfg := config.Load(ServiceName)

	offset, err := cfg.ReferenceOffset()
	if err != nil {
		cfg.Log.Fatal("Invalid reference timezone", "error", err)
	}
	tz := timezone.New(offset, cfg.ReferenceTZName)

	cfg.Log.Info("Starting Slotkeeper service")
	schedulingService := initServices(cfg, tz)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewSchedulingHandler(schedulingService, cfg.Log),
		handler.NewHealthHandler(tz, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, tz *timezone.Normalizer) service.SchedulingService {
	engine := validator.NewEngine(cfg.Log, tz, validator.WithMaxSlotMinutes(cfg.MaxSlotMinutes()))
	schedulingService := service.NewSchedulingService(
		engine,
		tz,
		metrics.New(prometheus.DefaultRegisterer),
		cfg.Log,
	)

	cfg.Log.Info("Scheduling service initialized", "reference_zone", tz.Location().String())
	return schedulingService
}
