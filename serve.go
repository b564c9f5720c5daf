package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/michibiki-io/goutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"isomodel/controller"
	"isomodel/isomodel"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "HTTPサーバーとして計算を受け付けます。",
		Long: `Environment variables:
  PORT                         listen port (default 9000)
  WEATHER_PATH                 weather CSV used by every simulation
  WEATHER_METHOD               radiation or solar (default radiation)
  BUILDING_PATH                building JSON simulated on start and by cron
  SIMULATION_CRON_EXPR_STRING  cron expression of the periodic simulation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {

	// 気象データ
	w, err := isomodel.MakeWeather(
		goutils.GetEnv("WEATHER_METHOD", isomodel.WeatherMethodRadiation),
		goutils.GetEnv("WEATHER_PATH", "weather.csv"),
	)
	if err != nil {
		return err
	}

	// 定期的に計算する建物
	buildingPath := goutils.GetEnv("BUILDING_PATH", "")

	// controller
	simulationController := controller.CreateSimulationController(logger, w, buildingPath)

	// metrics server
	metricsController := controller.CreateMetricsController(logger, prometheus.DefaultRegisterer)

	// set handler
	simulationController.RegistHandler(metricsController.Update)

	// periodic simulation
	if buildingPath != "" {
		go func() {
			if err := simulationController.Refresh(ctx); err != nil {
				logger.Error("initial simulation failed", zap.Error(err))
			}
			if err := simulationController.Schedule(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler stopped", zap.Error(err))
			}
		}()
	}

	engine := newEngine(simulationController)

	errCh := make(chan error, 1)
	go func() {
		errCh <- engine.Run(fmt.Sprintf(":%d", goutils.GetIntEnv("PORT", 9000)))
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func newEngine(simulationController *controller.SimulationController) *gin.Engine {
	engine := gin.Default()
	engine.GET("/", func(c *gin.Context) {
		c.JSON(200, "ok")
	})
	engine.GET("/readiness", func(c *gin.Context) {
		if simulationController.Readiness() {
			c.JSON(200, "ok")
		} else {
			c.JSON(404, "ng")
		}
	})
	engine.POST("/simulate", simulationController.PostSimulate)
	engine.GET("/simulate/latest", simulationController.GetLatest)
	engine.GET("/metrics", controller.CreatePrometheusHandler())
	return engine
}
