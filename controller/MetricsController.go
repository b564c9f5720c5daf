package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"isomodel/isomodel"
)

type MetricsController struct {
	logger             *zap.Logger
	annualEndUse       *prometheus.GaugeVec
	annualHeatingNeed  *prometheus.GaugeVec
	annualCoolingNeed  *prometheus.GaugeVec
	simulations        prometheus.Counter
	simulationDuration prometheus.Histogram
}

func CreateMetricsController(l *zap.Logger, reg prometheus.Registerer) *MetricsController {
	c := MetricsController{
		logger: l,
		annualEndUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "isomodel",
			Name:      "annual_end_use",
			Help:      "Annual Energy Use Intensity per Fuel and End Use [kWh/m2]",
		}, []string{"building", "fuel", "category"}),
		annualHeatingNeed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "isomodel",
			Name:      "annual_heating_need",
			Help:      "Annual Heating Need [kWh/m2]",
		}, []string{"building"}),
		annualCoolingNeed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "isomodel",
			Name:      "annual_cooling_need",
			Help:      "Annual Cooling Need [kWh/m2]",
		}, []string{"building"}),
		simulations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "isomodel",
			Name:      "simulations_total",
			Help:      "Number of Completed Simulations of the Configured Building",
		}),
		simulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "isomodel",
			Name:      "simulation_duration_seconds",
			Help:      "Duration of One Simulation of the Configured Building [s]",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
	}

	reg.MustRegister(c.annualEndUse,
		c.annualHeatingNeed,
		c.annualCoolingNeed,
		c.simulations,
		c.simulationDuration)

	return &c
}

func (controller *MetricsController) Update(result *isomodel.Result) {

	if result != nil {
		name := result.Model.Name
		annual := result.EndUses.Annual()
		for i, k := range isomodel.EndUseKeys {
			controller.annualEndUse.WithLabelValues(name, k.Fuel.String(), k.Category.String()).Set(annual[i])
		}
		controller.annualHeatingNeed.WithLabelValues(name).Set(result.Recorder.AnnualHeatingNeed() / 1000.0)
		controller.annualCoolingNeed.WithLabelValues(name).Set(result.Recorder.AnnualCoolingNeed() / 1000.0)
		controller.simulations.Inc()
		controller.simulationDuration.Observe(result.Elapsed.Seconds())

		controller.logger.Debug("metrics updated", zap.String("building", name))
	}
}

func CreatePrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
