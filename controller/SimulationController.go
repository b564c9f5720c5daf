package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorhill/cronexpr"
	"github.com/michibiki-io/goutils"
	"go.uber.org/zap"

	"isomodel/isomodel"
)

var cronExprString = goutils.GetEnv("SIMULATION_CRON_EXPR_STRING", "0 0 * * *")

// ErrNoBuilding indicates a scheduled run without BUILDING_PATH.
var ErrNoBuilding = errors.New("controller: building path is not configured")

type SimulationController struct {
	logger        *zap.Logger
	weather       *isomodel.Weather
	buildingPath  string
	mutex         sync.RWMutex
	latest        *isomodel.Result
	nextCronTime  time.Time
	resultHandler func(result *isomodel.Result)
}

func CreateSimulationController(l *zap.Logger, w *isomodel.Weather, buildingPath string) *SimulationController {
	return &SimulationController{
		logger:       l,
		weather:      w,
		buildingPath: buildingPath,
		nextCronTime: time.Now(),
	}
}

func (controller *SimulationController) RegistHandler(handler func(result *isomodel.Result)) {
	if handler != nil {
		controller.resultHandler = handler
	}
}

// Simulate runs one building against the shared weather.
func (controller *SimulationController) Simulate(ctx context.Context, m *isomodel.Model) (*isomodel.Result, error) {
	return isomodel.Simulate(ctx, controller.logger, m, controller.weather)
}

// Refresh reloads the configured building, simulates it and publishes the result as the latest one.
func (controller *SimulationController) Refresh(ctx context.Context) error {
	if controller.buildingPath == "" {
		return ErrNoBuilding
	}

	m, err := isomodel.LoadModel(controller.buildingPath)
	if err != nil {
		return err
	}

	result, err := controller.Simulate(ctx, m)
	if err != nil {
		return err
	}

	controller.mutex.Lock()
	controller.latest = result
	controller.mutex.Unlock()

	if controller.resultHandler != nil {
		controller.resultHandler(result)
	}
	return nil
}

// Schedule re-runs Refresh at every time matched by SIMULATION_CRON_EXPR_STRING until ctx is done.
func (controller *SimulationController) Schedule(ctx context.Context) error {
	expr, err := cronexpr.Parse(cronExprString)
	if err != nil {
		return fmt.Errorf("SIMULATION_CRON_EXPR_STRING: %w", err)
	}

	for {
		controller.nextCronTime = expr.Next(time.Now())
		if controller.nextCronTime.IsZero() {
			return nil
		}
		controller.logger.Debug(fmt.Sprintf("next simulation: %v", controller.nextCronTime))

		t := time.NewTimer(time.Until(controller.nextCronTime))
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
			if err := controller.Refresh(ctx); err != nil {
				controller.logger.Error("scheduled simulation failed", zap.Error(err))
			}
		}
	}
}

func (controller *SimulationController) Latest() *isomodel.Result {
	controller.mutex.RLock()
	defer controller.mutex.RUnlock()
	return controller.latest
}

// Readiness reports whether the weather is loaded and the configured building has been simulated once.
func (controller *SimulationController) Readiness() bool {
	if controller.weather == nil {
		return false
	}
	return controller.buildingPath == "" || controller.Latest() != nil
}

// 計算結果の要約
type SimulationResponse struct {
	Name           string               `json:"name"`
	ElapsedSeconds float64              `json:"elapsed_seconds"`
	Annual         map[string]float64   `json:"annual"`
	Monthly        []map[string]float64 `json:"monthly"`
}

func newSimulationResponse(result *isomodel.Result) *SimulationResponse {
	endUses := func(e *isomodel.EndUses) map[string]float64 {
		m := make(map[string]float64, isomodel.NumberOfEndUses)
		for i, k := range isomodel.EndUseKeys {
			m[k.String()] = e[i]
		}
		return m
	}

	annual := result.EndUses.Annual()
	res := &SimulationResponse{
		Name:           result.Model.Name,
		ElapsedSeconds: result.Elapsed.Seconds(),
		Annual:         endUses(&annual),
		Monthly:        make([]map[string]float64, len(result.EndUses)),
	}
	for i := range result.EndUses {
		res.Monthly[i] = endUses(&result.EndUses[i])
	}
	return res
}

// PostSimulate handles POST /simulate with a building JSON body.
func (controller *SimulationController) PostSimulate(c *gin.Context) {
	m, err := isomodel.DecodeModel(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := controller.Simulate(c.Request.Context(), m)
	if err != nil {
		controller.logger.Error("simulation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newSimulationResponse(result))
}

// GetLatest handles GET /simulate/latest with the last result of the configured building.
func (controller *SimulationController) GetLatest(c *gin.Context) {
	result := controller.Latest()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no simulation has completed"})
		return
	}
	c.JSON(http.StatusOK, newSimulationResponse(result))
}
