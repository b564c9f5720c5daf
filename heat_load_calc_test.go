package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const buildingJson = `{
	"name": "office",
	"structure": {
		"floor_area": 1000,
		"building_height": 4,
		"interior_heat_capacity": 100000,
		"wall_heat_capacity": 50000,
		"naturally_lighted_area": 300,
		"surfaces": [
			{"orientation": "s", "wall_area": 200, "window_area": 100, "wall_u": 0.5, "window_u": 3.0,
			 "wall_solar_absorption": 0.6, "window_shgc": 0.6, "window_scf": 1.0, "window_sdf": 1.0},
			{"orientation": "w", "wall_area": 200, "window_area": 50, "wall_u": 0.5, "window_u": 3.0,
			 "wall_solar_absorption": 0.6, "window_shgc": 0.6, "window_scf": 1.0, "window_sdf": 0.5}
		]
	},
	"building": {"lighting_control": 3, "electric_appliance_heat_gain_occupied": 10},
	"lighting": {"power_density_occupied": 10, "exterior_energy": 1000},
	"heating": {"setpoint_occupied": 20, "setpoint_unoccupied": 15, "hvac_loss_factor": 0.1,
		"hotcold_waste_factor": 0.1, "efficiency": 0.9, "energy_type": 2},
	"cooling": {"setpoint_occupied": 26, "setpoint_unoccupied": 30, "hvac_loss_factor": 0.1, "cop": 3},
	"ventilation": {"supply_rate": 2, "heat_recovery_efficiency": 0.5, "fan_control_factor": 1},
	"population": {"day_start": 0, "day_end": 5, "hour_start": 8, "hour_end": 18}
}`

// 入力ファイル一式を一時フォルダに作成する。
func writeInputs(t *testing.T) (string, string) {
	dir := t.TempDir()

	building_path := filepath.Join(dir, "office.json")
	require.NoError(t, os.WriteFile(building_path, []byte(buildingJson), 0o644))

	var b strings.Builder
	b.WriteString("wind_speed,temperature,solar_s,solar_se,solar_e,solar_ne,solar_n,solar_nw,solar_w,solar_sw,solar_h\n")
	for n := 0; n < 8760; n++ {
		theta_o := 15.0 - 20.0*math.Cos(2*math.Pi*float64(n)/8760)
		i_sun := math.Max(0.0, 400.0*math.Sin(math.Pi*float64(n%24-6)/12.0))
		fmt.Fprintf(&b, "3,%g,%g,0,%g,0,%g,0,%g,0,%g\n", theta_o, i_sun, 0.6*i_sun, 0.2*i_sun, 0.6*i_sun, i_sun)
	}
	weather_path := filepath.Join(dir, "weather.csv")
	require.NoError(t, os.WriteFile(weather_path, []byte(b.String()), 0o644))

	return building_path, weather_path
}

func readLines(t *testing.T, path string) []string {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func TestRun(t *testing.T) {
	logger = zap.NewNop()
	building_path, weather_path := writeInputs(t)
	out := filepath.Join(t.TempDir(), "out")

	err := run(context.Background(), runOptions{
		houseDataPath:        building_path,
		outputDataDir:        out,
		isScheduleSaved:      true,
		weatherSpecifyMethod: "radiation",
		weatherFilePath:      weather_path,
	})
	require.NoError(t, err)

	monthly := readLines(t, filepath.Join(out, "result_monthly.csv"))
	assert.Len(t, monthly, 13)
	assert.True(t, strings.HasPrefix(monthly[1], "1,"))

	hourly := readLines(t, filepath.Join(out, "result_hourly.csv"))
	assert.Len(t, hourly, 8761)

	assert.FileExists(t, filepath.Join(out, "schedule_heating_setpoint.csv"))
}

func TestRun_MissingWeather(t *testing.T) {
	logger = zap.NewNop()
	building_path, _ := writeInputs(t)

	err := run(context.Background(), runOptions{
		houseDataPath:        building_path,
		outputDataDir:        t.TempDir(),
		weatherSpecifyMethod: "radiation",
		weatherFilePath:      filepath.Join(t.TempDir(), "missing.csv"),
	})
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	logger = zap.NewNop()
	building_path, weather_path := writeInputs(t)

	broken_path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken_path, []byte(`{"name": "broken"}`), 0o644))

	out := t.TempDir()
	err := batch(context.Background(), batchOptions{
		outputDataDir:        out,
		weatherSpecifyMethod: "radiation",
		weatherFilePath:      weather_path,
	}, []string{building_path, broken_path})

	assert.EqualError(t, err, "1 of 2 buildings failed")
	assert.FileExists(t, filepath.Join(out, "office_monthly.csv"))
	assert.NoFileExists(t, filepath.Join(out, "broken_monthly.csv"))
}

func TestMaxParallelism(t *testing.T) {
	assert.GreaterOrEqual(t, MaxParallelism(), 1)
}
