package isomodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEngine(m *Model) *Engine {
	c := DeriveCoefficients(&m.Structure, &m.Building, &m.Ventilation)
	sc := GenerateSchedules(&m.Population, &m.Heating, &m.Cooling, &m.Ventilation)
	return NewEngine(m, c, sc)
}

func TestRunTick_FreeFloating(t *testing.T) {
	m := sampleModel()
	m.Heating.SetpointOccupied, m.Heating.SetpointUnoccupied = -100.0, -100.0
	m.Cooling.SetpointOccupied, m.Cooling.SetpointUnoccupied = 100.0, 100.0
	e := newTestEngine(m)

	state := InitializeConditions()
	for _, in := range []HourInput{
		{Hour: 3, WindSpeed: 5.0, Temperature: -10.0},
		{Hour: 12, WindSpeed: 1.0, Temperature: 35.0, Radiation: SolarInput{S: 600, E: 200, N: 100, W: 200}},
	} {
		next, hr := e.RunTick(state, in)
		assert.Equal(t, 0.0, hr.HeatingNeed)
		assert.Equal(t, 0.0, hr.CoolingNeed)
		assert.NotEqual(t, state, next)
	}
}

func TestRunTick_HeatingReachesSetpoint(t *testing.T) {
	m := sampleModel()
	e := newTestEngine(m)

	// 0日目 10時（在室）、外気 -5℃
	next, hr := e.RunTick(InitializeConditions(), HourInput{Hour: 11, WindSpeed: 3.0, Temperature: -5.0})

	assert.Greater(t, hr.HeatingNeed, 0.0)
	assert.Equal(t, 0.0, hr.CoolingNeed)
	assert.InDelta(t, m.Heating.SetpointOccupied, next.AirTemperature, 1e-9)
}

func TestRunTick_CoolingReachesSetpoint(t *testing.T) {
	m := sampleModel()
	e := newTestEngine(m)

	state := ThermalState{MassTemperature: 28.0, AirTemperature: 28.0}
	next, hr := e.RunTick(state, HourInput{
		Hour:        13,
		WindSpeed:   1.0,
		Temperature: 34.0,
		Radiation:   SolarInput{S: 500, E: 300, N: 100, W: 300},
	})

	assert.Equal(t, 0.0, hr.HeatingNeed)
	assert.Greater(t, hr.CoolingNeed, 0.0)
	assert.InDelta(t, m.Cooling.SetpointOccupied, next.AirTemperature, 1e-9)
}

func TestRunTick_HeatingSetpointMonotonic(t *testing.T) {
	in := HourInput{Hour: 11, WindSpeed: 3.0, Temperature: 0.0, Radiation: SolarInput{S: 100}}

	prev := -1.0
	for _, setpoint := range []float64{16.0, 18.0, 20.0, 22.0} {
		m := sampleModel()
		m.Heating.SetpointOccupied = setpoint
		_, hr := newTestEngine(m).RunTick(InitializeConditions(), in)

		assert.GreaterOrEqual(t, hr.HeatingNeed, prev, "setpoint=%v", setpoint)
		prev = hr.HeatingNeed
	}
}

func TestRunTick_CoolingSetpointMonotonic(t *testing.T) {
	in := HourInput{Hour: 13, WindSpeed: 1.0, Temperature: 33.0, Radiation: SolarInput{S: 500, E: 300, W: 300}}
	state := ThermalState{MassTemperature: 27.0, AirTemperature: 27.0}

	prev := -1.0
	for _, setpoint := range []float64{28.0, 26.0, 24.0, 22.0} {
		m := sampleModel()
		m.Cooling.SetpointOccupied = setpoint
		_, hr := newTestEngine(m).RunTick(state, in)

		assert.GreaterOrEqual(t, hr.CoolingNeed, prev, "setpoint=%v", setpoint)
		prev = hr.CoolingNeed
	}
}

func TestRunTick_ElectricLoads(t *testing.T) {
	m := sampleModel()
	e := newTestEngine(m)

	t.Run("occupied", func(t *testing.T) {
		_, hr := e.RunTick(InitializeConditions(), HourInput{Hour: 11, Temperature: 20.0})

		// 2 m3/(h m2) / 3600 * 800 Pa / 0.8
		assert.InDelta(t, 2.0/3600*800/0.8, hr.Fan, 1e-12)
		assert.InDelta(t, 0.3*1000.0/100.0, hr.ExteriorEquipment, 1e-12)
		assert.InDelta(t, 0.9*10.0, hr.InteriorEquipment, 1e-12)
		assert.Equal(t, 0.0, hr.ExteriorLighting)

		// 昼光が無いので最大点灯率で点灯する。
		assert.InDelta(t, 1.0*10.0*0.9, hr.InteriorLighting, 1e-9)
		assert.Equal(t, 0.0, hr.DomesticHotWater)
	})

	t.Run("night", func(t *testing.T) {
		_, hr := e.RunTick(InitializeConditions(), HourInput{Hour: 1, Temperature: 20.0})

		assert.Equal(t, 0.0, hr.Fan)
		assert.InDelta(t, 500.0/100.0, hr.ExteriorLighting, 1e-12)
		assert.InDelta(t, 0.12*1000.0/100.0, hr.ExteriorEquipment, 1e-12)
		assert.InDelta(t, 0.05*10.0, hr.InteriorLighting, 1e-9)
	})
}

func TestGetLighting_Daylight(t *testing.T) {
	m := sampleModel()
	e := newTestEngine(m)

	dark, _ := e.get_lighting(SolarInput{}, 1.0)
	bright, heat := e.get_lighting(SolarInput{S: 800, E: 400, N: 200, W: 400}, 1.0)

	assert.Less(t, bright, dark)
	assert.Equal(t, bright, heat)

	// 昼光利用エリア以外は最大点灯率で点灯する。
	assert.GreaterOrEqual(t, bright, (1-e.c.AreaNaturallyLightedRatio)*m.Lighting.PowerDensityOccupied-1e-9)
}

func TestGetSolarHeatGain(t *testing.T) {
	m := sampleModel()
	e := newTestEngine(m)

	assert.Equal(t, 0.0, e.get_solar_heat_gain(SolarInput{}))

	// 西面の日射は西面の窓に入射する。
	west := e.get_solar_heat_gain(SolarInput{W: 100})
	assert.InDelta(t, 100*e.c.SolarRatio[OrientationW], west, 1e-12)

	south := e.get_solar_heat_gain(SolarInput{S: 100})
	assert.Greater(t, south, west)
}
