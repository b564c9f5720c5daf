package isomodel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// 事務所ビルを想定した計算条件
func sampleModel() *Model {
	m := &Model{Name: "sample"}

	s := &m.Structure
	s.FloorArea = 100.0
	s.BuildingHeight = 3.96
	s.AirLeakageN50 = 2.0
	s.InteriorHeatCapacity = 100000.0
	s.WallHeatCapacity = 50000.0
	s.NaturallyLightedArea = 30.0
	for _, o := range []Orientation{OrientationS, OrientationE, OrientationN, OrientationW} {
		s.WallArea[o] = 40.0
		s.WindowArea[o] = 5.0
		s.WallU[o] = 0.5
		s.WindowU[o] = 3.0
		s.WallSolarAbsorption[o] = 0.6
		s.WindowSHGC[o] = 0.6
		s.WindowSCF[o] = 1.0
		s.WindowSDF[o] = 1.0
	}
	s.WindowArea[OrientationS] = 10.0

	m.Building = Building{
		LightingControl:                   LightingControlManual,
		ElectricApplianceHeatGainOccupied: 10.0,
		ExteriorEquipmentPower:            1000.0,
	}
	m.Lighting = Lighting{PowerDensityOccupied: 10.0, ExteriorEnergy: 500.0}
	m.Heating = Heating{
		SetpointOccupied:   20.0,
		SetpointUnoccupied: 15.0,
		HvacLossFactor:     0.1,
		HotcoldWasteFactor: 0.1,
		Efficiency:         0.9,
		EnergyType:         EnergyTypeGas,
	}
	m.Cooling = Cooling{
		SetpointOccupied:   26.0,
		SetpointUnoccupied: 30.0,
		HvacLossFactor:     0.1,
		COP:                3.0,
	}
	m.Ventilation = Ventilation{SupplyRate: 2.0, HeatRecoveryEfficiency: 0.0, FanControlFactor: 1.0}
	m.Population = Population{DayStart: 0, DayEnd: 5, HourStart: 8, HourEnd: 18}

	return m
}

// 冬に-5℃、夏に35℃となる正弦波の外気温度と、日中のみの日射を持つ気象データ
func syntheticWeather() *Weather {
	wind_speed := make([]float64, hoursOfYear)
	temperature := make([]float64, hoursOfYear)
	radiation := mat.NewDense(hoursOfYear, NumberOfOrientations, nil)

	for n := 0; n < hoursOfYear; n++ {
		wind_speed[n] = 3.0
		temperature[n] = 15.0 - 20.0*math.Cos(2*math.Pi*float64(n)/hoursOfYear)

		h := n % hoursOfDay
		i_sun := math.Max(0.0, 400.0*math.Sin(math.Pi*float64(h-6)/12.0))
		radiation.Set(n, int(OrientationS), i_sun)
		radiation.Set(n, int(OrientationE), 0.6*i_sun)
		radiation.Set(n, int(OrientationN), 0.2*i_sun)
		radiation.Set(n, int(OrientationW), 0.6*i_sun)
		radiation.Set(n, int(OrientationRoof), i_sun)
	}

	w, err := NewWeather(wind_speed, temperature, radiation)
	if err != nil {
		panic(err)
	}
	return w
}
