package isomodel

import (
	"math"
)

// 昼光の発光効率, lm/W
const luminous_efficacy_daylight = 53.0

/*
1時間ごとの熱収支を計算する。

Engine は計算期間を通じて変更されない係数とスケジュールのみを保持し、
時刻間で引き継ぐ状態は ThermalState として RunTick の引数と戻り値で受け渡す。
*/
type Engine struct {
	c   *Coefficients
	sc  *Schedules
	a_f float64 // 床面積, m2

	lighting    Lighting
	building    Building
	get_airflow func(q_vent, theta_o_n, v_wind_n, theta_r_n float64) airflow
}

/*
Args:
	m: 計算条件
	c: Coefficients
	sc: Schedules
*/
func NewEngine(m *Model, c *Coefficients, sc *Schedules) *Engine {
	return &Engine{
		c:           c,
		sc:          sc,
		a_f:         m.Structure.FloorArea,
		lighting:    m.Lighting,
		building:    m.Building,
		get_airflow: make_get_airflow_function(c, &m.Ventilation),
	}
}

/*
1時間分の計算を行う。

Args:
	state: 前時刻の状態
	in: 時刻nの入力

Returns:
	(1) 次の時刻に引き継ぐ状態
	(2) 時刻nの結果
*/
func (e *Engine) RunTick(state ThermalState, in HourInput) (ThermalState, HourlyResult) {
	c := e.c

	// スケジュール
	sv := e.sc.at(in.Hour)

	// ファンの電力, W/m2
	q_fan := sv.ventilation / 3600 * sv.fan * fan_delta_p / fan_n

	// 屋外機器の電力, W/m2
	q_ext_equip := sv.exterior_equipment * e.building.ExteriorEquipmentPower / e.a_f

	// 室内機器の発熱（ISO 13790 10.4.2）, W/m2
	phi_plug := sv.interior_equipment * e.building.ElectricApplianceHeatGainOccupied

	// 照明の電力と発熱（ISO 13790 10.4.3）, W/m2
	q_illum, phi_illum := e.get_lighting(in.Radiation, sv.interior_lighting)

	// 内部発熱（ISO 13790 10.2.2 式(35)）, W/m2
	phi_int := phi_plug + phi_illum

	// 日射熱取得（ISO 13790 11.2.2 式(41)）, W/m2
	phi_sol := e.get_solar_heat_gain(in.Radiation)

	// 熱取得の配分
	g := get_gain_split(c, phi_sol, phi_int)

	// 換気・すきま風
	af := e.get_airflow(sv.ventilation, in.Temperature, in.WindSpeed, state.AirTemperature)

	// 熱回路網
	nw := get_network(c, get_h_ei(af.q_entering_total))

	// 仮想負荷 0 W/m2 及び 10 W/m2 のときの室温, degree C
	theta_air_0 := nw.solve(state.MassTemperature, 0.0, g, in.Temperature, af.theta_sup).theta_air
	theta_air_10 := nw.solve(state.MassTemperature, phi_virtual, g, in.Temperature, af.theta_sup).theta_air

	// 暖房・冷房の設定温度を実現する負荷, W/m2
	phi_cooling := get_phi_hc(sv.cooling_setpoint, theta_air_0, theta_air_10)
	phi_heating := get_phi_hc(sv.heating_setpoint, theta_air_0, theta_air_10)

	phi_actual, q_need_ht, q_need_cl := get_phi_actual(phi_heating, phi_cooling)

	// 実際の負荷を加えたときの状態
	sol := nw.solve(state.MassTemperature, phi_actual, g, in.Temperature, af.theta_sup)

	// 屋外照明の電力, W/m2
	q_illum_ext := e.lighting.ExteriorEnergy * sv.exterior_lighting / e.a_f

	next := ThermalState{
		MassTemperature: sol.theta_m_t,
		AirTemperature:  sol.theta_air,
	}

	return next, HourlyResult{
		HeatingNeed:       q_need_ht,
		CoolingNeed:       q_need_cl,
		InteriorLighting:  q_illum,
		ExteriorLighting:  q_illum_ext,
		Fan:               q_fan,
		InteriorEquipment: phi_plug,
		ExteriorEquipment: q_ext_equip,
		DomesticHotWater:  0.0,
	}
}

/*
昼光を考慮した照明の電力と発熱を計算する。

Args:
	rad: 方位ごとの日射量, W/m2
	f_int_light: 室内照明の点灯率（スケジュール）, -

Returns:
	(1) 照明の電力, W/m2
	(2) 照明の発熱, W/m2
*/
func (e *Engine) get_lighting(rad SolarInput, f_int_light float64) (float64, float64) {
	c := e.c

	// 昼光照度, lx
	lighting_level := e.get_lighting_contribution(rad.N, OrientationN) +
		e.get_lighting_contribution(rad.E, OrientationE) +
		e.get_lighting_contribution(rad.S, OrientationS) +
		e.get_lighting_contribution(rad.W, OrientationW) +
		e.get_lighting_contribution(rad.H, OrientationRoof)

	// 昼光利用エリアの点灯率, -
	electric_for_natural_light_area := math.Max(0.0,
		c.MaxRatioElectricLighting*(1-lighting_level/c.ElightNatural))

	// 建物全体の点灯率, -
	electric_for_total_light_area := electric_for_natural_light_area*c.AreaNaturallyLightedRatio +
		(1-c.AreaNaturallyLightedRatio)*c.MaxRatioElectricLighting

	q_illum := electric_for_total_light_area * e.lighting.PowerDensityOccupied * f_int_light

	return q_illum, q_illum * elect_internal_gains
}

/*
方位 o の窓による昼光照度を計算する。

Args:
	i_o: 方位 o の日射量, W/m2
	o: 方位

Returns:
	昼光照度, lx
*/
func (e *Engine) get_lighting_contribution(i_o float64, o Orientation) float64 {
	c := e.c
	return luminous_efficacy_daylight / c.AreaNaturallyLightedRatio * i_o *
		(c.NaturalLightRatio[o] + c.ShadingUsePerWPerM2*c.NaturalLightShadeRatioReduction[o]*math.Min(shading_ratio_w_to_m2, i_o))
}

/*
日射熱取得を計算する。

Args:
	rad: 方位ごとの日射量, W/m2

Returns:
	日射熱取得, W/m2

Notes:
	ISO 13790 11.3.2 式(43)
	可動日除けを考慮した日射取得面積は日射量に応じて変化させる。
*/
func (e *Engine) get_solar_heat_gain(rad SolarInput) float64 {
	return e.get_solar_heat_gain_o(rad.N, OrientationN) +
		e.get_solar_heat_gain_o(rad.E, OrientationE) +
		e.get_solar_heat_gain_o(rad.S, OrientationS) +
		e.get_solar_heat_gain_o(rad.W, OrientationW) +
		e.get_solar_heat_gain_o(rad.H, OrientationRoof)
}

func (e *Engine) get_solar_heat_gain_o(i_o float64, o Orientation) float64 {
	c := e.c
	return i_o * (c.SolarRatio[o] + c.SolarShadeRatioReduction[o]*c.ShadingUsePerWPerM2*math.Min(i_o, shading_ratio_w_to_m2))
}
