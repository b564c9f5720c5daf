package isomodel

import (
	"math"
)

// 1時間分の換気・すきま風の計算結果
type airflow struct {
	q_supply         float64 // 機械給気量, m3/(h m2)
	q_wind           float64 // 風力によるすきま風量, m3/(h m2)
	q_stack          float64 // 温度差によるすきま風量, m3/(h m2)
	q_exfiltration   float64 // 漏気量, m3/(h m2)
	q_envelope       float64 // 外皮から流入する空気量, m3/(h m2)
	q_entering_total float64 // 流入する空気量の合計, m3/(h m2)
	theta_sup        float64 // 流入空気の温度, degree C
}

/*
外気条件と前時刻の室温から換気・すきま風を計算する関数を作成する。

Args:
	c: Coefficients
	v: 機械換気

Returns:
	換気・すきま風を計算する関数

Notes:
	作成される関数の引数と戻り値は以下のとおり。
		引数:
			q_vent: 時刻nの換気量（スケジュール）, m3/(h m2)
			theta_o_n: 時刻nの外気温度, degree C
			v_wind_n: 時刻nの風速, m/s
			theta_r_n: 時刻n-1の室温, degree C
		戻り値:
			airflow
*/
func make_get_airflow_function(c *Coefficients, v *Ventilation) func(q_vent, theta_o_n, v_wind_n, theta_r_n float64) airflow {
	return func(q_vent, theta_o_n, v_wind_n, theta_r_n float64) airflow {
		return get_airflow(
			q_vent,
			theta_o_n,
			v_wind_n,
			theta_r_n,
			c.Q4Pa,
			c.WindImpactHz,
			c.WindImpactSupplyRatio,
			v.HeatRecoveryEfficiency,
		)
	}
}

/*
換気・すきま風を計算する。

Args:
	q_vent: 換気量, m3/(h m2)
	theta_o: 外気温度, degree C
	v_wind: 風速, m/s
	theta_r: 前時刻の室温, degree C
	q_4pa: 4Pa時の漏気量, m3/(h m2)
	h_z: 煙突効果の代表高さ, m
	r_supply: 給気/排気の比率, -
	eta_hr: 熱回収効率, -

Returns:
	airflow

Notes:
	ISO 15242 6.7.1, 6.7.2 及び ISO 13790 9.3
*/
func get_airflow(q_vent, theta_o, v_wind, theta_r, q_4pa, h_z, r_supply, eta_hr float64) airflow {
	var af airflow

	// 機械給気量, m3/(h m2)
	af.q_supply = q_vent * r_supply

	// 給気と排気の差（ISO 15242 q_{v-diff}）, m3/(h m2)
	q_exhaust_supply := -(af.q_supply - q_vent)

	// 熱交換後の給気温度, degree C
	theta_after_exchange := (1-eta_hr)*theta_o + eta_hr*theta_heat_recovery_ref
	theta_supplied := math.Max(theta_vent_preheat, theta_after_exchange)

	// ISO 15242 6.7.1 Step 1
	af.q_wind = 0.0769 * q_4pa * math.Pow(vent_dcp_wind_impact*v_wind*v_wind, 0.667)
	af.q_stack = 0.0146 * q_4pa * math.Pow(0.5*h_z*math.Max(0.00001, math.Abs(theta_o-theta_r)), 0.667)

	// ISO 15242 6.7.1 Step 2
	af.q_exfiltration = math.Max(0.0,
		math.Max(af.q_stack, af.q_wind)-
			math.Abs(q_exhaust_supply)*(0.5*af.q_stack+0.667*af.q_wind/(af.q_stack+af.q_wind)))

	af.q_envelope = math.Max(0.0, q_exhaust_supply) + af.q_exfiltration

	// ISO 15242 6.7.2
	af.q_entering_total = af.q_envelope + af.q_supply

	// ISO 13790 9.3
	af.theta_sup = (theta_o*af.q_envelope + theta_supplied*af.q_supply) / af.q_entering_total

	return af
}

/*
換気による熱コンダクタンスを計算する。

Args:
	q_entering_total: 流入する空気量の合計, m3/(h m2)

Returns:
	床面積あたりの換気による熱コンダクタンス, W/m2K

Notes:
	ISO 13790 9.3.1 式(21)
*/
func get_h_ei(q_entering_total float64) float64 {
	return c_air_vol * q_entering_total
}
