package isomodel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// 太陽位置の計算に用いる年
const solar_position_year = 1989

// 近点年, d
const d_ay = 365.2596

// 北半球の冬至の日赤緯, rad
const delta_0 = -23.4393 * math.Pi / 180.0

/*
1年分（1時間間隔）の太陽位置を計算する。

Args:
	phi_loc: 緯度, rad
	lambda_loc: 経度, rad

Returns:
	(1) 時刻nにおける太陽高度, rad, [8760]
	(2) 時刻nにおける太陽方位角, rad, [8760]

Notes:
	標準子午線は経度に最も近い15°の倍数とする。
	太陽が天頂にある時刻の方位角は NaN とする。
*/
func calc_solar_position(phi_loc, lambda_loc float64) (*mat.VecDense, *mat.VecDense) {
	h_sun_ns := mat.NewVecDense(hoursOfYear, nil)
	a_sun_ns := mat.NewVecDense(hoursOfYear, nil)

	// 標準子午線, rad
	lambda_loc_mer := _get_lambda_loc_mer(lambda_loc)

	// 1968年との年差
	n := solar_position_year - 1968

	// 平均軌道上の近日点通過日（暦表時による1968年1月1日正午基準の日差）, d
	d_0 := 3.71 + 0.2596*float64(n) - float64((n+3)/4)

	sin_phi_loc, cos_phi_loc := math.Sin(phi_loc), math.Cos(phi_loc)

	for i := 0; i < hoursOfYear; i++ {
		// 年通算日（1/1を1とする）, d
		d := float64(i/hoursOfDay + 1)

		// 標準時, h
		t_m := float64(i % hoursOfDay)

		// 平均近点離角, rad
		m := 2 * math.Pi * (d - d_0) / d_ay

		// 近日点と冬至点の角度, rad
		epsilon := (12.3901 + 0.0172*(float64(n)+m/(2*math.Pi))) * math.Pi / 180.0

		// 真近点離角, rad
		v := m + (1.914*math.Sin(m)+0.02*math.Sin(2*m))*math.Pi/180.0

		// 均時差, rad
		e_t := (m - v) - math.Atan(0.043*math.Sin(2.0*(v+epsilon))/(1.0-0.043*math.Cos(2.0*(v+epsilon))))

		// 赤緯, rad
		delta := math.Asin(math.Cos(v+epsilon) * math.Sin(delta_0))

		// 時角, rad
		omega := ((t_m-12.0)*15.0)*math.Pi/180.0 + (lambda_loc - lambda_loc_mer) + e_t

		// 太陽高度（太陽が沈んでいる場合は負）, rad
		h_sun := math.Asin(sin_phi_loc*math.Sin(delta) + cos_phi_loc*math.Cos(delta)*math.Cos(omega))
		h_sun_ns.SetVec(i, h_sun)

		if h_sun == math.Pi/2 {
			a_sun_ns.SetVec(i, math.NaN())
			continue
		}

		// 太陽方位角の正弦と余弦
		sin_a_sun := math.Cos(delta) * math.Sin(omega) / math.Cos(h_sun)
		cos_a_sun := (math.Sin(h_sun)*sin_phi_loc - math.Sin(delta)) / (math.Cos(h_sun) * cos_phi_loc)

		// 太陽方位角（南を0、西を正とする）, rad
		a_sun_ns.SetVec(i, math.Atan2(sin_a_sun, cos_a_sun))
	}

	return h_sun_ns, a_sun_ns
}

/*
標準子午線を取得する。

Args:
	lambda_loc: 経度, rad

Returns:
	標準子午線における経度, rad
*/
func _get_lambda_loc_mer(lambda_loc float64) float64 {
	deg := lambda_loc * 180.0 / math.Pi
	return math.Round(deg/15.0) * 15.0 * math.Pi / 180.0
}
