package isomodel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// 地面の日射反射率, -
const rho_gnd = 0.1

/*
法線面直達日射量と水平面天空日射量から、方位ごとの傾斜面の日射量を計算する。

Args:
	i_dn_ns: 時刻nにおける法線面直達日射量, W/m2, [8760]
	i_sky_ns: 時刻nにおける水平面天空日射量, W/m2, [8760]
	h_sun_ns: 時刻nにおける太陽高度, rad, [8760]
	a_sun_ns: 時刻nにおける太陽方位角, rad, [8760]

Returns:
	時刻nにおける方位ごとの傾斜面の日射量（直達 + 天空 + 地盤反射）, W/m2, [8760, 9]
*/
func get_i_is_ns(i_dn_ns, i_sky_ns []float64, h_sun_ns, a_sun_ns mat.Vector) *mat.Dense {
	n := len(i_dn_ns)
	rad := mat.NewDense(n, NumberOfOrientations, nil)

	for _, o := range Orientations {
		// 天空に対する傾斜面の形態係数, -
		f_sky := _get_f_sky(o.beta_w())

		// 地面に対する傾斜面の形態係数, -
		f_gnd := 1.0 - f_sky

		for i := 0; i < n; i++ {
			h_sun := h_sun_ns.AtVec(i)

			// 水平面全天日射量, W/m2
			i_hrz := _get_i_hrz(i_dn_ns[i], i_sky_ns[i], h_sun)

			// 直達成分（太陽が沈んでいる場合は0）
			i_dn := 0.0
			if h_sun > 0 {
				i_dn = i_dn_ns[i] * _get_cos_phi(h_sun, a_sun_ns.AtVec(i), o)
			}

			// 天空成分
			i_sky := f_sky * i_sky_ns[i]

			// 地盤反射成分
			i_ref := f_gnd * rho_gnd * i_hrz

			rad.Set(i, int(o), i_dn+i_sky+i_ref)
		}
	}

	return rad
}

/*
傾斜面の天空に対する形態係数を計算する。

Args:
	beta_w: 傾斜面の傾斜角, rad

Returns:
	天空に対する形態係数, -
*/
func _get_f_sky(beta_w float64) float64 {
	return (1.0 + math.Cos(beta_w)) / 2.0
}

/*
水平面全天日射量を計算する。

Args:
	i_dn: 法線面直達日射量, W/m2
	i_sky: 水平面天空日射量, W/m2
	h_sun: 太陽高度, rad

Returns:
	水平面全天日射量, W/m2
*/
func _get_i_hrz(i_dn, i_sky, h_sun float64) float64 {
	return math.Sin(math.Max(h_sun, 0))*i_dn + i_sky
}

/*
傾斜面に入射する太陽の入射角の余弦を計算する。

Args:
	h_sun: 太陽高度, rad
	a_sun: 太陽方位角, rad
	o: 方位

Returns:
	入射角の余弦（裏面から入射する場合は0）, -
*/
func _get_cos_phi(h_sun, a_sun float64, o Orientation) float64 {
	sin_h_sun := math.Sin(h_sun)
	cos_h_sun := math.Cos(h_sun)

	// 水平面は方位角が定義されない。
	if o == OrientationRoof {
		return math.Max(sin_h_sun, 0)
	}

	beta_w := o.beta_w()
	alpha_w := o.alpha_w()

	// 太陽が天頂にある場合は方位角が定義されない。
	if cos_h_sun == 0.0 {
		return math.Max(sin_h_sun*math.Cos(beta_w), 0)
	}

	return math.Max(sin_h_sun*math.Cos(beta_w)+
		cos_h_sun*math.Sin(a_sun)*math.Sin(beta_w)*math.Sin(alpha_w)+
		cos_h_sun*math.Cos(a_sun)*math.Sin(beta_w)*math.Cos(alpha_w), 0)
}
