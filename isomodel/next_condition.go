package isomodel

import (
	"math"
)

/*
5R1C熱回路網の熱コンダクタンス（床面積あたり）

ISO 13790 C.3
*/
type network struct {
	h_ei     float64 // 換気, W/m2K
	h_is     float64 // 室空気と室内表面の間, W/m2K
	h_ms     float64 // 躯体と室内表面の間, W/m2K
	h_em     float64 // 外気と躯体の間, W/m2K
	h_window float64 // 窓, W/m2K
	h_1      float64 // 式(C.6), W/m2K
	h_2      float64 // 式(C.7), W/m2K
	h_3      float64 // 式(C.8), W/m2K
	c_m      float64 // 躯体の熱容量, kJ/m2K
}

/*
換気による熱コンダクタンスから熱回路網を組み立てる。

Args:
	c: Coefficients
	h_ei: 換気による熱コンダクタンス, W/m2K

Returns:
	network
*/
func get_network(c *Coefficients, h_ei float64) network {
	h_1 := 1 / (1/h_ei + 1/c.His)
	h_2 := h_1 + c.HWindow
	h_3 := 1 / (1/h_2 + 1/c.Hms)
	return network{
		h_ei:     h_ei,
		h_is:     c.His,
		h_ms:     c.Hms,
		h_em:     c.Hem,
		h_window: c.HWindow,
		h_1:      h_1,
		h_2:      h_2,
		h_3:      h_3,
		c_m:      c.Cm,
	}
}

// 熱取得の各節点への配分, W/m2
type gainSplit struct {
	phi_ia float64 // 室空気
	phi_st float64 // 室内表面
	phi_m  float64 // 躯体
}

/*
日射熱取得と内部発熱を各節点に配分する。

Args:
	c: Coefficients
	phi_sol: 日射熱取得, W/m2
	phi_int: 内部発熱, W/m2

Returns:
	gainSplit

Notes:
	ISO 13790 C.2 式(C.1)(C.2)(C.3)
*/
func get_gain_split(c *Coefficients, phi_sol, phi_int float64) gainSplit {
	return gainSplit{
		phi_ia: solar_pair*phi_sol + int_pair*phi_int,
		phi_st: c.PrsSolar*phi_sol + c.PrsInterior*phi_int,
		phi_m:  c.PrmSolar*phi_sol + c.PrmInterior*phi_int,
	}
}

// 熱回路網を解いた結果, degree C
type networkSolution struct {
	theta_m_t float64 // 時刻末の躯体温度
	theta_m   float64 // 時刻平均の躯体温度
	theta_s   float64 // 室内表面温度
	theta_air float64 // 室温
}

/*
与えた負荷のもとで熱回路網を解く。

Args:
	theta_m_prev: 前時刻の躯体温度, degree C
	phi_hc: 室空気に加える負荷（暖房を正）, W/m2
	g: 熱取得の配分
	theta_o: 外気温度, degree C
	theta_sup: 流入空気の温度, degree C

Returns:
	networkSolution

Notes:
	ISO 13790 C.3 式(C.4)(C.5)(C.9)(C.10)(C.11)
*/
func (nw *network) solve(theta_m_prev, phi_hc float64, g gainSplit, theta_o, theta_sup float64) networkSolution {
	// 室空気に加わる熱, W/m2
	phi_ia := g.phi_ia + phi_hc

	// 式(C.5)
	phi_m_tot := g.phi_m + nw.h_em*theta_o +
		nw.h_3*(g.phi_st+nw.h_window*theta_o+nw.h_1*(phi_ia/nw.h_ei+theta_sup))/nw.h_2

	// 躯体の熱容量, Wh/m2K
	c_m_wh := nw.c_m / 3.6

	// 式(C.4)
	theta_m_t := (theta_m_prev*(c_m_wh-0.5*(nw.h_3+nw.h_em)) + phi_m_tot) / (c_m_wh + 0.5*(nw.h_3+nw.h_em))

	// 式(C.9)
	theta_m := 0.5 * (theta_m_prev + theta_m_t)

	// 式(C.10)
	theta_s := (nw.h_ms*theta_m + g.phi_st + nw.h_window*theta_o + nw.h_1*(theta_sup+phi_ia/nw.h_ei)) /
		(nw.h_ms + nw.h_window + nw.h_1)

	// 式(C.11)
	theta_air := (nw.h_is*theta_s + nw.h_ei*theta_sup + phi_ia) / (nw.h_is + nw.h_ei)

	return networkSolution{
		theta_m_t: theta_m_t,
		theta_m:   theta_m,
		theta_s:   theta_s,
		theta_air: theta_air,
	}
}

/*
設定温度を実現するために必要な負荷を、0 W/m2 と 10 W/m2 の仮想負荷に対する室温から線形補間で求める。

Args:
	theta_set: 設定温度, degree C
	theta_air_0: 仮想負荷 0 W/m2 のときの室温, degree C
	theta_air_10: 仮想負荷 10 W/m2 のときの室温, degree C

Returns:
	必要な負荷（暖房を正）, W/m2

Notes:
	ISO 13790 C.4.2
*/
func get_phi_hc(theta_set, theta_air_0, theta_air_10 float64) float64 {
	return phi_virtual * (theta_set - theta_air_0) / (theta_air_10 - theta_air_0)
}

/*
暖房と冷房の設定温度から実際に加える負荷を求める。

Args:
	phi_heating: 暖房設定温度を実現する負荷, W/m2
	phi_cooling: 冷房設定温度を実現する負荷, W/m2

Returns:
	(1) 実際に加える負荷（暖房を正）, W/m2
	(2) 暖房負荷, W/m2
	(3) 冷房負荷, W/m2
*/
func get_phi_actual(phi_heating, phi_cooling float64) (float64, float64, float64) {
	phi_actual := math.Max(0.0, phi_heating) + math.Min(phi_cooling, 0.0)
	return phi_actual, math.Max(0.0, phi_actual), math.Max(0.0, -phi_actual)
}
