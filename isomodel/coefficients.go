package isomodel

import (
	"math"
)

// 外表面熱抵抗, m2K/W
const r_se = 0.04

// 窓の日射透過率に対する日射熱取得率の比, -
const shgc_to_transmittance = 0.87

// 可動日除けが全閉となる日射量, W/m2
const shading_ratio_w_to_m2 = 500.0

// 可動日除けの最大使用率, -
const shading_maximum_use_ratio = 0.5

// ファン全圧, Pa
const fan_delta_p = 800.0

// ファン効率, -
const fan_n = 0.8

// 風圧係数差, -
const vent_dcp_wind_impact = 0.75

// 建物の代表高さ（煙突効果の計算用）, m
const h_zone = 39.0

/*
外皮と設備の条件から導出される、計算期間を通じて一定の係数
*/
type Coefficients struct {
	Q4Pa float64 // 4Pa時の床面積あたりの漏気量, m3/(h m2)

	His float64 // 床面積あたりの室空気と室内表面の間の熱コンダクタンス, W/m2K
	Cm  float64 // 床面積あたりの躯体の熱容量, kJ/m2K
	Am  float64 // 床面積あたりの有効躯体面積, m2/m2

	HWindow float64 // 床面積あたりの窓の熱コンダクタンス, W/m2K
	HOpaque float64 // 床面積あたりの不透明部位の熱コンダクタンス, W/m2K
	Hem     float64 // 床面積あたりの外気と躯体表面の間の熱コンダクタンス, W/m2K
	Hms     float64 // 床面積あたりの躯体と室内表面の間の熱コンダクタンス, W/m2K

	Prs         float64 // 室内表面に配分される熱取得の割合, -
	PrsInterior float64 // 内部発熱のうち室内表面に配分される割合, -
	PrsSolar    float64 // 日射熱取得のうち室内表面に配分される割合, -
	Prm         float64 // 躯体に配分される熱取得の割合, -
	PrmInterior float64 // 内部発熱のうち躯体に配分される割合, -
	PrmSolar    float64 // 日射熱取得のうち躯体に配分される割合, -

	NaturalLightRatio               OrientationArray // 方位ごとの床面積あたりの昼光透過面積, m2/m2
	NaturalLightShadeRatioReduction OrientationArray // 可動日除けによる昼光透過面積の低減, m2/m2
	SolarRatio                      OrientationArray // 方位ごとの床面積あたりの日射取得面積, m2/m2
	SolarShadeRatioReduction        OrientationArray // 可動日除けによる日射取得面積の低減, m2/m2

	MaxRatioElectricLighting  float64 // 照明の最大点灯率, -
	ElightNatural             float64 // 照明を消灯できる昼光照度, lx
	AreaNaturallyLightedRatio float64 // 昼光利用エリアの床面積比, -
	ShadingUsePerWPerM2       float64 // 日射量あたりの可動日除けの使用率, 1/(W/m2)

	WindImpactHz          float64 // 煙突効果の代表高さ, m
	WindImpactSupplyRatio float64 // 給気/排気の比率, -
}

/*
外皮・設備の条件から係数を導出する。

Args:
	s: 外皮
	b: 建物の用途に関する条件
	v: 機械換気

Returns:
	Coefficients

Notes:
	ISO 13790 7.2.2, 12.2.2, 12.3.1.2 及び ISO 15242 Annex D
*/
func DeriveCoefficients(s *Structure, b *Building, v *Ventilation) *Coefficients {
	c := &Coefficients{}
	a_f := s.FloorArea

	// 4Pa時の漏気量, m3/(h m2)
	c.Q4Pa = get_q_4pa(s.AirLeakageN50, a_f, s.BuildingHeight)

	// 室内表面の総合熱伝達率, W/m2K
	p97 := h_ci + h_ri*1.2

	// 室空気と室内表面の間の熱コンダクタンス, W/m2K
	c.His = get_h_is(p97)

	// 躯体の熱容量, kJ/m2K
	c.Cm = get_c_m(s.InteriorHeatCapacity, s.WallHeatCapacity, s.WallArea.Sum(), a_f)

	// 有効躯体面積, m2/m2
	c.Am = get_a_m(c.Cm)

	// 方位ごとの熱コンダクタンス・日射取得面積・昼光透過面積
	var h_wind, h_wall float64
	var nla, nlams, sa, sams OrientationArray
	for _, o := range Orientations {
		sf := get_surface_factors(
			s.WallArea[o], s.WindowArea[o],
			s.WallU[o], s.WindowU[o],
			s.WallSolarAbsorption[o],
			s.WindowSCF[o], s.WindowSDF[o],
			s.WindowSHGC[o],
		)
		h_wind += sf.h_window
		h_wall += sf.h_tot - sf.h_window
		nla[o] = sf.nla
		nlams[o] = sf.nlams
		sa[o] = sf.sa
		sams[o] = sf.sams
	}

	for _, o := range Orientations {
		c.NaturalLightRatio[o] = nla[o] / a_f
		c.NaturalLightShadeRatioReduction[o] = nlams[o]/a_f - c.NaturalLightRatio[o]
		c.SolarRatio[o] = sa[o] / a_f
		c.SolarShadeRatioReduction[o] = sams[o]/a_f - c.SolarRatio[o]
	}

	c.HWindow = h_wind / a_f
	c.HOpaque = math.Max(h_wall/a_f, 0.000001)

	// ISO 13790 C.2 式(C.2)(C.3) の定数部分
	c.Prs = (lambda_at - c.Am - c.HWindow/p97) / lambda_at
	c.PrsInterior = (1 - int_pair) * c.Prs
	c.PrsSolar = (1 - solar_pair) * c.Prs
	c.Prm = c.Am / lambda_at
	c.PrmInterior = (1 - int_pair) * c.Prm
	c.PrmSolar = (1 - solar_pair) * c.Prm

	// ISO 13790 12.2.2 式(64)
	c.Hms = p97 * c.Am

	// ISO 13790 12.2.2 式(63)
	c.Hem = 1 / (1/c.HOpaque - 1/c.Hms)

	c.MaxRatioElectricLighting, c.ElightNatural = b.LightingControl.lighting_ratio()
	c.AreaNaturallyLightedRatio = math.Max(0.0001, s.NaturallyLightedArea) / a_f
	c.ShadingUsePerWPerM2 = shading_maximum_use_ratio / shading_ratio_w_to_m2

	c.WindImpactHz = math.Max(0.1, h_zone)
	c.WindImpactSupplyRatio = math.Max(0.00001, v.FanControlFactor)

	return c
}

/*
4Pa時の床面積あたりの漏気量を計算する。

Args:
	n_50: 50Pa加圧時の換気回数, 1/h
	a_f: 床面積, m2
	h: 建物高さ, m

Returns:
	4Pa時の床面積あたりの漏気量, m3/(h m2)

Notes:
	ISO 15242 Annex D Table D.1
*/
func get_q_4pa(n_50, a_f, h float64) float64 {
	q_4pa_total := 0.19 * (n_50 * (a_f * h))
	return math.Max(0.000001, q_4pa_total/a_f)
}

/*
床面積あたりの室空気と室内表面の間の熱コンダクタンスを計算する。

Args:
	p97: 室内表面の総合熱伝達率, W/m2K

Returns:
	床面積あたりの熱コンダクタンス, W/m2K

Notes:
	ISO 13790 7.2.2.2 式(9) を床面積あたりで表したもの
*/
func get_h_is(p97 float64) float64 {
	// 室空気と室内表面の間の熱伝達率の逆数, m2K/W
	p98 := 1/h_ci - 1/p97
	return lambda_at / p98
}

/*
床面積あたりの躯体の熱容量を計算する。

Args:
	c_int: 床面積あたりの内部熱容量, J/m2K
	c_wall: 外壁面積あたりの熱容量, J/m2K
	a_wall: 外壁面積の合計, m2
	a_f: 床面積, m2

Returns:
	躯体の熱容量, kJ/m2K
*/
func get_c_m(c_int, c_wall, a_wall, a_f float64) float64 {
	c_m_int := c_int / 1000.0
	c_m_env := (c_wall * a_wall / a_f) / 1000.0
	return c_m_int + c_m_env
}

/*
躯体の熱容量から有効躯体面積を求める。

Args:
	c_m: 躯体の熱容量, kJ/m2K

Returns:
	床面積あたりの有効躯体面積, m2/m2

Notes:
	ISO 13790 12.3.1.2 Table 12 の区間を線形補間する。
*/
func get_a_m(c_m float64) float64 {
	if c_m > 370.0 {
		return 3.5
	} else if c_m > 260.0 {
		return 3.0 + 0.5*((c_m-260)/110)
	} else if c_m > 165.0 {
		return 2.5 + 0.5*((c_m-165)/95)
	}
	return 2.5
}

type surfaceFactors struct {
	h_tot    float64 // 外壁と窓の熱コンダクタンス, W/K
	h_window float64 // 窓の熱コンダクタンス, W/K
	nla      float64 // 昼光透過面積, m2
	nlams    float64 // 可動日除け使用時の昼光透過面積, m2
	sa       float64 // 日射取得面積, m2
	sams     float64 // 可動日除け使用時の日射取得面積, m2
}

/*
1方位分の外皮の熱コンダクタンス・日射取得面積・昼光透過面積を計算する。

Args:
	a_wall: 外壁面積, m2
	a_window: 窓面積, m2
	u_wall: 外壁の熱貫流率, W/m2K
	u_window: 窓の熱貫流率, W/m2K
	alpha_wall: 外壁の日射吸収率, -
	f_scf: 窓の日除け補正係数, -
	f_sdf: 可動日除けの補正係数, -
	shgc: 窓の垂直入射日射熱取得率, -

Notes:
	不透明部位の日射取得面積は ISO 13790 11.3.4 式(45)
	昼光透過面積は可動日除けの影響を受けないものとする。
*/
func get_surface_factors(
	a_wall, a_window float64,
	u_wall, u_window float64,
	alpha_wall float64,
	f_scf, f_sdf float64,
	shgc float64,
) surfaceFactors {
	// 窓の日射透過率, -
	tau_window := shgc / shgc_to_transmittance

	// 不透明部位の日射取得面積, m2
	sa_opaque := alpha_wall * r_se * u_wall * a_wall

	// 窓の日射取得面積, m2
	sa_window := a_window * shgc * f_scf

	h_window := u_window * a_window

	return surfaceFactors{
		h_tot:    h_window + u_wall*a_wall,
		h_window: h_window,
		nla:      a_window * tau_window,
		nlams:    a_window * tau_window,
		sa:       sa_window + sa_opaque,
		sams:     sa_window*f_sdf + sa_opaque,
	}
}

/*
照明の制御方式に応じた最大点灯率と消灯照度を取得する。

Returns:
	(1) 照明の最大点灯率, -
	(2) 照明を消灯できる昼光照度, lx
*/
func (lc LightingControl) lighting_ratio() (float64, float64) {
	switch lc {
	case LightingControlPresence:
		return 0.6, 500.0
	case LightingControlAutomatic:
		return 0.8, 300.0
	case LightingControlPresenceAndAuto:
		return 0.6, 300.0
	default:
		return 1.0, 500.0
	}
}
