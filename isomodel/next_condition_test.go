package isomodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNetwork(t *testing.T) {
	c := &Coefficients{His: 15.5113636363636, HWindow: 0.324388413048425, Hms: 23.0, Hem: 1.0, Cm: 180.0}

	nw := get_network(c, 0.412746986128384)

	assert.InDelta(t, 0.4020487, nw.h_1, 1e-6)
	assert.InDelta(t, 0.7264372, nw.h_2, 1e-6)
	assert.InDelta(t, 1/(1/nw.h_2+1/23.0), nw.h_3, 1e-12)
	assert.Equal(t, 180.0, nw.c_m)
}

func TestNetworkSolve_Equilibrium(t *testing.T) {
	c := &Coefficients{His: 15.5, HWindow: 0.5, Hms: 23.0, Hem: 1.0, Cm: 180.0}
	nw := get_network(c, 0.4)

	// 熱取得が無く、全節点が外気温度と等しい場合は温度が変化しない。
	sol := nw.solve(5.0, 0.0, gainSplit{}, 5.0, 5.0)

	assert.InDelta(t, 5.0, sol.theta_m_t, 1e-9)
	assert.InDelta(t, 5.0, sol.theta_m, 1e-9)
	assert.InDelta(t, 5.0, sol.theta_s, 1e-9)
	assert.InDelta(t, 5.0, sol.theta_air, 1e-9)
}

func TestNetworkSolve_HeatingRaisesAir(t *testing.T) {
	c := &Coefficients{His: 15.5, HWindow: 0.5, Hms: 23.0, Hem: 1.0, Cm: 180.0}
	nw := get_network(c, 0.4)

	sol_0 := nw.solve(20.0, 0.0, gainSplit{}, 0.0, 0.0)
	sol_10 := nw.solve(20.0, phi_virtual, gainSplit{}, 0.0, 0.0)

	assert.Greater(t, sol_10.theta_air, sol_0.theta_air)
	assert.Greater(t, sol_10.theta_m_t, sol_0.theta_m_t)
	assert.InDelta(t, 0.5*(20.0+sol_0.theta_m_t), sol_0.theta_m, 1e-12)
}

func TestGetGainSplit(t *testing.T) {
	c := &Coefficients{PrsSolar: 0.3, PrsInterior: 0.15, PrmSolar: 0.6, PrmInterior: 0.3}

	g := get_gain_split(c, 100.0, 20.0)

	assert.InDelta(t, 10.0, g.phi_ia, 1e-12)
	assert.InDelta(t, 33.0, g.phi_st, 1e-12)
	assert.InDelta(t, 66.0, g.phi_m, 1e-12)
}

func TestGetPhiHc(t *testing.T) {
	// 室温が設定温度に等しければ負荷は0
	assert.Equal(t, 0.0, get_phi_hc(18.0, 18.0, 19.0))

	// 10 W/m2 で1K上昇する場合、2K上げるには 20 W/m2
	assert.InDelta(t, 20.0, get_phi_hc(20.0, 18.0, 19.0), 1e-12)
	assert.InDelta(t, -30.0, get_phi_hc(15.0, 18.0, 19.0), 1e-12)
}

func TestGetPhiActual(t *testing.T) {
	tests := []struct {
		name        string
		phi_heating float64
		phi_cooling float64
		actual      float64
		ht          float64
		cl          float64
	}{
		{"heating", 12.0, 40.0, 12.0, 12.0, 0.0},
		{"cooling", -40.0, -12.0, -12.0, 0.0, 12.0},
		{"free floating", -5.0, 5.0, 0.0, 0.0, 0.0},
		{"on heating setpoint", 0.0, 30.0, 0.0, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ht, cl := get_phi_actual(tt.phi_heating, tt.phi_cooling)
			assert.Equal(t, tt.actual, actual)
			assert.Equal(t, tt.ht, ht)
			assert.Equal(t, tt.cl, cl)
			assert.Equal(t, 0.0, ht*cl)
		})
	}
}
