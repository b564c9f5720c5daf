package isomodel

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// 計算結果
type Result struct {
	Model        *Model
	Coefficients *Coefficients
	Schedules    *Schedules
	Recorder     *Recorder   // 毎時の負荷・電力（床面積あたり）, W/m2
	EndUses      EndUseTable // 月別の燃料種別・用途ごとのエネルギー消費量, kWh/m2
	Elapsed      time.Duration
}

/*
1年分（8760時間）の計算を行う。

Args:
	ctx: context
	logger: ロガー
	m: 計算条件
	w: 気象データ

Returns:
	Result
*/
func Simulate(ctx context.Context, logger *zap.Logger, m *Model, w *Weather) (*Result, error) {
	start := time.Now()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWeatherLength
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("building", m.Name))

	// 係数の導出とスケジュールの作成を並行して行う。
	var c *Coefficients
	var sc *Schedules
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c = DeriveCoefficients(&m.Structure, &m.Building, &m.Ventilation)
	}()
	go func() {
		defer wg.Done()
		sc = GenerateSchedules(&m.Population, &m.Heating, &m.Cooling, &m.Ventilation)
	}()
	wg.Wait()

	logger.Debug("coefficients derived",
		zap.Float64("cm", c.Cm),
		zap.Float64("am", c.Am),
		zap.Float64("his", c.His),
		zap.Float64("hem", c.Hem),
		zap.Float64("hms", c.Hms),
		zap.Float64("hwindow", c.HWindow),
		zap.Float64("q4pa", c.Q4Pa),
		zap.Float64("theta_o_ave", w.TemperatureAverage()),
	)

	logger.Info("計算開始")

	engine := NewEngine(m, c, sc)
	rec := NewRecorder()

	state := InitializeConditions()
	month := 1
	for n := 0; n < hoursOfYear; n++ {
		in := HourInput{
			Hour:        n + 1,
			WindSpeed:   w.WindSpeed[n],
			Temperature: w.Temperature[n],
			Radiation:   w.solar_input(n),
		}

		var hr HourlyResult
		state, hr = engine.RunTick(state, in)
		rec.record(n, hr)

		if n+1 == monthsInHours[month] {
			logger.Debug(fmt.Sprintf("%d / 12 calculated.", month))
			month++
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("ログ作成")

	res := &Result{
		Model:        m,
		Coefficients: c,
		Schedules:    sc,
		Recorder:     rec,
		EndUses:      get_end_use_table(rec, &m.Heating, &m.Cooling),
		Elapsed:      time.Since(start),
	}

	annual := res.EndUses.Annual()
	logger.Info("calculation finished",
		zap.Float64("electricity_kwh_m2", annual.FuelTotal(FuelElectricity)),
		zap.Float64("gas_kwh_m2", annual.FuelTotal(FuelGas)),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

/*
年間の暖房・冷房負荷の比率から分配効率を求める。

Args:
	q_need_ht_yr: 暖房負荷の年間合計, Wh/m2
	q_need_cl_yr: 冷房負荷の年間合計, Wh/m2
	ht: 暖房
	cl: 冷房

Returns:
	(1) 暖房の分配効率, -
	(2) 冷房の分配効率, -

Notes:
	暖房・冷房負荷がともに0の場合は比率を0.5とする。
*/
func get_eta_dist(q_need_ht_yr, q_need_cl_yr float64, ht *Heating, cl *Cooling) (float64, float64) {
	// 暖房負荷の比率, -
	f_dem_ht := 0.5
	if total := q_need_ht_yr + q_need_cl_yr; total > 0 {
		f_dem_ht = math.Max(q_need_ht_yr/total, 0.1)
	}

	// 冷房負荷の比率, -
	f_dem_cl := math.Max(1.0-f_dem_ht, 0.1)

	eta_dist_ht := 1.0 / (1.0 + ht.HvacLossFactor + ht.HotcoldWasteFactor/f_dem_ht)
	eta_dist_cl := 1.0 / (1.0 + cl.HvacLossFactor + ht.HotcoldWasteFactor/f_dem_cl)

	return eta_dist_ht, eta_dist_cl
}

/*
毎時の負荷を燃料種別・用途ごとのエネルギー消費量に換算し、月別に集計する。

Args:
	rec: 毎時の計算結果
	ht: 暖房
	cl: 冷房

Returns:
	EndUseTable, kWh/m2
*/
func get_end_use_table(rec *Recorder, ht *Heating, cl *Cooling) EndUseTable {
	eta_dist_ht, eta_dist_cl := get_eta_dist(rec.AnnualHeatingNeed(), rec.AnnualCoolingNeed(), ht, cl)

	// 暖房・冷房のエネルギー消費量, W/m2, [8760]
	q_ht_sys := make([]float64, hoursOfYear)
	q_cl_sys := make([]float64, hoursOfYear)
	floats.ScaleTo(q_ht_sys, 1.0/eta_dist_ht/ht.Efficiency, rec.series(recHeatingNeed))
	floats.ScaleTo(q_cl_sys, 1.0/eta_dist_cl/cl.COP, rec.series(recCoolingNeed))

	zeroes := make([]float64, hoursOfYear)

	elec_ht, gas_ht := zeroes, q_ht_sys
	if ht.EnergyType == EnergyTypeElectric {
		elec_ht, gas_ht = q_ht_sys, zeroes
	}

	// EndUseKeys の順
	hourly := [NumberOfEndUses][]float64{
		elec_ht,
		q_cl_sys,
		rec.series(recInteriorLighting),
		rec.series(recExteriorLighting),
		rec.series(recFan),
		zeroes,
		rec.series(recInteriorEquipment),
		rec.series(recExteriorEquipment),
		rec.series(recDomesticHotWater),
		gas_ht,
		zeroes,
		zeroes,
		zeroes,
	}

	var t EndUseTable
	for i, h := range hourly {
		monthly := sum_hours_by_month(h)
		for m := 0; m < 12; m++ {
			t[m][i] = monthly[m] * watt_to_kwh
		}
	}
	return t
}
