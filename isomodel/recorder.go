package isomodel

import (
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// 記録する項目（Recorder の行）
const (
	recHeatingNeed = iota
	recCoolingNeed
	recInteriorLighting
	recExteriorLighting
	recFan
	recInteriorEquipment
	recExteriorEquipment
	recDomesticHotWater
	numberOfRecords
)

// 各月の開始時刻（1月1日0時からの通算時間）
var monthsInHours = [13]int{0, 744, 1416, 2160, 2880, 3624, 4344, 5088, 5832, 6552, 7296, 8016, 8760}

/*
時刻 n から月（1 ～ 12）を求める。

Args:
	n: 時刻（0始まり）
*/
func month_of_hour(n int) int {
	for m := 1; m <= 12; m++ {
		if n < monthsInHours[m] {
			return m
		}
	}
	return 12
}

/*
毎時の計算結果を保持する。
*/
type Recorder struct {
	r *mat.Dense // 計算結果（床面積あたり）, W/m2, [8, 8760]
}

func NewRecorder() *Recorder {
	return &Recorder{
		r: mat.NewDense(numberOfRecords, hoursOfYear, nil),
	}
}

func (rec *Recorder) record(n int, hr HourlyResult) {
	rec.r.Set(recHeatingNeed, n, hr.HeatingNeed)
	rec.r.Set(recCoolingNeed, n, hr.CoolingNeed)
	rec.r.Set(recInteriorLighting, n, hr.InteriorLighting)
	rec.r.Set(recExteriorLighting, n, hr.ExteriorLighting)
	rec.r.Set(recFan, n, hr.Fan)
	rec.r.Set(recInteriorEquipment, n, hr.InteriorEquipment)
	rec.r.Set(recExteriorEquipment, n, hr.ExteriorEquipment)
	rec.r.Set(recDomesticHotWater, n, hr.DomesticHotWater)
}

// 時刻 n（0始まり）の計算結果
func (rec *Recorder) At(n int) HourlyResult {
	c := rec.r.ColView(n)
	return HourlyResult{
		HeatingNeed:       c.AtVec(recHeatingNeed),
		CoolingNeed:       c.AtVec(recCoolingNeed),
		InteriorLighting:  c.AtVec(recInteriorLighting),
		ExteriorLighting:  c.AtVec(recExteriorLighting),
		Fan:               c.AtVec(recFan),
		InteriorEquipment: c.AtVec(recInteriorEquipment),
		ExteriorEquipment: c.AtVec(recExteriorEquipment),
		DomesticHotWater:  c.AtVec(recDomesticHotWater),
	}
}

// 項目ごとの1年分の値, W/m2, [8760]
func (rec *Recorder) series(i int) []float64 {
	return rec.r.RawRowView(i)
}

// 暖房負荷の年間合計, Wh/m2
func (rec *Recorder) AnnualHeatingNeed() float64 {
	return floats.Sum(rec.series(recHeatingNeed))
}

// 冷房負荷の年間合計, Wh/m2
func (rec *Recorder) AnnualCoolingNeed() float64 {
	return floats.Sum(rec.series(recCoolingNeed))
}

/*
毎時の値を月ごとに合計する。

Args:
	hourly: 毎時の値, [8760]

Returns:
	月ごとの合計, [12]
*/
func sum_hours_by_month(hourly []float64) [12]float64 {
	var monthly [12]float64
	for m := 0; m < 12; m++ {
		monthly[m] = floats.Sum(hourly[monthsInHours[m]:monthsInHours[m+1]])
	}
	return monthly
}

type hourlyRow struct {
	Hour              int     `csv:"hour"`
	Month             int     `csv:"month"`
	HeatingNeed       float64 `csv:"heating_need"`
	CoolingNeed       float64 `csv:"cooling_need"`
	InteriorLighting  float64 `csv:"interior_lighting"`
	ExteriorLighting  float64 `csv:"exterior_lighting"`
	Fan               float64 `csv:"fan"`
	InteriorEquipment float64 `csv:"interior_equipment"`
	ExteriorEquipment float64 `csv:"exterior_equipment"`
	DomesticHotWater  float64 `csv:"domestic_hot_water"`
}

/*
毎時の計算結果をCSV形式で書き出す。

Args:
	w: 書き出し先
*/
func (rec *Recorder) WriteHourlyCSV(w io.Writer) error {
	rows := make([]*hourlyRow, hoursOfYear)
	for n := 0; n < hoursOfYear; n++ {
		hr := rec.At(n)
		rows[n] = &hourlyRow{
			Hour:              n + 1,
			Month:             month_of_hour(n),
			HeatingNeed:       hr.HeatingNeed,
			CoolingNeed:       hr.CoolingNeed,
			InteriorLighting:  hr.InteriorLighting,
			ExteriorLighting:  hr.ExteriorLighting,
			Fan:               hr.Fan,
			InteriorEquipment: hr.InteriorEquipment,
			ExteriorEquipment: hr.ExteriorEquipment,
			DomesticHotWater:  hr.DomesticHotWater,
		}
	}
	return gocsv.Marshal(rows, w)
}

type monthlyRow struct {
	Month            int     `csv:"month"`
	ElecHeating      float64 `csv:"electricity_heating"`
	ElecCooling      float64 `csv:"electricity_cooling"`
	ElecIntLights    float64 `csv:"electricity_interior_lights"`
	ElecExtLights    float64 `csv:"electricity_exterior_lights"`
	ElecFans         float64 `csv:"electricity_fans"`
	ElecPumps        float64 `csv:"electricity_pumps"`
	ElecIntEquipment float64 `csv:"electricity_interior_equipment"`
	ElecExtEquipment float64 `csv:"electricity_exterior_equipment"`
	ElecWaterSystems float64 `csv:"electricity_water_systems"`
	GasHeating       float64 `csv:"gas_heating"`
	GasCooling       float64 `csv:"gas_cooling"`
	GasIntEquipment  float64 `csv:"gas_interior_equipment"`
	GasWaterSystems  float64 `csv:"gas_water_systems"`
}

/*
月別の燃料種別・用途ごとのエネルギー消費量をCSV形式で書き出す。

Args:
	w: 書き出し先
	t: EndUseTable
*/
func WriteMonthlyCSV(w io.Writer, t *EndUseTable) error {
	rows := make([]*monthlyRow, 12)
	for m, e := range t {
		rows[m] = &monthlyRow{
			Month:            m + 1,
			ElecHeating:      e[0],
			ElecCooling:      e[1],
			ElecIntLights:    e[2],
			ElecExtLights:    e[3],
			ElecFans:         e[4],
			ElecPumps:        e[5],
			ElecIntEquipment: e[6],
			ElecExtEquipment: e[7],
			ElecWaterSystems: e[8],
			GasHeating:       e[9],
			GasCooling:       e[10],
			GasIntEquipment:  e[11],
			GasWaterSystems:  e[12],
		}
	}
	return gocsv.Marshal(rows, w)
}
