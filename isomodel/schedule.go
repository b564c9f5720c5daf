package isomodel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/mat"
)

// 1日の時間数
const hoursOfDay = 24

// 1週間の日数
const daysOfWeek = 7

/*
時刻 × 曜日 のスケジュール（在室時間帯から作成され、計算中は変更しない）
*/
type Schedules struct {
	Ventilation       *mat.Dense // 換気量, m3/(h m2), [24, 7]
	Fan               *mat.Dense // ファンの運転, -, [24, 7]
	ExteriorEquipment *mat.Dense // 屋外機器の使用率, -, [24, 7]
	InteriorEquipment *mat.Dense // 室内機器の使用率, -, [24, 7]
	ExteriorLighting  *mat.Dense // 屋外照明の点灯, -, [24, 7]
	InteriorLighting  *mat.Dense // 室内照明の点灯率, -, [24, 7]
	HeatingSetpoint   *mat.Dense // 暖房設定温度, degree C, [24, 7]
	CoolingSetpoint   *mat.Dense // 冷房設定温度, degree C, [24, 7]
}

/*
在室時間帯と設定温度からスケジュールを作成する。

Args:
	p: 在室時間帯
	ht: 暖房
	cl: 冷房
	v: 機械換気

Returns:
	Schedules
*/
func GenerateSchedules(p *Population, ht *Heating, cl *Cooling, v *Ventilation) *Schedules {
	sc := &Schedules{
		Ventilation:       mat.NewDense(hoursOfDay, daysOfWeek, nil),
		Fan:               mat.NewDense(hoursOfDay, daysOfWeek, nil),
		ExteriorEquipment: mat.NewDense(hoursOfDay, daysOfWeek, nil),
		InteriorEquipment: mat.NewDense(hoursOfDay, daysOfWeek, nil),
		ExteriorLighting:  mat.NewDense(hoursOfDay, daysOfWeek, nil),
		InteriorLighting:  mat.NewDense(hoursOfDay, daysOfWeek, nil),
		HeatingSetpoint:   mat.NewDense(hoursOfDay, daysOfWeek, nil),
		CoolingSetpoint:   mat.NewDense(hoursOfDay, daysOfWeek, nil),
	}

	for h := 0; h < hoursOfDay; h++ {
		// 在室時刻か否か
		h_occupied := h >= p.HourStart && h < p.HourEnd

		for d := 0; d < daysOfWeek; d++ {
			// 在室曜日か否か
			d_occupied := d >= p.DayStart && d < p.DayEnd

			// 在室時刻かつ在室曜日か否か
			occupied := h_occupied && d_occupied

			sc.Ventilation.Set(h, d, choose(h_occupied, v.SupplyRate, 0.0))
			sc.Fan.Set(h, d, choose(h_occupied, 1.0, 0.0))
			sc.ExteriorEquipment.Set(h, d, choose(h_occupied, 0.3, 0.12))
			sc.InteriorEquipment.Set(h, d, choose(occupied, 0.9, 0.3))
			sc.ExteriorLighting.Set(h, d, choose(h_occupied, 0.0, 1.0))
			sc.InteriorLighting.Set(h, d, choose(occupied, 0.9, 0.05))
			sc.HeatingSetpoint.Set(h, d, choose(occupied, ht.SetpointOccupied, ht.SetpointUnoccupied))
			sc.CoolingSetpoint.Set(h, d, choose(occupied, cl.SetpointOccupied, cl.SetpointUnoccupied))
		}
	}

	return sc
}

func choose(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

/*
1年を通した時刻 n（1始まり）に対応するスケジュール上の時刻と曜日を求める。

Args:
	n: 1年を通した時刻（1 ～ 8760）

Returns:
	(1) 時刻, 0 ～ 23
	(2) 曜日, 0 ～ 6（1月1日を0とする）
*/
func schedule_key(n int) (int, int) {
	return (n - 1) % hoursOfDay, ((n - 1) / hoursOfDay) % daysOfWeek
}

// 時刻 n におけるスケジュールの値
type scheduleValues struct {
	ventilation        float64
	fan                float64
	exterior_equipment float64
	interior_equipment float64
	exterior_lighting  float64
	interior_lighting  float64
	heating_setpoint   float64
	cooling_setpoint   float64
}

func (sc *Schedules) at(n int) scheduleValues {
	h, d := schedule_key(n)
	return scheduleValues{
		ventilation:        sc.Ventilation.At(h, d),
		fan:                sc.Fan.At(h, d),
		exterior_equipment: sc.ExteriorEquipment.At(h, d),
		interior_equipment: sc.InteriorEquipment.At(h, d),
		exterior_lighting:  sc.ExteriorLighting.At(h, d),
		interior_lighting:  sc.InteriorLighting.At(h, d),
		heating_setpoint:   sc.HeatingSetpoint.At(h, d),
		cooling_setpoint:   sc.CoolingSetpoint.At(h, d),
	}
}

type scheduleRow struct {
	Hour int     `csv:"hour"`
	Day0 float64 `csv:"day0"`
	Day1 float64 `csv:"day1"`
	Day2 float64 `csv:"day2"`
	Day3 float64 `csv:"day3"`
	Day4 float64 `csv:"day4"`
	Day5 float64 `csv:"day5"`
	Day6 float64 `csv:"day6"`
}

func schedule_rows(m *mat.Dense) []*scheduleRow {
	rows := make([]*scheduleRow, hoursOfDay)
	for h := 0; h < hoursOfDay; h++ {
		r := m.RawRowView(h)
		rows[h] = &scheduleRow{
			Hour: h,
			Day0: r[0], Day1: r[1], Day2: r[2], Day3: r[3],
			Day4: r[4], Day5: r[5], Day6: r[6],
		}
	}
	return rows
}

/*
スケジュールをCSVファイルに保存する。

Args:
	output_data_dir: 出力フォルダへのパス
*/
func (sc *Schedules) SaveSchedule(output_data_dir string) error {
	tables := []struct {
		name string
		m    *mat.Dense
	}{
		{"ventilation", sc.Ventilation},
		{"fan", sc.Fan},
		{"exterior_equipment", sc.ExteriorEquipment},
		{"interior_equipment", sc.InteriorEquipment},
		{"exterior_lighting", sc.ExteriorLighting},
		{"interior_lighting", sc.InteriorLighting},
		{"heating_setpoint", sc.HeatingSetpoint},
		{"cooling_setpoint", sc.CoolingSetpoint},
	}

	for _, t := range tables {
		path := filepath.Join(output_data_dir, fmt.Sprintf("schedule_%s.csv", t.name))
		if err := save_csv(path, schedule_rows(t.m)); err != nil {
			return fmt.Errorf("save schedule %s: %w", t.name, err)
		}
	}
	return nil
}

// rows をCSVファイルに書き出す。ファイルを閉じる際のエラーも返す。
func save_csv(path string, rows interface{}) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return gocsv.MarshalFile(rows, file)
}
