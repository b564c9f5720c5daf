package isomodel

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// 気象データの作成方法
const (
	WeatherMethodRadiation = "radiation" // 方位別日射量を含むファイル
	WeatherMethodSolar     = "solar"     // 法線面直達日射量・水平面天空日射量を含むファイル
)

type Weather struct {
	WindSpeed   []float64  // 風速, m/s, [8760]
	Temperature []float64  // 外気温度, degree C, [8760]
	Radiation   *mat.Dense // 方位ごとの日射量, W/m2, [8760, 9]
}

/*
Args:
	wind_speed: 風速, m/s, [8760]
	temperature: 外気温度, degree C, [8760]
	radiation: 方位ごとの日射量, W/m2, [8760, 9]
*/
func NewWeather(wind_speed, temperature []float64, radiation *mat.Dense) (*Weather, error) {
	w := &Weather{
		WindSpeed:   wind_speed,
		Temperature: temperature,
		Radiation:   radiation,
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// 風速・外気温度・日射量がいずれも8760時間分あることを確認する。
func (w *Weather) validate() error {
	if len(w.WindSpeed) != hoursOfYear {
		return fmt.Errorf("%w (wind_speed %d)", ErrWeatherLength, len(w.WindSpeed))
	}
	if len(w.Temperature) != hoursOfYear {
		return fmt.Errorf("%w (temperature %d)", ErrWeatherLength, len(w.Temperature))
	}
	if w.Radiation == nil {
		return fmt.Errorf("%w (no radiation)", ErrWeatherLength)
	}
	if r, c := w.Radiation.Dims(); r != hoursOfYear || c != NumberOfOrientations {
		return fmt.Errorf("%w (radiation %dx%d)", ErrWeatherLength, r, c)
	}
	return nil
}

/*
気象データを作成する。

Args:
	method: 気象データの作成方法（"radiation" 又は "solar"）
	file_path: 気象データのファイルのパス

Returns:
	Weather
*/
func MakeWeather(method string, file_path string) (*Weather, error) {
	file, err := os.Open(file_path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	w, err := ReadWeather(method, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file_path, err)
	}
	return w, nil
}

/*
気象データを読み込む。

Args:
	method: 気象データの作成方法（"radiation" 又は "solar"）
	r: CSVの読み込み元

Returns:
	Weather
*/
func ReadWeather(method string, r io.Reader) (*Weather, error) {
	switch method {
	case WeatherMethodRadiation:
		return read_radiation_weather(r)
	case WeatherMethodSolar:
		return read_solar_weather(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrWeatherMethod, method)
	}
}

type RadiationWeatherRow struct {
	WindSpeed   float64 `csv:"wind_speed"`
	Temperature float64 `csv:"temperature"`
	SolarS      float64 `csv:"solar_s"`
	SolarSE     float64 `csv:"solar_se"`
	SolarE      float64 `csv:"solar_e"`
	SolarNE     float64 `csv:"solar_ne"`
	SolarN      float64 `csv:"solar_n"`
	SolarNW     float64 `csv:"solar_nw"`
	SolarW      float64 `csv:"solar_w"`
	SolarSW     float64 `csv:"solar_sw"`
	SolarH      float64 `csv:"solar_h"`
}

func read_radiation_weather(r io.Reader) (*Weather, error) {
	var pp []*RadiationWeatherRow
	if err := gocsv.Unmarshal(r, &pp); err != nil {
		return nil, err
	}
	if len(pp) != hoursOfYear {
		return nil, fmt.Errorf("%w (got %d)", ErrWeatherLength, len(pp))
	}

	wind_speed := make([]float64, hoursOfYear)
	temperature := make([]float64, hoursOfYear)
	radiation := mat.NewDense(hoursOfYear, NumberOfOrientations, nil)
	for i, row := range pp {
		wind_speed[i] = row.WindSpeed
		temperature[i] = row.Temperature
		radiation.SetRow(i, []float64{
			row.SolarS, row.SolarSE, row.SolarE, row.SolarNE,
			row.SolarN, row.SolarNW, row.SolarW, row.SolarSW,
			row.SolarH,
		})
	}

	return NewWeather(wind_speed, temperature, radiation)
}

type SolarWeatherRow struct {
	Latitude                    float64 `csv:"latitude"`
	Longitude                   float64 `csv:"longitude"`
	WindSpeed                   float64 `csv:"wind_speed"`
	Temperature                 float64 `csv:"temperature"`
	NormalDirectSolarRadiation  float64 `csv:"normal_direct_solar_radiation"`
	HorizontalSkySolarRadiation float64 `csv:"horizontal_sky_solar_radiation"`
}

func read_solar_weather(r io.Reader) (*Weather, error) {
	var pp []*SolarWeatherRow
	if err := gocsv.Unmarshal(r, &pp); err != nil {
		return nil, err
	}
	if len(pp) != hoursOfYear {
		return nil, fmt.Errorf("%w (got %d)", ErrWeatherLength, len(pp))
	}

	// 緯度・経度は1行目の値を用いる。
	phi_loc, lambda_loc := math.Pi/180*pp[0].Latitude, math.Pi/180*pp[0].Longitude

	// 太陽位置
	//   (1) 時刻 n における太陽高度, rad, [n]
	//   (2) 時刻 n における太陽方位角, rad, [n]
	h_sun_ns, a_sun_ns := calc_solar_position(phi_loc, lambda_loc)

	f := func(getc func(row *SolarWeatherRow) float64) []float64 {
		ret := make([]float64, len(pp))
		for i := range pp {
			ret[i] = getc(pp[i])
		}
		return ret
	}

	// 風速, m/s
	wind_speed := f(func(row *SolarWeatherRow) float64 { return row.WindSpeed })

	// 外気温度, degree C
	temperature := f(func(row *SolarWeatherRow) float64 { return row.Temperature })

	// 法線面直達日射量, W/m2
	i_dn_ns := f(func(row *SolarWeatherRow) float64 { return row.NormalDirectSolarRadiation })

	// 水平面天空日射量, W/m2
	i_sky_ns := f(func(row *SolarWeatherRow) float64 { return row.HorizontalSkySolarRadiation })

	return NewWeather(wind_speed, temperature, get_i_is_ns(i_dn_ns, i_sky_ns, h_sun_ns, a_sun_ns))
}

/*
時刻nの計算に用いる日射量を取得する。

Args:
	n: 時刻（0始まり）

Returns:
	SolarInput

Notes:
	屋根（水平面）の日射量は0とする。
*/
func (w *Weather) solar_input(n int) SolarInput {
	return SolarInput{
		S: w.Radiation.At(n, int(OrientationS)),
		E: w.Radiation.At(n, int(OrientationE)),
		N: w.Radiation.At(n, int(OrientationN)),
		W: w.Radiation.At(n, int(OrientationW)),
		H: 0.0,
	}
}

/*
外気温度の年間平均値を取得する。

Returns:
	外気温度の年間平均値, degree C
*/
func (w *Weather) TemperatureAverage() float64 {
	return floats.Sum(w.Temperature) / float64(len(w.Temperature))
}
