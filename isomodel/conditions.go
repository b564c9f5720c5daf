package isomodel

// 時刻間で引き継ぐ状態
type ThermalState struct {
	MassTemperature float64 // 前時刻の躯体温度, degree C
	AirTemperature  float64 // 前時刻の室温, degree C
}

// 計算開始時の躯体温度・室温, degree C
const theta_initial = 20.0

/*
計算開始時の状態を作成する。

Returns:
	躯体温度・室温を 20℃ とした ThermalState
*/
func InitializeConditions() ThermalState {
	return ThermalState{
		MassTemperature: theta_initial,
		AirTemperature:  theta_initial,
	}
}

// 1時間分の入力
type HourInput struct {
	Hour        int        // 1年を通した時刻（1 ～ 8760）
	WindSpeed   float64    // 風速, m/s
	Temperature float64    // 外気温度, degree C
	Radiation   SolarInput // 方位ごとの日射量
}

// 1時間の計算に用いる方位ごとの日射量, W/m2
type SolarInput struct {
	S float64
	E float64
	N float64
	W float64
	H float64
}

// 1時間分の結果（いずれも床面積あたり）, W/m2
type HourlyResult struct {
	HeatingNeed       float64 // 暖房負荷
	CoolingNeed       float64 // 冷房負荷
	InteriorLighting  float64 // 室内照明
	ExteriorLighting  float64 // 屋外照明
	Fan               float64 // ファン
	InteriorEquipment float64 // 室内機器
	ExteriorEquipment float64 // 屋外機器
	DomesticHotWater  float64 // 給湯
}
