package isomodel

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// 照明の制御方式
type LightingControl int

// 照明の制御方式
const (
	LightingControlManual         LightingControl = iota + 1 // 手動スイッチ
	LightingControlPresence                                  // 在室検知
	LightingControlAutomatic                                 // 自動調光
	LightingControlPresenceAndAuto                           // 在室検知 + 自動調光
)

func (lc LightingControl) String() string {
	switch lc {
	case LightingControlPresence:
		return "presence"
	case LightingControlAutomatic:
		return "automatic"
	case LightingControlPresenceAndAuto:
		return "presence_auto"
	default:
		return "manual"
	}
}

//---------------------------------------------------------------------------------------------------//

// 暖房のエネルギー種別
type EnergyType int

// 暖房のエネルギー種別
const (
	EnergyTypeElectric EnergyType = 1 // 電気
	EnergyTypeGas      EnergyType = 2 // ガス
)

func (e EnergyType) String() string {
	if e == EnergyTypeElectric {
		return "electric"
	}
	return "gas"
}

//---------------------------------------------------------------------------------------------------//

// 建物の外皮
type Structure struct {
	FloorArea            float64          // 床面積, m2
	BuildingHeight       float64          // 建物高さ, m
	AirLeakageN50        float64          // 50Pa加圧時の換気回数, 1/h
	InteriorHeatCapacity float64          // 床面積あたりの内部熱容量, J/m2K
	WallHeatCapacity     float64          // 外壁面積あたりの熱容量, J/m2K
	NaturallyLightedArea float64          // 昼光利用エリアの面積, m2
	WallArea             OrientationArray // 方位ごとの外壁面積, m2
	WindowArea           OrientationArray // 方位ごとの窓面積, m2
	WallU                OrientationArray // 方位ごとの外壁の熱貫流率, W/m2K
	WindowU              OrientationArray // 方位ごとの窓の熱貫流率, W/m2K
	WallSolarAbsorption  OrientationArray // 方位ごとの外壁の日射吸収率, -
	WindowSHGC           OrientationArray // 方位ごとの窓の垂直入射日射熱取得率, -
	WindowSCF            OrientationArray // 方位ごとの窓の日除け補正係数, -
	WindowSDF            OrientationArray // 方位ごとの可動日除けの補正係数, -
}

// 建物の用途に関する条件
type Building struct {
	LightingControl                   LightingControl // 照明の制御方式
	ElectricApplianceHeatGainOccupied float64         // 在室時の電気機器発熱, W/m2
	ExteriorEquipmentPower            float64         // 屋外機器の電力, W
}

// 照明
type Lighting struct {
	PowerDensityOccupied float64 // 在室時の照明電力密度, W/m2
	ExteriorEnergy       float64 // 屋外照明の電力, W
}

// 暖房
type Heating struct {
	SetpointOccupied   float64    // 在室時の暖房設定温度, degree C
	SetpointUnoccupied float64    // 不在時の暖房設定温度, degree C
	HvacLossFactor     float64    // 分配損失係数, -
	HotcoldWasteFactor float64    // 冷温同時使用の損失係数, -
	Efficiency         float64    // 熱源効率, -
	EnergyType         EnergyType // エネルギー種別
}

// 冷房
type Cooling struct {
	SetpointOccupied   float64 // 在室時の冷房設定温度, degree C
	SetpointUnoccupied float64 // 不在時の冷房設定温度, degree C
	HvacLossFactor     float64 // 分配損失係数, -
	COP                float64 // 成績係数, -
}

// 機械換気
type Ventilation struct {
	SupplyRate             float64 // 在室時の換気量, m3/(h m2)
	HeatRecoveryEfficiency float64 // 熱回収効率, -
	FanControlFactor       float64 // 給気/排気の比率, -
}

// 在室時間帯
type Population struct {
	DayStart  int // 在室開始曜日（0始まり）
	DayEnd    int // 在室終了曜日（この曜日は含まない）
	HourStart int // 在室開始時刻
	HourEnd   int // 在室終了時刻（この時刻は含まない）
}

// 計算条件一式
type Model struct {
	Name        string
	Structure   Structure
	Building    Building
	Lighting    Lighting
	Heating     Heating
	Cooling     Cooling
	Ventilation Ventilation
	Population  Population
}

/*
計算条件を検証する。

Returns:
	計算できない条件が含まれる場合のエラー
*/
func (m *Model) Validate() error {
	if !(m.Structure.FloorArea > 0) {
		return fmt.Errorf("%s: %w", m.Name, ErrInvalidFloorArea)
	}
	if m.Building.LightingControl < LightingControlManual || m.Building.LightingControl > LightingControlPresenceAndAuto {
		return fmt.Errorf("%s: %w (got %d)", m.Name, ErrLightingControl, m.Building.LightingControl)
	}
	if !(m.Heating.Efficiency > 0) || !(m.Cooling.COP > 0) {
		return fmt.Errorf("%s: %w", m.Name, ErrSystemEfficiency)
	}
	p := m.Population
	if p.HourStart < 0 || p.HourEnd > 24 || p.DayStart < 0 || p.DayEnd > 7 {
		return fmt.Errorf("%s: %w", m.Name, ErrOccupancyWindow)
	}
	return nil
}

//---------------------------------------------------------------------------------------------------//

type surfaceJson struct {
	Orientation         string  `json:"orientation"`
	WallArea            float64 `json:"wall_area"`
	WindowArea          float64 `json:"window_area"`
	WallU               float64 `json:"wall_u"`
	WindowU             float64 `json:"window_u"`
	WallSolarAbsorption float64 `json:"wall_solar_absorption"`
	WindowSHGC          float64 `json:"window_shgc"`
	WindowSCF           float64 `json:"window_scf"`
	WindowSDF           float64 `json:"window_sdf"`
}

type ModelJson struct {
	Name      string `json:"name"`
	Structure struct {
		FloorArea            float64       `json:"floor_area"`
		BuildingHeight       float64       `json:"building_height"`
		AirLeakageN50        *float64      `json:"air_leakage_n50"`
		InteriorHeatCapacity float64       `json:"interior_heat_capacity"`
		WallHeatCapacity     float64       `json:"wall_heat_capacity"`
		NaturallyLightedArea float64       `json:"naturally_lighted_area"`
		Surfaces             []surfaceJson `json:"surfaces"`
	} `json:"structure"`
	Building struct {
		LightingControl                   int      `json:"lighting_control"`
		ElectricApplianceHeatGainOccupied float64  `json:"electric_appliance_heat_gain_occupied"`
		ExteriorEquipmentPower            *float64 `json:"exterior_equipment_power"`
	} `json:"building"`
	Lighting struct {
		PowerDensityOccupied float64 `json:"power_density_occupied"`
		ExteriorEnergy       float64 `json:"exterior_energy"`
	} `json:"lighting"`
	Heating struct {
		SetpointOccupied   float64 `json:"setpoint_occupied"`
		SetpointUnoccupied float64 `json:"setpoint_unoccupied"`
		HvacLossFactor     float64 `json:"hvac_loss_factor"`
		HotcoldWasteFactor float64 `json:"hotcold_waste_factor"`
		Efficiency         float64 `json:"efficiency"`
		EnergyType         int     `json:"energy_type"`
	} `json:"heating"`
	Cooling struct {
		SetpointOccupied   float64 `json:"setpoint_occupied"`
		SetpointUnoccupied float64 `json:"setpoint_unoccupied"`
		HvacLossFactor     float64 `json:"hvac_loss_factor"`
		COP                float64 `json:"cop"`
	} `json:"cooling"`
	Ventilation struct {
		SupplyRate             float64 `json:"supply_rate"`
		HeatRecoveryEfficiency float64 `json:"heat_recovery_efficiency"`
		FanControlFactor       float64 `json:"fan_control_factor"`
	} `json:"ventilation"`
	Population struct {
		DayStart  int `json:"day_start"`
		DayEnd    int `json:"day_end"`
		HourStart int `json:"hour_start"`
		HourEnd   int `json:"hour_end"`
	} `json:"population"`
}

// 50Pa加圧時の換気回数の既定値, 1/h
const default_air_leakage_n50 = 2.0

// 屋外機器の電力の既定値, W
const default_exterior_equipment_power = 244000.0

/*
JSON形式の計算条件から Model を作成する。

Args:
	mj: JSON形式の計算条件

Returns:
	Model
*/
func (mj *ModelJson) ToModel() (*Model, error) {
	m := &Model{Name: mj.Name}

	s := &m.Structure
	s.FloorArea = mj.Structure.FloorArea
	s.BuildingHeight = mj.Structure.BuildingHeight
	s.AirLeakageN50 = default_air_leakage_n50
	if mj.Structure.AirLeakageN50 != nil {
		s.AirLeakageN50 = *mj.Structure.AirLeakageN50
	}
	s.InteriorHeatCapacity = mj.Structure.InteriorHeatCapacity
	s.WallHeatCapacity = mj.Structure.WallHeatCapacity
	s.NaturallyLightedArea = mj.Structure.NaturallyLightedArea

	for _, sf := range mj.Structure.Surfaces {
		o, err := OrientationFromString(strings.ToLower(sf.Orientation))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mj.Name, err)
		}
		s.WallArea[o] = sf.WallArea
		s.WindowArea[o] = sf.WindowArea
		s.WallU[o] = sf.WallU
		s.WindowU[o] = sf.WindowU
		s.WallSolarAbsorption[o] = sf.WallSolarAbsorption
		s.WindowSHGC[o] = sf.WindowSHGC
		s.WindowSCF[o] = sf.WindowSCF
		s.WindowSDF[o] = sf.WindowSDF
	}

	m.Building.LightingControl = LightingControl(mj.Building.LightingControl)
	if m.Building.LightingControl == 0 {
		m.Building.LightingControl = LightingControlManual
	}
	m.Building.ElectricApplianceHeatGainOccupied = mj.Building.ElectricApplianceHeatGainOccupied
	m.Building.ExteriorEquipmentPower = default_exterior_equipment_power
	if mj.Building.ExteriorEquipmentPower != nil {
		m.Building.ExteriorEquipmentPower = *mj.Building.ExteriorEquipmentPower
	}

	m.Lighting = Lighting(mj.Lighting)

	m.Heating = Heating{
		SetpointOccupied:   mj.Heating.SetpointOccupied,
		SetpointUnoccupied: mj.Heating.SetpointUnoccupied,
		HvacLossFactor:     mj.Heating.HvacLossFactor,
		HotcoldWasteFactor: mj.Heating.HotcoldWasteFactor,
		Efficiency:         mj.Heating.Efficiency,
		EnergyType:         EnergyType(mj.Heating.EnergyType),
	}
	m.Cooling = Cooling(mj.Cooling)
	m.Ventilation = Ventilation(mj.Ventilation)
	m.Population = Population(mj.Population)

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

/*
計算条件JSONを読み込む。

Args:
	r: JSONの読み込み元

Returns:
	Model
*/
func DecodeModel(r io.Reader) (*Model, error) {
	var mj ModelJson
	if err := json.NewDecoder(r).Decode(&mj); err != nil {
		return nil, fmt.Errorf("decode building json: %w", err)
	}
	return mj.ToModel()
}

/*
計算条件JSONファイルを読み込む。

Args:
	path: JSONファイルへのパス（スキームが http 又は https の場合はURL）

Returns:
	Model
*/
func LoadModel(path string) (*Model, error) {
	var r io.ReadCloser
	if is_url(path) {
		resp, err := http.Get(path)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("%s: %w (%s)", path, ErrBuildingFetch, resp.Status)
		}
		r = resp.Body
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		r = file
	}
	defer r.Close()

	m, err := DecodeModel(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = path
	}
	return m, nil
}

func is_url(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
