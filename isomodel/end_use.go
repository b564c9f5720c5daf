package isomodel

// 燃料種別
type FuelType int

const (
	FuelElectricity FuelType = iota
	FuelGas
)

func (f FuelType) String() string {
	return [...]string{"electricity", "gas"}[f]
}

// 用途
type CategoryType int

const (
	CategoryHeating CategoryType = iota
	CategoryCooling
	CategoryInteriorLights
	CategoryExteriorLights
	CategoryFans
	CategoryPumps
	CategoryInteriorEquipment
	CategoryExteriorEquipment
	CategoryWaterSystems
)

func (c CategoryType) String() string {
	return [...]string{
		"heating",
		"cooling",
		"interior_lights",
		"exterior_lights",
		"fans",
		"pumps",
		"interior_equipment",
		"exterior_equipment",
		"water_systems",
	}[c]
}

// 燃料種別と用途の組
type EndUseKey struct {
	Fuel     FuelType
	Category CategoryType
}

func (k EndUseKey) String() string {
	return k.Fuel.String() + "_" + k.Category.String()
}

// 集計する燃料種別と用途の組（この順に並べる）
var EndUseKeys = [NumberOfEndUses]EndUseKey{
	{FuelElectricity, CategoryHeating},
	{FuelElectricity, CategoryCooling},
	{FuelElectricity, CategoryInteriorLights},
	{FuelElectricity, CategoryExteriorLights},
	{FuelElectricity, CategoryFans},
	{FuelElectricity, CategoryPumps},
	{FuelElectricity, CategoryInteriorEquipment},
	{FuelElectricity, CategoryExteriorEquipment},
	{FuelElectricity, CategoryWaterSystems},
	{FuelGas, CategoryHeating},
	{FuelGas, CategoryCooling},
	{FuelGas, CategoryInteriorEquipment},
	{FuelGas, CategoryWaterSystems},
}

// 燃料種別と用途の組の数
const NumberOfEndUses = 13

// 燃料種別・用途ごとのエネルギー消費量（床面積あたり）, kWh/m2
type EndUses [NumberOfEndUses]float64

/*
燃料種別・用途を指定してエネルギー消費量を取得する。

Returns:
	エネルギー消費量, kWh/m2（集計対象でない組は0）
*/
func (e *EndUses) Get(fuel FuelType, category CategoryType) float64 {
	for i, k := range EndUseKeys {
		if k.Fuel == fuel && k.Category == category {
			return e[i]
		}
	}
	return 0.0
}

// 燃料種別ごとの合計, kWh/m2
func (e *EndUses) FuelTotal(fuel FuelType) float64 {
	var s float64
	for i, k := range EndUseKeys {
		if k.Fuel == fuel {
			s += e[i]
		}
	}
	return s
}

// 全燃料種別・用途の合計, kWh/m2
func (e *EndUses) Total() float64 {
	return e.FuelTotal(FuelElectricity) + e.FuelTotal(FuelGas)
}

// 月別の燃料種別・用途ごとのエネルギー消費量, kWh/m2, [12]
type EndUseTable [12]EndUses

/*
年間の燃料種別・用途ごとのエネルギー消費量を求める。

Returns:
	EndUses, kWh/m2
*/
func (t *EndUseTable) Annual() EndUses {
	var a EndUses
	for _, m := range t {
		for i, v := range m {
			a[i] += v
		}
	}
	return a
}
