package isomodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// 外皮の方位
type Orientation int

const (
	OrientationS Orientation = iota
	OrientationSE
	OrientationE
	OrientationNE
	OrientationN
	OrientationNW
	OrientationW
	OrientationSW
	OrientationRoof
)

// 方位の数（8方位 + 屋根）
const NumberOfOrientations = 9

// 方位ごとの値, [9]
type OrientationArray [NumberOfOrientations]float64

// 全方位の一覧
var Orientations = [NumberOfOrientations]Orientation{
	OrientationS,
	OrientationSE,
	OrientationE,
	OrientationNE,
	OrientationN,
	OrientationNW,
	OrientationW,
	OrientationSW,
	OrientationRoof,
}

func (o Orientation) String() string {
	return [...]string{"s", "se", "e", "ne", "n", "nw", "w", "sw", "roof"}[o]
}

func OrientationFromString(str string) (Orientation, error) {
	switch str {
	case "s":
		return OrientationS, nil
	case "se":
		return OrientationSE, nil
	case "e":
		return OrientationE, nil
	case "ne":
		return OrientationNE, nil
	case "n":
		return OrientationN, nil
	case "nw":
		return OrientationNW, nil
	case "w":
		return OrientationW, nil
	case "sw":
		return OrientationSW, nil
	case "roof", "top":
		return OrientationRoof, nil
	default:
		return 0, fmt.Errorf("invalid orientation %q", str)
	}
}

/*
方位 o の傾斜面の方位角を取得する。

Returns:
	方位 o の傾斜面の方位角, rad

Notes:
	南を0とし、西を正とする。
	屋根（水平面）では方位角が定義されないため0を返す。
*/
func (o Orientation) alpha_w() float64 {
	switch o {
	case OrientationS:
		return math.Pi * 0.0 / 180.0
	case OrientationSW:
		return math.Pi * 45.0 / 180.0
	case OrientationW:
		return math.Pi * 90.0 / 180.0
	case OrientationNW:
		return math.Pi * 135.0 / 180.0
	case OrientationN:
		return math.Pi * 180.0 / 180.0
	case OrientationNE:
		return math.Pi * -135.0 / 180.0
	case OrientationE:
		return math.Pi * -90.0 / 180.0
	case OrientationSE:
		return math.Pi * -45.0 / 180.0
	default:
		return 0.0
	}
}

/*
方位 o の傾斜面の傾斜角を取得する。

Returns:
	方位 o の傾斜面の傾斜角, rad
*/
func (o Orientation) beta_w() float64 {
	if o == OrientationRoof {
		return 0.0
	}
	return math.Pi * 90.0 / 180.0
}

// 全方位の合計
func (a OrientationArray) Sum() float64 {
	return floats.Sum(a[:])
}
