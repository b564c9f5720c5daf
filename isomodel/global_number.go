package isomodel

// 1年の時間数
const hoursOfYear = 8760

// 室内表面の対流熱伝達率, W/m2K
const h_ci = 2.5

// 室内表面の放射熱伝達率, W/m2K
const h_ri = 5.5

// 床面積に対する室内表面積の比, -
const lambda_at = 4.5

// 空気の容積比熱, Wh/m3K
const c_air_vol = 0.34

// 日射熱取得のうち室空気に配分する割合, -
const solar_pair = 0.0

// 内部発熱のうち室空気に配分する割合, -
const int_pair = 0.5

// 仮想的に加える負荷, W/m2
const phi_virtual = 10.0

// 熱交換後の給気温度の下限（予熱）, degree C
const theta_vent_preheat = -50.0

// 熱回収の基準となる室温, degree C
const theta_heat_recovery_ref = 20.0

// 照明発熱のうち室内に放出される割合, -
const elect_internal_gains = 1.0

// W/m2 を kWh/m2（1時間あたり）に換算する係数
const watt_to_kwh = 1.0 / 1000.0
