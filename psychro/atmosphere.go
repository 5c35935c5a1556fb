package psychro

import (
	"fmt"
	"math"
)

//大気条件に関するモジュール

// 海面気圧 [Pa]
const SeaLevelPressure = 101325.0

// 大気条件。標高または気圧の明示指定のどちらかで与える。
// PressurePa > 0 のときは標高によらず指定圧力を用いる。
type Atmosphere struct {
	AltitudeM  float64 // 標高 [m]
	PressurePa float64 // 気圧の明示指定 [Pa]（0なら標高から算出）
}

// 計算に用いる大気圧 [Pa]
func (a Atmosphere) Pressure() float64 {
	if a.PressurePa > 0 {
		return a.PressurePa
	}
	return PressureAtAltitude(a.AltitudeM)
}

// 標高 z [m] から標準大気の気圧 [Pa] を求める。
func PressureAtAltitude(z float64) float64 {
	return SeaLevelPressure * math.Pow(1-2.25577e-5*z, 5.25588)
}

// 大気条件の妥当性チェック。標準大気の式が有効な範囲に限定する。
func (a Atmosphere) Validate() error {
	if a.PressurePa < 0 {
		return fmt.Errorf("%w: pressure %g Pa", ErrInvalidInput, a.PressurePa)
	}
	if a.PressurePa == 0 && (a.AltitudeM < -500 || a.AltitudeM > 11000) {
		return fmt.Errorf("%w: altitude %g m outside troposphere model", ErrInvalidInput, a.AltitudeM)
	}
	return nil
}
