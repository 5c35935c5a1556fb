package psychro

import (
	"fmt"
	"math"
)

//--------------------------------------
// 空調プロセスの熱量計算モジュール
//--------------------------------------

// プロセス計算の結果。符号は空気への加熱を正とする。
type ProcessResult struct {
	Name string

	In  AirState // 入口状態
	Out AirState // 出口状態

	MassFlow float64 // 乾き空気質量流量 [kg/s]

	QSens  float64 // 顕熱 [kW]
	QLat   float64 // 潜熱 [kW]
	QTotal float64 // 全熱 [kW]
	SHR    float64 // 顕熱比 [-]（全熱がほぼ0のときは NaN）

	MoistureGS float64 // 除湿量 [g/s]（正=除湿、負=加湿）
}

// EvaluateProcess は入口状態から出口状態への変化に伴う熱量を計算する。
//
// 顕熱は入口状態の比熱（エンタルピー式の温度勾配）で評価するため、
// 絶対湿度一定の変化では全熱と厳密に一致する。
// 潜熱は 全熱 - 顕熱 で定義し、三者の総和関係を構成的に保証する。
func EvaluateProcess(name string, in AirState, out AirState, massFlow float64) (ProcessResult, error) {
	if massFlow < 0 {
		return ProcessResult{}, fmt.Errorf("%w: mass flow %g kg/s", ErrInvalidInput, massFlow)
	}

	qTotal := massFlow * (out.H - in.H)
	qSens := massFlow * in.Cp() * (out.TDB - in.TDB)
	qLat := qTotal - qSens

	shr := math.NaN()
	if math.Abs(qTotal) > 1e-3 {
		shr = qSens / qTotal
	}

	return ProcessResult{
		Name:       name,
		In:         in,
		Out:        out,
		MassFlow:   massFlow,
		QSens:      qSens,
		QLat:       qLat,
		QTotal:     qTotal,
		SHR:        shr,
		MoistureGS: massFlow * (in.W - out.W) * 1000,
	}, nil
}

// MixStates は2つの空気流の断熱混合後の状態を求める。
// ma, mb は乾き空気質量流量 [kg/s]。両状態は同一気圧であること。
// 混合結果が過飽和となる場合（霧域）は入力エラーを返す。
func MixStates(a AirState, ma float64, b AirState, mb float64) (AirState, error) {
	if ma < 0 || mb < 0 {
		return AirState{}, fmt.Errorf("%w: mass flow %g, %g kg/s", ErrInvalidInput, ma, mb)
	}
	if ma+mb == 0 {
		return AirState{}, fmt.Errorf("%w: zero total mass flow", ErrInvalidInput)
	}
	if math.Abs(a.P-b.P) > 1e-6*a.P {
		return AirState{}, fmt.Errorf("%w: mixing across pressures %g and %g Pa", ErrInvalidInput, a.P, b.P)
	}

	w := (ma*a.W + mb*b.W) / (ma + mb)
	h := (ma*a.H + mb*b.H) / (ma + mb)

	// エンタルピー式を乾球温度について解く（閉形式）
	tdb := (h - Hfg*w) / (CpDA + CpWV*w)

	return StateFromW(tdb, w, a.P)
}
