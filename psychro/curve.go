package psychro

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// 空気線図の等値線生成モジュール
//--------------------------------------

// 等値線の種類
type CurveKind int

const (
	CurveSaturation    CurveKind = iota // 飽和線 (RH=1)
	CurveConstRH                        // 等相対湿度線
	CurveConstEnthalpy                  // 等比エンタルピー線
	CurveConstWetBulb                   // 等湿球温度線
)

func (k CurveKind) String() string {
	switch k {
	case CurveSaturation:
		return "saturation"
	case CurveConstRH:
		return "rh"
	case CurveConstEnthalpy:
		return "enthalpy"
	case CurveConstWetBulb:
		return "wetbulb"
	}
	return fmt.Sprintf("CurveKind(%d)", int(k))
}

// 等値線上の1点。乾球温度 [℃] と絶対湿度 [kg/kg(DA)] の組。
type CurvePoint struct {
	TDB float64
	W   float64
}

// 等値線。凡例表示のため種類と固定値を保持する。
type Curve struct {
	Kind   CurveKind
	Value  float64 // 固定する二次量（RH[0-1], H[kJ/kg], TWB[℃]。飽和線では未使用）
	Points []CurvePoint
}

// 等値線の遅延生成イテレータ。
// 同一パラメータであれば Reset 後も同一の座標列を再生成する。
//
// 物理的に成立しない標本点の扱い:
// 最初に成立する点まで読み飛ばし、成立した後に不成立となった点で打ち切る。
// 全点不成立の場合は空列となる（エラーではない）。
type Sweep struct {
	kind    CurveKind
	value   float64
	p       float64
	temps   []float64
	i       int
	yielded bool
	done    bool
}

// NewSweep は乾球温度域 [tdbMin, tdbMax] を n 分割した等値線イテレータを作成する。
func NewSweep(kind CurveKind, value float64, tdbMin float64, tdbMax float64, n int, P float64) (*Sweep, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: sample count %d", ErrInvalidInput, n)
	}
	if tdbMin > tdbMax {
		return nil, fmt.Errorf("%w: domain [%g, %g]", ErrInvalidInput, tdbMin, tdbMax)
	}
	if tdbMin < TdbMin || tdbMax > TdbMax {
		return nil, fmt.Errorf("%w: domain [%g, %g] outside [%g, %g]", ErrInvalidInput, tdbMin, tdbMax, TdbMin, TdbMax)
	}
	if P <= 0 {
		return nil, fmt.Errorf("%w: pressure %g Pa", ErrInvalidInput, P)
	}
	if kind == CurveConstRH && (value < 0 || value > 1+1e-9) {
		return nil, fmt.Errorf("%w: relative humidity %g outside [0, 1]", ErrInvalidInput, value)
	}

	return &Sweep{
		kind:  kind,
		value: value,
		p:     P,
		temps: floats.Span(make([]float64, n), tdbMin, tdbMax),
	}, nil
}

// Next は次の座標を返す。列の終端では ok=false を返す。
func (sw *Sweep) Next() (CurvePoint, bool) {
	for !sw.done && sw.i < len(sw.temps) {
		t := sw.temps[sw.i]
		sw.i++

		w, ok := sw.sample(t)
		if !ok {
			if sw.yielded {
				// 成立域を抜けたら以降は打ち切り
				sw.done = true
			}
			continue
		}
		sw.yielded = true
		return CurvePoint{TDB: t, W: w}, true
	}
	return CurvePoint{}, false
}

// Reset は列を先頭から再生成できる状態に戻す。
func (sw *Sweep) Reset() {
	sw.i = 0
	sw.yielded = false
	sw.done = false
}

// 標本点の絶対湿度と成立可否
func (sw *Sweep) sample(t float64) (float64, bool) {
	switch sw.kind {
	case CurveSaturation, CurveConstRH:
		rh := sw.value
		if sw.kind == CurveSaturation {
			rh = 1.0
		}
		pw := rh * get_Pws(t)
		if pw >= sw.p {
			// 高温域で水蒸気分圧が大気圧に達すると湿り空気として成立しない
			return 0, false
		}
		return get_W_Pw(pw, sw.p), true

	case CurveConstEnthalpy:
		w := (sw.value - CpDA*t) / (Hfg + CpWV*t)
		if w < 0 || w > get_W_Pw(get_Pws(t), sw.p) {
			return 0, false
		}
		return w, true

	case CurveConstWetBulb:
		if t < sw.value {
			// 湿球温度が乾球温度を上回る区間は不成立
			return 0, false
		}
		w := func_W_Twb(t, sw.value, sw.p)
		if w < 0 {
			return 0, false
		}
		return w, true
	}
	return 0, false
}

// GenerateCurve は等値線を配列に展開して返す。
// 全点不成立の場合は Points が空の Curve を返す。
func GenerateCurve(kind CurveKind, value float64, tdbMin float64, tdbMax float64, n int, P float64) (Curve, error) {
	sw, err := NewSweep(kind, value, tdbMin, tdbMax, n, P)
	if err != nil {
		return Curve{}, err
	}

	c := Curve{Kind: kind, Value: value}
	for {
		pt, ok := sw.Next()
		if !ok {
			break
		}
		c.Points = append(c.Points, pt)
	}
	return c, nil
}
