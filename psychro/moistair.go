package psychro

import (
	"errors"
	"fmt"
	"math"
)

//--------------------------------------
// 湿り空気の物性計算モジュール
//--------------------------------------
//
// 内部の単位系は ℃, Pa, kg/kg(DA), kJ/kg(DA), m3/kg(DA) に統一する。
// 単位換算は呼び出し側（CLI等）で行うこと。

// 物性定数
const (
	CpDA = 1.006   // 乾き空気の定圧比熱 [kJ/(kg・K)]
	CpWV = 1.86    // 水蒸気の定圧比熱 [kJ/(kg・K)]
	Hfg  = 2501.0  // 0℃における水の蒸発潜熱 [kJ/kg]
	RDA  = 287.042 // 乾き空気の気体定数 [J/(kg・K)]

	// 水蒸気と乾き空気の分子量比
	mwRatio = 0.621945
)

// 計算範囲と収束判定
const (
	TdbMin = -100.0 // 飽和水蒸気圧の近似式が有効な乾球温度の下限 [℃]
	TdbMax = 200.0  // 同上限 [℃]

	SolveTol = 1.0e-5 // 反復解法の絶対許容誤差
	MaxIter  = 100    // 反復回数の上限
)

var (
	// 物理的に矛盾する入力、または定義域外の入力
	ErrInvalidInput = errors.New("psychro: invalid input")

	// 反復解法が規定回数内に収束しなかった
	ErrNoConvergence = errors.New("psychro: iteration limit exceeded")
)

// 飽和水蒸気圧 Pws [Pa] を乾球温度 TDB [℃] から求める。
// Wexler-Hylandの式。氷点下は氷面に対する式を用いる。
func get_Pws(TDB float64) float64 {
	T := TDB + 273.15

	if TDB >= 0 {
		return math.Exp(-5800.2206/T +
			1.3914993 -
			0.048640239*T +
			0.41764768e-4*T*T -
			0.14452093e-7*T*T*T +
			6.5459673*math.Log(T))
	}
	return math.Exp(-5674.5359/T +
		6.3925247 -
		0.9677843e-2*T +
		0.62215701e-6*T*T +
		0.20747825e-8*T*T*T -
		0.9484024e-12*T*T*T*T +
		4.1635019*math.Log(T))
}

// 水蒸気分圧 Pw [Pa] と大気圧 P [Pa] から絶対湿度 W [kg/kg(DA)] を求める。
func get_W_Pw(Pw float64, P float64) float64 {
	return mwRatio * Pw / (P - Pw)
}

// 絶対湿度 W [kg/kg(DA)] と大気圧 P [Pa] から水蒸気分圧 Pw [Pa] を求める。
func get_Pw_W(W float64, P float64) float64 {
	return P * W / (mwRatio + W)
}

// 比エンタルピー H [kJ/kg(DA)] を乾球温度 TDB [℃] と絶対湿度 W [kg/kg(DA)] から求める。
func get_H(TDB float64, W float64) float64 {
	return CpDA*TDB + W*(Hfg+CpWV*TDB)
}

// 比容積 V [m3/kg(DA)] を乾球温度 TDB [℃]、絶対湿度 W [kg/kg(DA)]、大気圧 P [Pa] から求める。
func get_V(TDB float64, W float64, P float64) float64 {
	return RDA * (TDB + 273.15) * (1 + 1.607858*W) / P
}

// 湿球温度 TWB [℃] の熱収支式から絶対湿度 W [kg/kg(DA)] を求める。
// 氷点下の湿球には氷面の係数を用いる。
func func_W_Twb(TDB float64, TWB float64, P float64) float64 {
	Wsstar := get_W_Pw(get_Pws(TWB), P)

	if TWB >= 0 {
		return ((Hfg-2.326*TWB)*Wsstar - CpDA*(TDB-TWB)) /
			(Hfg + CpWV*TDB - 4.186*TWB)
	}
	return ((2830-0.24*TWB)*Wsstar - CpDA*(TDB-TWB)) /
		(2830 + CpWV*TDB - 2.1*TWB)
}

// 水蒸気分圧 Pw [Pa] から露点温度 DT [℃] を求める近似式。6.112hPa <= Pw <= 123.50hPa（0～50℃）
// パソコンによる空気調和計算法 著:宇田川光弘,オーム社, 1986.12 より
func func_DT_50(Pw float64) float64 {
	Y := math.Log(Pw)
	Y2 := Y * Y
	Y3 := Y2 * Y
	return -77.199 + 13.198*Y - 0.63772*Y2 + 0.071098*Y3
}

// 水蒸気分圧 Pw [Pa] から露点温度 DT [℃] を求める近似式。0.039hPa <= Pw < 6.112hPa（-50～0℃）
// 出典は func_DT_50 と同じ。
func func_DT_0(Pw float64) float64 {
	Y := math.Log(Pw)
	Y2 := Y * Y
	Y3 := Y2 * Y
	return -60.662 + 7.4624*Y + 0.20594*Y2 + 0.016321*Y3
}

// 露点温度 TDP [℃] を水蒸気分圧 Pw [Pa] から求める。
// 宇田川の近似式を初期値に、Pws(TDP)=Pw を二分法で解く。
// Pw が近似式の有効下限を下回る場合は TdbMin で打ち切る。
func solve_TDP(Pw float64) (float64, error) {
	if Pw <= get_Pws(TdbMin) {
		return TdbMin, nil
	}

	// 初期値（±3℃に真値が入る）
	var t0 float64
	if Pw >= 611.2 {
		t0 = func_DT_50(Pw)
	} else {
		t0 = func_DT_0(Pw)
	}

	lo := math.Max(t0-3, TdbMin)
	hi := math.Min(t0+3, TdbMax)
	for get_Pws(lo) > Pw && lo > TdbMin {
		lo = math.Max(lo-3, TdbMin)
	}
	for get_Pws(hi) < Pw && hi < TdbMax {
		hi = math.Min(hi+3, TdbMax)
	}

	for i := 0; i < MaxIter; i++ {
		mid := (lo + hi) / 2
		if get_Pws(mid) > Pw {
			hi = mid
		} else {
			lo = mid
		}
		if hi-lo < SolveTol {
			return (lo + hi) / 2, nil
		}
	}
	return 0, fmt.Errorf("%w: dew point for Pw=%g Pa", ErrNoConvergence, Pw)
}

// 湿球温度 TWB [℃] を乾球温度 TDB [℃] と絶対湿度 W [kg/kg(DA)] から求める。
// 露点〜乾球の区間で熱収支式を二分法で解く。
func solve_TWB(TDB float64, W float64, TDP float64, P float64) (float64, error) {
	lo := TDP
	hi := TDB

	for i := 0; i < MaxIter; i++ {
		mid := (lo + hi) / 2
		if func_W_Twb(TDB, mid, P) > W {
			hi = mid
		} else {
			lo = mid
		}
		if hi-lo < SolveTol {
			return (lo + hi) / 2, nil
		}
	}
	return 0, fmt.Errorf("%w: wet bulb for TDB=%g W=%g", ErrNoConvergence, TDB, W)
}

// 入力の定義域チェック
func check_TDB_P(TDB float64, P float64) error {
	if TDB < TdbMin || TDB > TdbMax {
		return fmt.Errorf("%w: dry bulb %g ℃ outside [%g, %g]", ErrInvalidInput, TDB, TdbMin, TdbMax)
	}
	if P <= 0 {
		return fmt.Errorf("%w: pressure %g Pa", ErrInvalidInput, P)
	}
	return nil
}

// 乾球温度 TDB [℃]、絶対湿度 W [kg/kg(DA)]、大気圧 P [Pa] から全物性を確定する。
// 各コンストラクタの共通処理。過飽和（Pw > Pws）は入力エラー。
func resolve_state(TDB float64, W float64, P float64) (AirState, error) {
	if W < 0 {
		return AirState{}, fmt.Errorf("%w: humidity ratio %g kg/kg", ErrInvalidInput, W)
	}

	Pws := get_Pws(TDB)
	Pw := get_Pw_W(W, P)
	RH := Pw / Pws
	if RH > 1+1e-9 {
		return AirState{}, fmt.Errorf("%w: supersaturated (Pw=%.1f Pa > Pws=%.1f Pa at %g ℃)",
			ErrInvalidInput, Pw, Pws, TDB)
	}
	if RH > 1 {
		RH = 1 // 浮動小数点誤差の丸め
	}

	TDP, err := solve_TDP(Pw)
	if err != nil {
		return AirState{}, err
	}
	TWB, err := solve_TWB(TDB, W, TDP, P)
	if err != nil {
		return AirState{}, err
	}

	return AirState{
		TDB: TDB,
		TWB: TWB,
		TDP: TDP,
		RH:  RH,
		W:   W,
		H:   get_H(TDB, W),
		V:   get_V(TDB, W, P),
		Pw:  Pw,
		Pws: Pws,
		P:   P,
	}, nil
}

// StateFromRH は {乾球温度, 相対湿度} から空気状態を作成する。
// RH は 0〜1 で与える。RH=1 は飽和状態として有効。
func StateFromRH(TDB float64, RH float64, P float64) (AirState, error) {
	if err := check_TDB_P(TDB, P); err != nil {
		return AirState{}, err
	}
	if RH < 0 || RH > 1+1e-9 {
		return AirState{}, fmt.Errorf("%w: relative humidity %g outside [0, 1]", ErrInvalidInput, RH)
	}
	Pw := math.Min(RH, 1) * get_Pws(TDB)
	return resolve_state(TDB, get_W_Pw(Pw, P), P)
}

// StateFromW は {乾球温度, 絶対湿度} から空気状態を作成する。
func StateFromW(TDB float64, W float64, P float64) (AirState, error) {
	if err := check_TDB_P(TDB, P); err != nil {
		return AirState{}, err
	}
	return resolve_state(TDB, W, P)
}

// StateFromTWB は {乾球温度, 湿球温度} から空気状態を作成する。
func StateFromTWB(TDB float64, TWB float64, P float64) (AirState, error) {
	if err := check_TDB_P(TDB, P); err != nil {
		return AirState{}, err
	}
	if TWB > TDB {
		return AirState{}, fmt.Errorf("%w: wet bulb %g ℃ above dry bulb %g ℃", ErrInvalidInput, TWB, TDB)
	}
	W := func_W_Twb(TDB, TWB, P)
	if W < 0 {
		return AirState{}, fmt.Errorf("%w: wet bulb %g ℃ unreachable at dry bulb %g ℃", ErrInvalidInput, TWB, TDB)
	}
	return resolve_state(TDB, W, P)
}

// StateFromTDP は {乾球温度, 露点温度} から空気状態を作成する。
func StateFromTDP(TDB float64, TDP float64, P float64) (AirState, error) {
	if err := check_TDB_P(TDB, P); err != nil {
		return AirState{}, err
	}
	if TDP > TDB {
		return AirState{}, fmt.Errorf("%w: dew point %g ℃ above dry bulb %g ℃", ErrInvalidInput, TDP, TDB)
	}
	Pw := get_Pws(TDP)
	return resolve_state(TDB, get_W_Pw(Pw, P), P)
}

// StateFromH は {乾球温度, 比エンタルピー} から空気状態を作成する。
func StateFromH(TDB float64, H float64, P float64) (AirState, error) {
	if err := check_TDB_P(TDB, P); err != nil {
		return AirState{}, err
	}
	W := (H - CpDA*TDB) / (Hfg + CpWV*TDB)
	if W < 0 {
		return AirState{}, fmt.Errorf("%w: enthalpy %g kJ/kg below dry air at %g ℃", ErrInvalidInput, H, TDB)
	}
	return resolve_state(TDB, W, P)
}
