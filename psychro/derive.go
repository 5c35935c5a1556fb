package psychro

import (
	"fmt"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// 設計用の導出ルール
//--------------------------------------
//
// AHU/CRAHの設計で用いる複合的なショートカット計算。
// いずれも基本の物性計算の上に成り立つ純関数で、
// 入力の過剰指定（冗長で矛盾し得る指定）はエラーとして弾く。

// 既定の設計パラメータ
const (
	DefaultCoolMarginK  = 2.0   // OC Max Cool のコイル露点からの接近温度差 [K]
	DefaultDehumMarginK = 4.0   // OC Dehum のコイル露点からの接近温度差 [K]
	DefaultEnthTargetH  = 44.0  // OC Enthalpy の目標比エンタルピー [kJ/kg(DA)]
	DefaultFanDropPa    = 600.0 // AHUダクトの想定圧力損失 [Pa]
	DefaultAuxFactor    = 1.055 // IT負荷に対する補機発熱の係数（照明・UPS損失・人員）
)

// オフコイル状態の導出指定。
// CoilTDP はコイル露点 [℃]（呼び出し側指定）。
// ApproachK（露点からの接近温度差 [K]、飽和状態）または
// TargetRH（露点を保ったまま目標相対湿度となる乾球温度を逆算）の
// どちらか一方のみを指定する。両方の指定は過剰指定としてエラー。
type OffCoilSpec struct {
	CoilTDP   float64
	ApproachK *float64
	TargetRH  *float64
}

// DeriveOffCoil は指定に従ってオフコイル状態を導出する。
func DeriveOffCoil(spec OffCoilSpec, P float64) (AirState, error) {
	if (spec.ApproachK == nil) == (spec.TargetRH == nil) {
		return AirState{}, fmt.Errorf("%w: specify exactly one of ApproachK and TargetRH", ErrInvalidInput)
	}

	if spec.ApproachK != nil {
		if *spec.ApproachK < 0 {
			return AirState{}, fmt.Errorf("%w: approach %g K", ErrInvalidInput, *spec.ApproachK)
		}
		// コイル露点より接近温度差だけ高い飽和状態
		return StateFromRH(spec.CoilTDP+*spec.ApproachK, 1.0, P)
	}

	rh := *spec.TargetRH
	if rh <= 0 || rh > 1+1e-9 {
		return AirState{}, fmt.Errorf("%w: target relative humidity %g", ErrInvalidInput, rh)
	}
	// 露点の飽和水蒸気圧を保ったまま Pws(TDB) = Pw/RH となる乾球温度を逆算
	pw := get_Pws(spec.CoilTDP)
	tdb, err := solve_TDP(pw / rh)
	if err != nil {
		return AirState{}, err
	}
	return StateFromW(tdb, get_W_Pw(pw, P), P)
}

// SatTdbForEnthalpy は飽和線上で比エンタルピーが hTarget [kJ/kg(DA)] となる
// 乾球温度 [℃] を [tdbLo, tdbHi] の区間で二分法により求める。
// 区間内に解がない場合は入力エラーを返す。
func SatTdbForEnthalpy(hTarget float64, tdbLo float64, tdbHi float64, P float64) (float64, error) {
	if tdbLo >= tdbHi {
		return 0, fmt.Errorf("%w: bracket [%g, %g]", ErrInvalidInput, tdbLo, tdbHi)
	}

	hSat := func(t float64) float64 {
		return get_H(t, get_W_Pw(get_Pws(t), P))
	}
	if hSat(tdbLo) > hTarget || hSat(tdbHi) < hTarget {
		return 0, fmt.Errorf("%w: enthalpy %g kJ/kg not bracketed by [%g, %g] ℃", ErrInvalidInput, hTarget, tdbLo, tdbHi)
	}

	lo, hi := tdbLo, tdbHi
	for i := 0; i < MaxIter; i++ {
		mid := (lo + hi) / 2
		if hSat(mid) > hTarget {
			hi = mid
		} else {
			lo = mid
		}
		if hi-lo < SolveTol {
			return (lo + hi) / 2, nil
		}
	}
	return 0, fmt.Errorf("%w: saturated tdb for h=%g", ErrNoConvergence, hTarget)
}

// SolveSupplyForSHR は既知の入口状態・給気乾球温度・目標顕熱比から
// 給気の絶対湿度を逆算し、給気状態を返す。
//
// 残差 QSens - SHR*QTotal は絶対湿度に対して単調なので、
// [0, 飽和絶対湿度] の区間の二分法で解く。
// 区間内で目標比に到達できない場合は入力エラー。
func SolveSupplyForSHR(entering AirState, supplyTDB float64, shr float64, P float64) (AirState, error) {
	if shr == 0 {
		return AirState{}, fmt.Errorf("%w: zero sensible heat ratio", ErrInvalidInput)
	}
	if err := check_TDB_P(supplyTDB, P); err != nil {
		return AirState{}, err
	}

	// 単位質量流量あたりで評価する
	qs := entering.Cp() * (supplyTDB - entering.TDB)
	residual := func(w float64) float64 {
		return qs - shr*(get_H(supplyTDB, w)-entering.H)
	}

	lo, hi := 0.0, get_W_Pw(get_Pws(supplyTDB), P)
	rLo, rHi := residual(lo), residual(hi)
	if rLo == 0 {
		return StateFromW(supplyTDB, lo, P)
	}
	if rLo*rHi > 0 {
		return AirState{}, fmt.Errorf("%w: ratio %g unreachable at supply %g ℃", ErrInvalidInput, shr, supplyTDB)
	}

	for i := 0; i < MaxIter; i++ {
		mid := (lo + hi) / 2
		if residual(mid)*rLo > 0 {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-9 {
			return StateFromW(supplyTDB, (lo+hi)/2, P)
		}
	}
	return AirState{}, fmt.Errorf("%w: supply humidity ratio for SHR=%g", ErrNoConvergence, shr)
}

// AHUオフコイルの設計点一式
type OffCoilSet struct {
	CoilTDP  float64  // CRAHオフコイルの露点 [℃]（診断用）
	MaxCool  AirState // 最大冷房時（飽和、露点 + CoolMargin）
	Dehum    AirState // 除湿運転時（飽和、露点 + DehumMargin）
	Enthalpy AirState // エンタルピー制御時（飽和、目標比エンタルピー）
	Heat     AirState // 冬期加熱時（冬期外気の絶対湿度を保った顕熱加熱）
}

// DeriveOffCoilSet は制御設定値からAHUオフコイルの設計点一式を導出する。
//
//	crahOff:     CRAHオフコイル（給気側）状態
//	crahOn:      CRAHオンコイル（還気側）状態
//	winterOA:    冬期の設計外気状態
//	coolMargin:  OC Max Cool の接近温度差 [K]
//	dehumMargin: OC Dehum の接近温度差 [K]
//	enthTarget:  OC Enthalpy の目標比エンタルピー [kJ/kg(DA)]
func DeriveOffCoilSet(crahOff AirState, crahOn AirState, winterOA AirState,
	coolMargin float64, dehumMargin float64, enthTarget float64, P float64) (OffCoilSet, error) {

	logger := logging.GetLogger("psychro")
	logger.Debugf("オフコイル設計点を導出します: CRAH露点=%.2f ℃", crahOff.TDP)

	set := OffCoilSet{CoilTDP: crahOff.TDP}

	var err error
	set.MaxCool, err = DeriveOffCoil(OffCoilSpec{CoilTDP: crahOff.TDP, ApproachK: &coolMargin}, P)
	if err != nil {
		return OffCoilSet{}, err
	}
	set.Dehum, err = DeriveOffCoil(OffCoilSpec{CoilTDP: crahOff.TDP, ApproachK: &dehumMargin}, P)
	if err != nil {
		return OffCoilSet{}, err
	}

	// エンタルピー制御点は飽和線上の解（典型域 0〜30℃で探索）
	tdbEnth, err := SatTdbForEnthalpy(enthTarget, 0.0, 30.0, P)
	if err != nil {
		return OffCoilSet{}, err
	}
	set.Enthalpy, err = StateFromRH(tdbEnth, 1.0, P)
	if err != nil {
		return OffCoilSet{}, err
	}

	// 冬期加熱: 絶対湿度は冬期外気のまま、CRAHオンコイル温度まで顕熱加熱
	set.Heat, err = StateFromW(crahOn.TDB, winterOA.W, P)
	if err != nil {
		return OffCoilSet{}, err
	}

	return set, nil
}

// 系統の風量・送風機計算の結果
type SystemFlows struct {
	QSensTotal   float64 // 補機を含む全顕熱負荷 [kW]
	CRAHMassFlow float64 // CRAH系統の質量流量 [kg/s]
	CRAHVolFlow  float64 // CRAH系統の体積流量 [m3/s]
	AHUVolFlow   float64 // AHU(外調機)の体積流量 [m3/s]
	AHUMassFlow  float64 // AHUの質量流量 [kg/s]
	FanLoadKW    float64 // 送風機の電力負荷 [kW]
	FanDeltaT    float64 // 送風機発熱による温度上昇 [K]
}

// ComputeSystemFlows はIT負荷とコイル設定値から系統風量を算定する。
// ahuVolOverride > 0 のときはAHU風量を指定値で固定し、
// 0のときはCRAH系統風量の1.1%（外気補給の典型値）とする。
func ComputeSystemFlows(itLoadKW float64, crahOn AirState, crahOff AirState,
	ocDehum AirState, ahuVolOverride float64) (SystemFlows, error) {

	if itLoadKW < 0 {
		return SystemFlows{}, fmt.Errorf("%w: IT load %g kW", ErrInvalidInput, itLoadKW)
	}
	if ahuVolOverride < 0 {
		return SystemFlows{}, fmt.Errorf("%w: AHU volume flow %g m3/s", ErrInvalidInput, ahuVolOverride)
	}
	dT := crahOn.TDB - crahOff.TDB
	if dT <= 0 {
		return SystemFlows{}, fmt.Errorf("%w: CRAH on-coil %g ℃ not above off-coil %g ℃",
			ErrInvalidInput, crahOn.TDB, crahOff.TDB)
	}

	logger := logging.GetLogger("psychro")

	// 補機発熱を含む全顕熱負荷
	qSens := itLoadKW * DefaultAuxFactor

	// CRAH系統: 質量流量は負荷とコイル温度差から、体積流量は出入口平均密度で換算
	crahMdot := qSens / (crahOn.Cp() * dT)
	rhoAvg := (crahOn.Density() + crahOff.Density()) / 2
	crahVol := crahMdot / rhoAvg

	// AHU系統
	ahuVol := ahuVolOverride
	if ahuVol == 0 {
		ahuVol = crahVol * 0.011
	}
	ahuMdot := ahuVol * ocDehum.Density()

	// 送風機負荷と温度上昇
	fanLoad := ahuVol * DefaultFanDropPa / 1000
	fanDeltaT := 0.0
	if ahuVol > 0 {
		fanDeltaT = fanLoad / (ahuVol * ocDehum.Cp())
	}

	logger.Debugf("系統風量: CRAH %.2f kg/s (%.2f m3/s), AHU %.4f m3/s", crahMdot, crahVol, ahuVol)

	return SystemFlows{
		QSensTotal:   qSens,
		CRAHMassFlow: crahMdot,
		CRAHVolFlow:  crahVol,
		AHUVolFlow:   ahuVol,
		AHUMassFlow:  ahuMdot,
		FanLoadKW:    fanLoad,
		FanDeltaT:    fanDeltaT,
	}, nil
}
