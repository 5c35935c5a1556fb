package psychro

import (
	"fmt"
	"io"

	"github.com/hhkbp2/go-logging"
	"gopkg.in/yaml.v3"
)

//--------------------------------------
// 設計シナリオの読み込みモジュール
//--------------------------------------
//
// YAMLで記述した設計シナリオ（大気条件・状態点・プロセス・等値線）を
// 読み込んで計算を実行する。状態点の湿度指定は rh/twb/tdp/w/h の
// いずれか1つに限る。複数指定は過剰指定としてエラー。

// 設計シナリオ
type Scenario struct {
	Location   string   `yaml:"location"`    // 設計気象条件の地点キー（任意）
	AltitudeM  *float64 `yaml:"altitude_m"`  // 標高 [m]（任意）
	PressurePa *float64 `yaml:"pressure_pa"` // 気圧の明示指定 [Pa]（標高との併用不可）

	States    []StateSpec   `yaml:"states"`
	Processes []ProcessSpec `yaml:"processes"`
	Curves    []CurveSpec   `yaml:"curves"`
}

// 状態点の指定。乾球温度と湿度記述子1つの組。
type StateSpec struct {
	Name string  `yaml:"name"`
	TDB  float64 `yaml:"tdb"`

	RH  *float64 `yaml:"rh"`  // 相対湿度 [0-1]
	TWB *float64 `yaml:"twb"` // 湿球温度 [℃]
	TDP *float64 `yaml:"tdp"` // 露点温度 [℃]
	W   *float64 `yaml:"w"`   // 絶対湿度 [kg/kg(DA)]
	H   *float64 `yaml:"h"`   // 比エンタルピー [kJ/kg(DA)]
}

// プロセスの指定。状態点は名前で参照する。
type ProcessSpec struct {
	Name     string  `yaml:"name"`
	In       string  `yaml:"in"`
	Out      string  `yaml:"out"`
	MassFlow float64 `yaml:"mass_flow"` // 乾き空気質量流量 [kg/s]
}

// 等値線の指定
type CurveSpec struct {
	Kind   string   `yaml:"kind"`  // saturation / rh / enthalpy / wetbulb
	Value  float64  `yaml:"value"` // 固定する二次量
	TdbMin *float64 `yaml:"tdb_min"`
	TdbMax *float64 `yaml:"tdb_max"`
	N      *int     `yaml:"n"`
}

// シナリオの計算結果
type ScenarioResult struct {
	Pressure  float64
	States    *StateTable
	Processes []ProcessResult
	Curves    []Curve
}

// LoadScenario はYAMLシナリオを読み込む。
func LoadScenario(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &sc, nil
}

// Pressure はシナリオの大気圧 [Pa] を決定する。
// 優先順位: pressure_pa > altitude_m > 地点の標高 > 海面気圧。
// pressure_pa と altitude_m の同時指定は過剰指定としてエラー。
func (sc *Scenario) Pressure() (float64, error) {
	if sc.PressurePa != nil && sc.AltitudeM != nil {
		return 0, fmt.Errorf("%w: both pressure_pa and altitude_m given", ErrInvalidInput)
	}

	atm := Atmosphere{}
	switch {
	case sc.PressurePa != nil:
		atm.PressurePa = *sc.PressurePa
		if atm.PressurePa <= 0 {
			return 0, fmt.Errorf("%w: pressure %g Pa", ErrInvalidInput, atm.PressurePa)
		}
	case sc.AltitudeM != nil:
		atm.AltitudeM = *sc.AltitudeM
	case sc.Location != "":
		dc, ok := GetDesignConditions(sc.Location)
		if !ok {
			return 0, fmt.Errorf("%w: unknown location %q", ErrInvalidInput, sc.Location)
		}
		atm = dc.Atmosphere()
	}

	if err := atm.Validate(); err != nil {
		return 0, err
	}
	return atm.Pressure(), nil
}

// 状態点指定を解決する
func (spec StateSpec) Resolve(P float64) (AirState, error) {
	n := 0
	for _, p := range []*float64{spec.RH, spec.TWB, spec.TDP, spec.W, spec.H} {
		if p != nil {
			n++
		}
	}
	if n != 1 {
		return AirState{}, fmt.Errorf("%w: state %q needs exactly one humidity descriptor, got %d",
			ErrInvalidInput, spec.Name, n)
	}

	switch {
	case spec.RH != nil:
		return StateFromRH(spec.TDB, *spec.RH, P)
	case spec.TWB != nil:
		return StateFromTWB(spec.TDB, *spec.TWB, P)
	case spec.TDP != nil:
		return StateFromTDP(spec.TDB, *spec.TDP, P)
	case spec.W != nil:
		return StateFromW(spec.TDB, *spec.W, P)
	default:
		return StateFromH(spec.TDB, *spec.H, P)
	}
}

// 等値線指定を解決する
func (spec CurveSpec) Resolve(P float64) (Curve, error) {
	var kind CurveKind
	switch spec.Kind {
	case "saturation":
		kind = CurveSaturation
	case "rh":
		kind = CurveConstRH
	case "enthalpy":
		kind = CurveConstEnthalpy
	case "wetbulb":
		kind = CurveConstWetBulb
	default:
		return Curve{}, fmt.Errorf("%w: curve kind %q", ErrInvalidInput, spec.Kind)
	}

	tdbMin, tdbMax := -10.0, 55.0
	if spec.TdbMin != nil {
		tdbMin = *spec.TdbMin
	}
	if spec.TdbMax != nil {
		tdbMax = *spec.TdbMax
	}
	n := 200
	if spec.N != nil {
		n = *spec.N
	}

	return GenerateCurve(kind, spec.Value, tdbMin, tdbMax, n, P)
}

// Resolve はシナリオ全体を計算する。
// location 指定があれば設計外気の状態点を先に表へ展開し、
// states の同名指定で上書きできる。
func (sc *Scenario) Resolve() (*ScenarioResult, error) {
	logger := logging.GetLogger("psychro")

	P, err := sc.Pressure()
	if err != nil {
		return nil, err
	}
	logger.Infof("シナリオを解決します: P=%.0f Pa, 状態点%d, プロセス%d, 等値線%d",
		P, len(sc.States), len(sc.Processes), len(sc.Curves))

	table := NewStateTable()
	if sc.Location != "" {
		dc, ok := GetDesignConditions(sc.Location)
		if !ok {
			return nil, fmt.Errorf("%w: unknown location %q", ErrInvalidInput, sc.Location)
		}
		table, err = DesignStateTable(dc, P)
		if err != nil {
			return nil, err
		}
	}

	for _, spec := range sc.States {
		s, err := spec.Resolve(P)
		if err != nil {
			return nil, err
		}
		table.Add(spec.Name, s)
	}

	result := &ScenarioResult{Pressure: P, States: table}

	for _, spec := range sc.Processes {
		in, ok := table.Get(spec.In)
		if !ok {
			return nil, fmt.Errorf("%w: process %q references unknown state %q", ErrInvalidInput, spec.Name, spec.In)
		}
		out, ok := table.Get(spec.Out)
		if !ok {
			return nil, fmt.Errorf("%w: process %q references unknown state %q", ErrInvalidInput, spec.Name, spec.Out)
		}
		pr, err := EvaluateProcess(spec.Name, in, out, spec.MassFlow)
		if err != nil {
			return nil, err
		}
		result.Processes = append(result.Processes, pr)
	}

	for _, spec := range sc.Curves {
		c, err := spec.Resolve(P)
		if err != nil {
			return nil, err
		}
		result.Curves = append(result.Curves, c)
	}

	return result, nil
}
