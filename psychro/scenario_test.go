package psychro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const scenarioYAML = `
location: DUBAI
states:
  - name: "CRAH Return"
    tdb: 36.0
    rh: 0.25
  - name: "CRAH Supply"
    tdb: 24.0
    rh: 0.5
  - name: "AHU Off-Coil"
    tdb: 16.9
    rh: 1.0
processes:
  - name: "CRAH Cooling Loop"
    in: "CRAH Return"
    out: "CRAH Supply"
    mass_flow: 85.9
curves:
  - kind: saturation
    value: 1.0
  - kind: rh
    value: 0.5
    tdb_min: 0.0
    tdb_max: 40.0
    n: 41
`

// YAMLシナリオの読み込みと解決
func Test_Scenario_Resolve(t *testing.T) {
	sc, err := LoadScenario(strings.NewReader(scenarioYAML))
	assert.NoError(t, err)
	assert.Equal(t, "DUBAI", sc.Location)

	res, err := sc.Resolve()
	assert.NoError(t, err)

	// 地点の設計外気5点 + シナリオ指定3点
	assert.Equal(t, 8, res.States.Len())

	s, ok := res.States.Get("CRAH Supply")
	assert.True(t, ok)
	assert.InDelta(t, 0.00934, s.W, 5.0e-5)

	assert.Equal(t, 1, len(res.Processes))
	p := res.Processes[0]
	assert.Equal(t, "CRAH Cooling Loop", p.Name)
	assert.Negative(t, p.QTotal)
	assert.InDelta(t, p.QTotal, p.QSens+p.QLat, 1.0e-9)

	assert.Equal(t, 2, len(res.Curves))
	assert.Equal(t, CurveSaturation, res.Curves[0].Kind)
	assert.Equal(t, 41, len(res.Curves[1].Points))
}

// 湿度記述子の過剰指定は拒否される
func Test_Scenario_OverDeterminedState(t *testing.T) {
	yaml := `
states:
  - name: "bad"
    tdb: 24.0
    rh: 0.5
    twb: 17.0
`
	sc, err := LoadScenario(strings.NewReader(yaml))
	assert.NoError(t, err)

	_, err = sc.Resolve()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// 湿度記述子なしも拒否される
func Test_Scenario_MissingDescriptor(t *testing.T) {
	yaml := `
states:
  - name: "bad"
    tdb: 24.0
`
	sc, err := LoadScenario(strings.NewReader(yaml))
	assert.NoError(t, err)

	_, err = sc.Resolve()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// 気圧と標高の同時指定は過剰指定
func Test_Scenario_OverDeterminedPressure(t *testing.T) {
	alt := 1694.0
	p := 101325.0
	sc := &Scenario{AltitudeM: &alt, PressurePa: &p}

	_, err := sc.Pressure()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// 大気圧の決定順序: 明示気圧 > 標高 > 地点標高 > 海面気圧
func Test_Scenario_Pressure(t *testing.T) {
	p := 95000.0
	sc := &Scenario{PressurePa: &p}
	got, err := sc.Pressure()
	assert.NoError(t, err)
	assert.Equal(t, 95000.0, got)

	alt := 612.0
	sc = &Scenario{AltitudeM: &alt}
	got, err = sc.Pressure()
	assert.NoError(t, err)
	assert.InDelta(t, 94185.7, got, 5.0)

	sc = &Scenario{Location: "JOHANNESBURG"}
	got, err = sc.Pressure()
	assert.NoError(t, err)
	assert.InDelta(t, 82562.3, got, 5.0)

	sc = &Scenario{}
	got, err = sc.Pressure()
	assert.NoError(t, err)
	assert.Equal(t, SeaLevelPressure, got)
}

// 未定義の状態参照・地点・曲線種別はエラー
func Test_Scenario_BadReferences(t *testing.T) {
	yaml := `
states:
  - name: "a"
    tdb: 24.0
    rh: 0.5
processes:
  - name: "p"
    in: "a"
    out: "missing"
    mass_flow: 1.0
`
	sc, err := LoadScenario(strings.NewReader(yaml))
	assert.NoError(t, err)
	_, err = sc.Resolve()
	assert.ErrorIs(t, err, ErrInvalidInput)

	sc = &Scenario{Location: "NOWHERE"}
	_, err = sc.Resolve()
	assert.ErrorIs(t, err, ErrInvalidInput)

	sc = &Scenario{Curves: []CurveSpec{{Kind: "spiral", Value: 1.0}}}
	_, err = sc.Resolve()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// YAMLとして不正な入力
func Test_LoadScenario_BadYAML(t *testing.T) {
	_, err := LoadScenario(strings.NewReader("states: [unclosed"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
