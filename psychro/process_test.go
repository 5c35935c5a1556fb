package psychro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 冷却除湿プロセスのテスト（入口24℃/50%、出口14℃/95%、乾き空気1kg/s）
func Test_EvaluateProcess_Cooling(t *testing.T) {
	in, err := StateFromRH(24.0, 0.5, testP)
	assert.NoError(t, err)
	out, err := StateFromRH(14.0, 0.95, testP)
	assert.NoError(t, err)

	r, err := EvaluateProcess("CRAH Cooling", in, out, 1.0)
	assert.NoError(t, err)

	// 全熱はエンタルピー差そのもの（冷却なので負）
	assert.Negative(t, r.QTotal)
	assert.InDelta(t, out.H-in.H, r.QTotal, 1.0e-12)
	assert.InDelta(t, -9.81, r.QTotal, 0.1)
	assert.InDelta(t, -10.23, r.QSens, 0.1)

	// 顕熱+潜熱=全熱は構成的に厳密
	assert.InDelta(t, r.QTotal, r.QSens+r.QLat, 1.0e-12)
}

// 絶対湿度一定の顕熱変化では潜熱が厳密に0になる
// （比熱がエンタルピー式の温度勾配と一致していることの確認）
func Test_EvaluateProcess_SensibleOnly(t *testing.T) {
	in, err := StateFromRH(24.0, 0.5, testP)
	assert.NoError(t, err)
	out, err := StateFromW(36.0, in.W, testP)
	assert.NoError(t, err)

	r, err := EvaluateProcess("Reheat", in, out, 2.5)
	assert.NoError(t, err)

	assert.Positive(t, r.QTotal)
	assert.InDelta(t, 0.0, r.QLat, 1.0e-9)
	assert.InDelta(t, r.QTotal, r.QSens, 1.0e-9)
	assert.InDelta(t, 0.0, r.MoistureGS, 1.0e-9)
	assert.InDelta(t, 1.0, r.SHR, 1.0e-9)
}

// 質量流量に対する線形性
func Test_EvaluateProcess_MassFlowScaling(t *testing.T) {
	in, _ := StateFromRH(24.0, 0.5, testP)
	out, _ := StateFromRH(14.0, 0.95, testP)

	r1, err := EvaluateProcess("x1", in, out, 1.0)
	assert.NoError(t, err)
	r3, err := EvaluateProcess("x3", in, out, 3.0)
	assert.NoError(t, err)

	assert.InDelta(t, 3*r1.QTotal, r3.QTotal, 1.0e-9)
	assert.InDelta(t, 3*r1.QSens, r3.QSens, 1.0e-9)
	assert.InDelta(t, 3*r1.MoistureGS, r3.MoistureGS, 1.0e-9)
}

// 変化なし（同一状態）では顕熱比が定義されない
func Test_EvaluateProcess_NoChange(t *testing.T) {
	s, _ := StateFromRH(24.0, 0.5, testP)
	r, err := EvaluateProcess("noop", s, s, 1.0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, r.QTotal)
	assert.True(t, math.IsNaN(r.SHR))
}

// 負の質量流量の拒否
func Test_EvaluateProcess_NegativeMassFlow(t *testing.T) {
	s, _ := StateFromRH(24.0, 0.5, testP)
	_, err := EvaluateProcess("bad", s, s, -5.0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// 断熱混合のテスト（等量混合で絶対湿度とエンタルピーは算術平均）
func Test_MixStates(t *testing.T) {
	a, err := StateFromRH(24.0, 0.5, testP)
	assert.NoError(t, err)
	b, err := StateFromRH(14.0, 0.95, testP)
	assert.NoError(t, err)

	m, err := MixStates(a, 1.0, b, 1.0)
	assert.NoError(t, err)

	assert.InDelta(t, (a.W+b.W)/2, m.W, 1.0e-12)
	assert.InDelta(t, (a.H+b.H)/2, m.H, 1.0e-9)
	assert.InDelta(t, 19.0, m.TDB, 0.05)

	// 混合状態は両端の乾球温度の間にある
	assert.Greater(t, m.TDB, b.TDB)
	assert.Less(t, m.TDB, a.TDB)
}

// 混合の入力チェック
func Test_MixStates_InvalidInput(t *testing.T) {
	a, _ := StateFromRH(24.0, 0.5, 101325.0)
	b, _ := StateFromRH(14.0, 0.95, 90000.0)

	// 気圧の異なる状態の混合
	_, err := MixStates(a, 1.0, b, 1.0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 総質量流量が0
	_, err = MixStates(a, 0.0, a, 0.0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 負の質量流量
	_, err = MixStates(a, -1.0, a, 2.0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
