package psychro

import (
	"github.com/hhkbp2/go-logging"
)

//空気線図チャート連携用の等値線一式

// チャート描画側に渡す標準的な等値線の構成。
// chart_png.py 相当の描画ライブラリは座標列と凡例メタデータのみを受け取る。
type ChartSet struct {
	Saturation Curve
	RHLines    []Curve // RH 10%〜90% (10%刻み)
	WBLines    []Curve // 等湿球温度線
	HLines     []Curve // 等比エンタルピー線
}

// 等値線の総数
func (cs *ChartSet) Count() int {
	return 1 + len(cs.RHLines) + len(cs.WBLines) + len(cs.HLines)
}

// 全等値線を1つの配列として返す（飽和線が先頭）。
func (cs *ChartSet) All() []Curve {
	all := make([]Curve, 0, cs.Count())
	all = append(all, cs.Saturation)
	all = append(all, cs.RHLines...)
	all = append(all, cs.WBLines...)
	all = append(all, cs.HLines...)
	return all
}

// BuildChartSet は空気線図の標準的な等値線一式を生成する。
// 乾球温度域 [tdbMin, tdbMax]、気圧 P [Pa]。
func BuildChartSet(P float64, tdbMin float64, tdbMax float64) (*ChartSet, error) {
	logger := logging.GetLogger("psychro")
	logger.Debugf("チャート用等値線を生成します: P=%.0f Pa, TDB=[%.1f, %.1f]", P, tdbMin, tdbMax)

	cs := &ChartSet{}

	sat, err := GenerateCurve(CurveSaturation, 1.0, tdbMin, tdbMax, 300, P)
	if err != nil {
		return nil, err
	}
	cs.Saturation = sat

	for rh := 0.1; rh < 0.95; rh += 0.1 {
		c, err := GenerateCurve(CurveConstRH, rh, tdbMin, tdbMax, 200, P)
		if err != nil {
			return nil, err
		}
		cs.RHLines = append(cs.RHLines, c)
	}

	// 湿球5℃刻み
	for twb := 0.0; twb <= 30.0; twb += 5.0 {
		c, err := GenerateCurve(CurveConstWetBulb, twb, tdbMin, tdbMax, 200, P)
		if err != nil {
			return nil, err
		}
		if len(c.Points) > 0 {
			cs.WBLines = append(cs.WBLines, c)
		}
	}

	// 比エンタルピー10kJ/kg刻み
	for h := 10.0; h <= 100.0; h += 10.0 {
		c, err := GenerateCurve(CurveConstEnthalpy, h, tdbMin, tdbMax, 200, P)
		if err != nil {
			return nil, err
		}
		if len(c.Points) > 0 {
			cs.HLines = append(cs.HLines, c)
		}
	}

	logger.Debugf("等値線 %d 本を生成しました", cs.Count())
	return cs, nil
}
