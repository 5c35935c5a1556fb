package psychro

import (
	"bytes"
	"strconv"
)

//帳票・表計算連携用のCSV出力モジュール

func writeFloat(buf *bytes.Buffer, v float64) {
	buf.WriteString(",")
	buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

// CSV形式（状態表）
func (t *StateTable) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("label")
	buf.WriteString(",TDB")
	buf.WriteString(",TWB")
	buf.WriteString(",TDP")
	buf.WriteString(",RH")
	buf.WriteString(",W")
	buf.WriteString(",H")
	buf.WriteString(",V")
	buf.WriteString(",Pw")
	buf.WriteString(",Pws")
	buf.WriteString(",P")
	buf.WriteString("\n")

	for _, label := range t.labels {
		s := t.states[label]
		buf.WriteString(label)
		writeFloat(buf, s.TDB)
		writeFloat(buf, s.TWB)
		writeFloat(buf, s.TDP)
		writeFloat(buf, s.RH)
		writeFloat(buf, s.W)
		writeFloat(buf, s.H)
		writeFloat(buf, s.V)
		writeFloat(buf, s.Pw)
		writeFloat(buf, s.Pws)
		writeFloat(buf, s.P)
		buf.WriteString("\n")
	}
}

// CSV形式（プロセス表）。呼び出し順のまま出力する。
func ProcessesToCSV(buf *bytes.Buffer, results []ProcessResult) {
	buf.WriteString("name")
	buf.WriteString(",TDB_in")
	buf.WriteString(",W_in")
	buf.WriteString(",H_in")
	buf.WriteString(",TDB_out")
	buf.WriteString(",W_out")
	buf.WriteString(",H_out")
	buf.WriteString(",mass_flow")
	buf.WriteString(",Q_sens")
	buf.WriteString(",Q_lat")
	buf.WriteString(",Q_total")
	buf.WriteString(",SHR")
	buf.WriteString(",moisture_gs")
	buf.WriteString("\n")

	for _, r := range results {
		buf.WriteString(r.Name)
		writeFloat(buf, r.In.TDB)
		writeFloat(buf, r.In.W)
		writeFloat(buf, r.In.H)
		writeFloat(buf, r.Out.TDB)
		writeFloat(buf, r.Out.W)
		writeFloat(buf, r.Out.H)
		writeFloat(buf, r.MassFlow)
		writeFloat(buf, r.QSens)
		writeFloat(buf, r.QLat)
		writeFloat(buf, r.QTotal)
		writeFloat(buf, r.SHR)
		writeFloat(buf, r.MoistureGS)
		buf.WriteString("\n")
	}
}

// CSV形式（等値線）。種類と固定値をメタデータ列として持つ。
func CurvesToCSV(buf *bytes.Buffer, curves []Curve) {
	buf.WriteString("kind,value,TDB,W\n")
	for _, c := range curves {
		for _, pt := range c.Points {
			buf.WriteString(c.Kind.String())
			writeFloat(buf, c.Value)
			writeFloat(buf, pt.TDB)
			writeFloat(buf, pt.W)
			buf.WriteString("\n")
		}
	}
}
