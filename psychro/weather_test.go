package psychro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 地点キーによる設計気象条件の取得（大文字小文字は区別しない）
func Test_GetDesignConditions(t *testing.T) {
	dc, ok := GetDesignConditions("dubai")
	assert.True(t, ok)
	assert.Equal(t, "Dubai", dc.Location)
	assert.Equal(t, 46.2, dc.CoolingDBN20)
	assert.Equal(t, 30.8, dc.CoolingWBN20)
	assert.Equal(t, 5.0, dc.AltitudeM)

	_, ok = GetDesignConditions("atlantis")
	assert.False(t, ok)
}

// 地点一覧はソート済みでCUSTOMが末尾
func Test_LocationList(t *testing.T) {
	list := LocationList()
	assert.Equal(t, 14, len(list))
	assert.Equal(t, CustomLocation, list[len(list)-1])

	for i := 1; i < len(list)-1; i++ {
		assert.Less(t, list[i-1], list[i])
	}
	assert.Contains(t, list, "DUBAI")
	assert.Contains(t, list, "JOHANNESBURG")
}

// 設計気象条件から状態表への解決
func Test_DesignStateTable(t *testing.T) {
	dc, ok := GetDesignConditions("DUBAI")
	assert.True(t, ok)

	P := dc.Atmosphere().Pressure()
	table, err := DesignStateTable(dc, P)
	assert.NoError(t, err)
	assert.Equal(t, 5, table.Len())

	s, ok := table.Get(LabelOATMaxN20)
	assert.True(t, ok)
	assert.Equal(t, 46.2, s.TDB)
	assert.InDelta(t, 30.8, s.TWB, 1.0e-3)

	// 冬期条件は飽和とみなす
	s, ok = table.Get(LabelOATMinN20)
	assert.True(t, ok)
	assert.Equal(t, 10.2, s.TDB)
	assert.InDelta(t, 1.0, s.RH, 1.0e-9)
}

// 高地（ヨハネスブルグ1694m）でも設計状態が解決できる
func Test_DesignStateTable_HighAltitude(t *testing.T) {
	dc, ok := GetDesignConditions("JOHANNESBURG")
	assert.True(t, ok)

	P := dc.Atmosphere().Pressure()
	assert.InDelta(t, 82562.0, P, 5.0)

	table, err := DesignStateTable(dc, P)
	assert.NoError(t, err)
	assert.Equal(t, 5, table.Len())

	for _, label := range table.Labels() {
		s, _ := table.Get(label)
		assert.Equal(t, P, s.P)
		assert.GreaterOrEqual(t, s.W, 0.0)
	}
}
