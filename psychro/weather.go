package psychro

import (
	"fmt"
	"sort"
	"strings"
)

//--------------------------------------
// 設計用気象条件モジュール
//--------------------------------------
//
// ASHRAE Handbook of Fundamentals (2021, Chapter 14) の設計気象条件の抜粋。
// 地点の追加はこの表にエントリを足すだけでよい。
// 実況データ(再解析等)を使う場合も、同じ DesignConditions に詰めて渡す。

// ある地点の設計気象条件
type DesignConditions struct {
	Location  string
	Country   string
	Latitude  float64
	Longitude float64
	AltitudeM float64
	Timezone  int

	// 夏期冷房設計条件
	CoolingDBN20   float64 // 冷房設計乾球温度 N=20 [℃]
	CoolingWBN20   float64 // 同時湿球温度 [℃]
	CoolingDB04    float64 // 冷房設計乾球温度 0.4% [℃]
	CoolingWB04    float64 // 同時湿球温度 [℃]
	CoolingDBMeanW float64 // エンタルピー検討用の平均同時湿球 [℃]
	DehumidDB      float64 // 除湿設計乾球温度 [℃]
	DehumidWB      float64 // 除湿設計湿球温度（最大湿球） [℃]

	// 冬期暖房設計条件
	HeatingDBN20   float64 // 暖房設計乾球温度 99% [℃]
	HeatingDB004   float64 // 暖房設計乾球温度 99.6% [℃]
	HeatingDBMeanW float64 // 暖房時の平均湿球（参考値） [℃]
}

// 地点の大気条件
func (dc DesignConditions) Atmosphere() Atmosphere {
	return Atmosphere{AltitudeM: dc.AltitudeM}
}

// 任意指定用のキー
const CustomLocation = "CUSTOM"

var designConditions = map[string]DesignConditions{
	"ABU DHABI": {
		Location: "Abu Dhabi", Country: "UAE",
		Latitude: 24.43, Longitude: 54.65, AltitudeM: 27, Timezone: 4,
		CoolingDBN20: 47.0, CoolingWBN20: 29.5,
		CoolingDB04: 45.2, CoolingWB04: 28.5,
		CoolingDBMeanW: 35.2, DehumidDB: 33.6, DehumidWB: 30.2,
		HeatingDBN20: 7.3, HeatingDB004: 9.5, HeatingDBMeanW: 14.7,
	},
	"DUBAI": {
		Location: "Dubai", Country: "UAE",
		Latitude: 25.25, Longitude: 55.33, AltitudeM: 5, Timezone: 4,
		CoolingDBN20: 46.2, CoolingWBN20: 30.8,
		CoolingDB04: 44.9, CoolingWB04: 30.0,
		CoolingDBMeanW: 35.8, DehumidDB: 34.2, DehumidWB: 31.2,
		HeatingDBN20: 10.2, HeatingDB004: 12.0, HeatingDBMeanW: 16.0,
	},
	"RIYADH": {
		Location: "Riyadh", Country: "Saudi Arabia",
		Latitude: 24.72, Longitude: 46.73, AltitudeM: 612, Timezone: 3,
		CoolingDBN20: 44.7, CoolingWBN20: 23.2,
		CoolingDB04: 43.0, CoolingWB04: 22.4,
		CoolingDBMeanW: 32.0, DehumidDB: 31.0, DehumidWB: 22.8,
		HeatingDBN20: 3.2, HeatingDB004: 5.0, HeatingDBMeanW: 9.5,
	},
	"JOHANNESBURG": {
		Location: "Johannesburg", Country: "South Africa",
		Latitude: -26.13, Longitude: 28.23, AltitudeM: 1694, Timezone: 2,
		CoolingDBN20: 32.2, CoolingWBN20: 19.3,
		CoolingDB04: 30.8, CoolingWB04: 18.8,
		CoolingDBMeanW: 24.5, DehumidDB: 23.0, DehumidWB: 19.0,
		HeatingDBN20: 1.4, HeatingDB004: 3.1, HeatingDBMeanW: 8.5,
	},
	"CAPE TOWN": {
		Location: "Cape Town", Country: "South Africa",
		Latitude: -33.97, Longitude: 18.60, AltitudeM: 42, Timezone: 2,
		CoolingDBN20: 35.2, CoolingWBN20: 21.0,
		CoolingDB04: 33.1, CoolingWB04: 20.4,
		CoolingDBMeanW: 26.3, DehumidDB: 24.8, DehumidWB: 20.5,
		HeatingDBN20: 4.8, HeatingDB004: 6.2, HeatingDBMeanW: 11.5,
	},
	"LONDON": {
		Location: "London", Country: "UK",
		Latitude: 51.48, Longitude: -0.45, AltitudeM: 25, Timezone: 0,
		CoolingDBN20: 30.5, CoolingWBN20: 21.0,
		CoolingDB04: 28.8, CoolingWB04: 20.2,
		CoolingDBMeanW: 22.8, DehumidDB: 21.0, DehumidWB: 19.7,
		HeatingDBN20: -3.5, HeatingDB004: -1.8, HeatingDBMeanW: 4.0,
	},
	"FRANKFURT": {
		Location: "Frankfurt", Country: "Germany",
		Latitude: 50.03, Longitude: 8.55, AltitudeM: 113, Timezone: 1,
		CoolingDBN20: 33.2, CoolingWBN20: 21.5,
		CoolingDB04: 31.2, CoolingWB04: 21.0,
		CoolingDBMeanW: 23.8, DehumidDB: 22.5, DehumidWB: 20.5,
		HeatingDBN20: -10.0, HeatingDB004: -7.5, HeatingDBMeanW: 2.0,
	},
	"SINGAPORE": {
		Location: "Singapore", Country: "Singapore",
		Latitude: 1.37, Longitude: 103.98, AltitudeM: 16, Timezone: 8,
		CoolingDBN20: 34.0, CoolingWBN20: 28.3,
		CoolingDB04: 33.1, CoolingWB04: 27.8,
		CoolingDBMeanW: 30.1, DehumidDB: 29.0, DehumidWB: 28.1,
		HeatingDBN20: 22.3, HeatingDB004: 22.8, HeatingDBMeanW: 25.0,
	},
	"SYDNEY": {
		Location: "Sydney", Country: "Australia",
		Latitude: -33.95, Longitude: 151.18, AltitudeM: 6, Timezone: 10,
		CoolingDBN20: 37.8, CoolingWBN20: 24.5,
		CoolingDB04: 35.9, CoolingWB04: 23.5,
		CoolingDBMeanW: 28.0, DehumidDB: 26.2, DehumidWB: 23.8,
		HeatingDBN20: 4.8, HeatingDB004: 6.3, HeatingDBMeanW: 11.0,
	},
	"NEW YORK": {
		Location: "New York (JFK)", Country: "USA",
		Latitude: 40.63, Longitude: -73.78, AltitudeM: 9, Timezone: -5,
		CoolingDBN20: 33.9, CoolingWBN20: 25.9,
		CoolingDB04: 32.6, CoolingWB04: 25.2,
		CoolingDBMeanW: 28.0, DehumidDB: 26.8, DehumidWB: 25.4,
		HeatingDBN20: -11.2, HeatingDB004: -8.9, HeatingDBMeanW: 2.0,
	},
	"CHICAGO": {
		Location: "Chicago O'Hare", Country: "USA",
		Latitude: 41.98, Longitude: -87.90, AltitudeM: 204, Timezone: -6,
		CoolingDBN20: 34.4, CoolingWBN20: 25.7,
		CoolingDB04: 32.6, CoolingWB04: 25.0,
		CoolingDBMeanW: 28.1, DehumidDB: 27.0, DehumidWB: 25.2,
		HeatingDBN20: -22.8, HeatingDB004: -19.2, HeatingDBMeanW: -2.0,
	},
	"HONG KONG": {
		Location: "Hong Kong", Country: "China",
		Latitude: 22.32, Longitude: 114.17, AltitudeM: 9, Timezone: 8,
		CoolingDBN20: 34.5, CoolingWBN20: 28.5,
		CoolingDB04: 33.3, CoolingWB04: 28.1,
		CoolingDBMeanW: 30.0, DehumidDB: 29.2, DehumidWB: 28.3,
		HeatingDBN20: 7.3, HeatingDB004: 8.8, HeatingDBMeanW: 14.5,
	},
	"MUMBAI": {
		Location: "Mumbai", Country: "India",
		Latitude: 19.12, Longitude: 72.85, AltitudeM: 14, Timezone: 5,
		CoolingDBN20: 37.0, CoolingWBN20: 29.8,
		CoolingDB04: 35.2, CoolingWB04: 29.0,
		CoolingDBMeanW: 31.5, DehumidDB: 30.5, DehumidWB: 29.2,
		HeatingDBN20: 14.5, HeatingDB004: 16.0, HeatingDBMeanW: 20.0,
	},
	CustomLocation: {
		Location: "Custom Location", Country: "",
		CoolingDBN20: 45.0, CoolingWBN20: 28.0,
		CoolingDB04: 40.0, CoolingWB04: 26.0,
		CoolingDBMeanW: 32.0, DehumidDB: 30.0, DehumidWB: 26.0,
		HeatingDBN20: 5.0, HeatingDB004: 8.0, HeatingDBMeanW: 12.0,
	},
}

// GetDesignConditions は地点キー（大文字小文字は区別しない）から設計気象条件を返す。
func GetDesignConditions(name string) (DesignConditions, bool) {
	dc, ok := designConditions[strings.ToUpper(name)]
	return dc, ok
}

// LocationList は地点キーの一覧を返す（ソート済み、CUSTOMは末尾）。
func LocationList() []string {
	keys := make([]string, 0, len(designConditions))
	for k := range designConditions {
		if k != CustomLocation {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return append(keys, CustomLocation)
}

// 設計外気状態のラベル
const (
	LabelOATMaxN20 = "OAT Max N=20"
	LabelOATMax04E = "OAT Max 0.4%E"
	LabelOATMax04H = "OAT Max 0.4%H"
	LabelOATMinN20 = "OAT Min N=20"
	LabelOATMin04H = "OAT Min 0.4%H"
)

// DesignStateTable は設計気象条件の乾球・湿球ペアを状態表に解決する。
// 冬期条件の湿球温度は表に同時湿球を持たないため飽和（RH=1）とみなす。
func DesignStateTable(dc DesignConditions, P float64) (*StateTable, error) {
	table := NewStateTable()

	add := func(label string, s AirState, err error) error {
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		table.Add(label, s)
		return nil
	}

	s, err := StateFromTWB(dc.CoolingDBN20, dc.CoolingWBN20, P)
	if err := add(LabelOATMaxN20, s, err); err != nil {
		return nil, err
	}
	s, err = StateFromTWB(dc.CoolingDB04, dc.CoolingWB04, P)
	if err := add(LabelOATMax04E, s, err); err != nil {
		return nil, err
	}
	s, err = StateFromTWB(dc.DehumidDB, dc.DehumidWB, P)
	if err := add(LabelOATMax04H, s, err); err != nil {
		return nil, err
	}
	s, err = StateFromRH(dc.HeatingDBN20, 1.0, P)
	if err := add(LabelOATMinN20, s, err); err != nil {
		return nil, err
	}
	s, err = StateFromRH(dc.HeatingDB004, 1.0, P)
	if err := add(LabelOATMin04H, s, err); err != nil {
		return nil, err
	}

	return table, nil
}
