// psychro-go
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/hvacsim/psychro-go/psychro"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// コマンドライン引数の処理
	parser := argparse.NewParser("psychro-go", "Computes moist air states, process loads and psychrometric chart curves for AHU/CRAH design")

	scenarioPath := parser.StringPositional(&argparse.Options{
		Default: "",
		Help:    "設計シナリオファイル(YAML)のパス"})

	location := parser.String("l", "location", &argparse.Options{
		Default: "",
		Help:    "設計気象条件の地点キー（シナリオ省略時のデモ計算に使用）"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス（省略時は標準出力）"})

	mode := parser.Selector("", "mode", []string{"states", "processes", "chart"}, &argparse.Options{
		Default: "states",
		Help:    "出力内容の指定 状態表=states(デフォルト), プロセス表=processes, 等値線=chart"})

	tdbMin := parser.Float("", "tdb_min", &argparse.Options{
		Default: -10.0,
		Help:    "等値線の乾球温度下限 [℃]"})

	tdbMax := parser.Float("", "tdb_max", &argparse.Options{
		Default: 55.0,
		Help:    "等値線の乾球温度上限 [℃]"})

	logLevel := parser.Selector("", "log", []string{"debug", "info", "warn", "error"}, &argparse.Options{
		Default: "info",
		Help:    "ログレベル"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	setLogLevel(*logLevel)

	// シナリオの組み立て
	var sc *psychro.Scenario
	if *scenarioPath != "" {
		f, err := os.Open(*scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sc, err = psychro.LoadScenario(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if sc.Location == "" {
			sc.Location = *location
		}
	} else {
		// シナリオ省略時は地点の設計外気のみを解決する
		loc := *location
		if loc == "" {
			fmt.Fprintf(os.Stderr, "Error: either a scenario file or --location is required (known: %s)\n",
				strings.Join(psychro.LocationList(), ", "))
			os.Exit(1)
		}
		sc = &psychro.Scenario{Location: loc}
	}

	res, err := sc.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 出力
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	switch *mode {
	case "states":
		res.States.ToCSV(buf)
	case "processes":
		psychro.ProcessesToCSV(buf, res.Processes)
	case "chart":
		curves := res.Curves
		if len(curves) == 0 {
			cs, err := psychro.BuildChartSet(res.Pressure, *tdbMin, *tdbMax)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			curves = cs.All()
		}
		psychro.CurvesToCSV(buf, curves)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("CSV保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	log.Printf("計算が終了しました")
}

func setLogLevel(level string) {
	logger := logging.GetLogger("psychro")
	switch level {
	case "debug":
		logger.SetLevel(logging.LevelDebug)
	case "info":
		logger.SetLevel(logging.LevelInfo)
	case "warn":
		logger.SetLevel(logging.LevelWarn)
	case "error":
		logger.SetLevel(logging.LevelError)
	}
}
