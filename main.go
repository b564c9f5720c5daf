package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel     string
	pprofEnabled bool

	logger *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "isomodel",
		Short: "ISO 13790 hourly building energy simulation",
		Long: `isomodel simulates one year (8760 hours) of a building with the
ISO 13790 simple hourly method (5R1C network) and reports the monthly
energy use per fuel and end use.

Examples:
  isomodel run -i building.json -w weather.csv -o out
  isomodel batch -w weather.csv -o out a.json b.json c.json
  WEATHER_PATH=weather.csv BUILDING_PATH=building.json isomodel serve`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(logLevel)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			logger = l
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log", "info", "ログレベルを指定します。(debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&pprofEnabled, "pprof", false, "プロファイリングを実行し、cpu.prof ファイルに保存します。")

	root.AddCommand(newRunCommand(), newBatchCommand(), newServeCommand())

	if err := execute(root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the command and flushes the logger whether or not it failed.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if logger != nil {
		logger.Sync()
	}
	return err
}

/*
pprof が有効な場合に CPU プロファイリングを開始する。

Returns:
	プロファイリングを終了する関数
*/
func startProfile() (func(), error) {
	if !pprofEnabled {
		return func() {}, nil
	}

	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			logger.Error("close cpu.prof", zap.Error(err))
		}
	}, nil
}
