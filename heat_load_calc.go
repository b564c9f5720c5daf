package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"isomodel/isomodel"
)

type runOptions struct {
	houseDataPath        string
	outputDataDir        string
	isScheduleSaved      bool
	weatherSpecifyMethod string
	weatherFilePath      string
}

func newRunCommand() *cobra.Command {
	var o runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "1棟の計算を実行します。",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop, err := startProfile()
			if err != nil {
				return err
			}
			defer stop()

			start := time.Now()

			if err := run(cmd.Context(), o); err != nil {
				return err
			}

			logger.Info(fmt.Sprintf("elapsed_time: %v [sec]", time.Since(start).Seconds()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.houseDataPath, "input", "i", "", "計算を実行するJSONファイル")
	cmd.Flags().StringVarP(&o.outputDataDir, "output", "o", ".", "出力フォルダ")
	cmd.Flags().BoolVar(&o.isScheduleSaved, "schedule_saved", false, "スケジュールを出力するか否かを指定します。")
	cmd.Flags().StringVar(&o.weatherSpecifyMethod, "weather", isomodel.WeatherMethodRadiation, "気象データの作成方法を指定します。(radiation, solar)")
	cmd.Flags().StringVarP(&o.weatherFilePath, "weather_path", "w", "", "気象データのファイルパスを指定します。")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("weather_path")

	return cmd
}

/*
負荷計算処理の実行

Args:
	ctx: context
	o: 実行条件
		houseDataPath: 建物計算条件JSONファイルへのパス
		outputDataDir: 出力フォルダへのパス
		isScheduleSaved: スケジュールを出力するか否か
		weatherSpecifyMethod: 気象データの作成方法
		weatherFilePath: 気象データのファイルパス
*/
func run(ctx context.Context, o runOptions) error {
	// ---- 事前準備 ----

	// 出力ディレクトリの作成
	if err := os.MkdirAll(o.outputDataDir, 0755); err != nil {
		return fmt.Errorf("`%s` is not a directory: %w", o.outputDataDir, err)
	}

	// 建物計算条件JSONファイルの読み込み
	logger.Info("建物計算条件JSONファイルの読み込み開始")
	m, err := isomodel.LoadModel(o.houseDataPath)
	if err != nil {
		return err
	}

	// 気象データの生成
	logger.Info("気象データの生成開始")
	w, err := isomodel.MakeWeather(o.weatherSpecifyMethod, o.weatherFilePath)
	if err != nil {
		return err
	}

	// ---- 計算 ----

	res, err := isomodel.Simulate(ctx, logger, m, w)
	if err != nil {
		return err
	}

	// スケジュールファイルの保存
	if o.isScheduleSaved {
		logger.Info(fmt.Sprintf("Save schedules to `%s`", o.outputDataDir))
		if err := res.Schedules.SaveSchedule(o.outputDataDir); err != nil {
			return err
		}
	}

	// ---- 計算結果ファイルの保存 ----

	logEndUses(logger, res)

	// 計算結果（月別・燃料種別・用途別）
	result_monthly_path := filepath.Join(o.outputDataDir, "result_monthly.csv")
	logger.Info(fmt.Sprintf("Save calculation results data (monthly) to `%s`", result_monthly_path))
	if err := writeFile(result_monthly_path, func(wr io.Writer) error {
		return isomodel.WriteMonthlyCSV(wr, &res.EndUses)
	}); err != nil {
		return err
	}

	// 計算結果（毎時）
	result_hourly_path := filepath.Join(o.outputDataDir, "result_hourly.csv")
	logger.Info(fmt.Sprintf("Save calculation results data (hourly) to `%s`", result_hourly_path))
	return writeFile(result_hourly_path, res.Recorder.WriteHourlyCSV)
}

// 年間の燃料種別・用途ごとのエネルギー消費量（床面積あたり）をログに出力する。
func logEndUses(l *zap.Logger, res *isomodel.Result) {
	annual := res.EndUses.Annual()

	fields := make([]zap.Field, 0, isomodel.NumberOfEndUses+1)
	fields = append(fields, zap.String("building", res.Model.Name))
	for i, k := range isomodel.EndUseKeys {
		fields = append(fields, zap.Float64(k.String(), annual[i]))
	}
	l.Info("annual energy use intensity [kWh/m2]", fields...)
}

func writeFile(path string, write func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}
