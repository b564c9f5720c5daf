package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/cheggaaa/pb.v1"

	"isomodel/isomodel"
)

type batchOptions struct {
	outputDataDir        string
	weatherSpecifyMethod string
	weatherFilePath      string
}

// 1棟分の計算結果
type BatchResult struct {
	HouseDataPath string
	Result        *isomodel.Result
	Err           error
}

func newBatchCommand() *cobra.Command {
	var o batchOptions

	cmd := &cobra.Command{
		Use:   "batch [building.json]...",
		Short: "複数棟の計算を並列に実行します。",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop, err := startProfile()
			if err != nil {
				return err
			}
			defer stop()

			return batch(cmd.Context(), o, args)
		},
	}

	cmd.Flags().StringVarP(&o.outputDataDir, "output", "o", ".", "出力フォルダ")
	cmd.Flags().StringVar(&o.weatherSpecifyMethod, "weather", isomodel.WeatherMethodRadiation, "気象データの作成方法を指定します。(radiation, solar)")
	cmd.Flags().StringVarP(&o.weatherFilePath, "weather_path", "w", "", "気象データのファイルパスを指定します。")
	cmd.MarkFlagRequired("weather_path")

	return cmd
}

func batch(ctx context.Context, o batchOptions, houseDataPaths []string) error {
	start := time.Now()

	if err := os.MkdirAll(o.outputDataDir, 0755); err != nil {
		return fmt.Errorf("`%s` is not a directory: %w", o.outputDataDir, err)
	}

	logger.Info("気象データの生成開始")
	w, err := isomodel.MakeWeather(o.weatherSpecifyMethod, o.weatherFilePath)
	if err != nil {
		return err
	}

	// job channel
	jobs := make(chan int, len(houseDataPaths))
	for i := range houseDataPaths {
		jobs <- i
	}
	close(jobs)

	// results channel
	results := make(chan *BatchResult, len(houseDataPaths))

	// set worker pool size
	limit := MaxParallelism()

	var workerWaitGroup sync.WaitGroup

	bar := pb.StartNew(len(houseDataPaths))
	bar.ShowTimeLeft = false

	for m := 0; m < limit; m++ {
		workerWaitGroup.Add(1)
		go Worker(
			&workerWaitGroup,
			ctx,
			w,
			houseDataPaths,
			o.outputDataDir,
			jobs,
			results,
			bar)
	}

	// launch a monitor to close the results channel
	go func() {
		workerWaitGroup.Wait()
		close(results)
	}()

	var failed int
	for r := range results {
		if r.Err != nil {
			failed++
			logger.Error("calculation failed", zap.String("input", r.HouseDataPath), zap.Error(r.Err))
			continue
		}
		logEndUses(logger, r.Result)
	}

	bar.FinishPrint(fmt.Sprintf("\tFinished %d buildings", len(houseDataPaths)))
	logger.Info(fmt.Sprintf("elapsed_time: %v [sec]", time.Since(start).Seconds()))

	if failed > 0 {
		return fmt.Errorf("%d of %d buildings failed", failed, len(houseDataPaths))
	}
	return nil
}

/*
計算を実行するワーカー

Args:
	workerWaitGroup: ワーカーの待ち合わせ
	ctx: context
	w: 気象データ（全ワーカーで共有し、変更しない）
	houseDataPaths: 建物計算条件JSONファイルへのパス
	outputDataDir: 出力フォルダへのパス
	jobs: 計算する建物の番号
	results: 計算結果
	bar: 進捗バー
*/
func Worker(
	workerWaitGroup *sync.WaitGroup,
	ctx context.Context,
	w *isomodel.Weather,
	houseDataPaths []string,
	outputDataDir string,
	jobs chan int,
	results chan *BatchResult,
	bar *pb.ProgressBar) {

	defer workerWaitGroup.Done()

	for key := range jobs {
		path := houseDataPaths[key]
		res, err := simulateFile(ctx, w, path, outputDataDir)

		results <- &BatchResult{
			HouseDataPath: path,
			Result:        res,
			Err:           err,
		}

		bar.Increment()
	}
}

func simulateFile(ctx context.Context, w *isomodel.Weather, path string, outputDataDir string) (*isomodel.Result, error) {
	m, err := isomodel.LoadModel(path)
	if err != nil {
		return nil, err
	}

	// 計算中のログは警告以上のみ出力する。
	res, err := isomodel.Simulate(ctx, logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel)), m, w)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result_monthly_path := filepath.Join(outputDataDir, name+"_monthly.csv")
	err = writeFile(result_monthly_path, func(wr io.Writer) error {
		return isomodel.WriteMonthlyCSV(wr, &res.EndUses)
	})
	return res, err
}

// MaxParallelism function
func MaxParallelism() int {
	// get the number of go processes
	maxProcs := runtime.GOMAXPROCS(0)

	// get the maximum number of cpus on the local machine
	numCPU := runtime.NumCPU()
	if maxProcs < numCPU {
		return maxProcs
	}

	return numCPU
}
