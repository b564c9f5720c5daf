package main

import (
	"strings"
	"time"

	"github.com/michibiki-io/goutils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
ロガーを作成する。

Args:
	level: ログレベル（debug, info, warn, error）

Returns:
	MODE=debug の場合は開発用、それ以外は本番用の設定のロガー
*/
func newLogger(level string) (*zap.Logger, error) {
	if strings.ToLower(goutils.GetEnv("MODE", "release")) == "debug" {
		return zap.NewDevelopment()
	}

	lv, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lv)
	logCfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		const layout = "2006-01-02 15:04:05 JST"
		jst := time.FixedZone("Asia/Tokyo", 9*60*60)
		pae.AppendString(t.In(jst).Format(layout))
	}
	return logCfg.Build()
}
