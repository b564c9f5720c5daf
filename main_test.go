package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestExecute_SyncsOnError(t *testing.T) {
	var buf bytes.Buffer
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(&buf)}
	defer ws.Stop()

	saved := logger
	defer func() { logger = saved }()
	logger = zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zap.InfoLevel))

	cmd := &cobra.Command{
		Use:           "failing",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Error("simulation failed")
			return errors.New("boom")
		},
	}
	cmd.SetArgs([]string{})

	require.EqualError(t, execute(cmd), "boom")
	assert.Contains(t, buf.String(), "simulation failed")
}
