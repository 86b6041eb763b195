package app_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/pix-brcode/internal/app"
	"github.com/Xausdorf/pix-brcode/internal/infrastructure/config"
	"github.com/Xausdorf/pix-brcode/internal/usecase/generatebrcode"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.GRPC.Addr = "127.0.0.1:0"
	cfg.Shutdown.Timeout = time.Second
	return cfg
}

func TestNewUseCase(t *testing.T) {
	cfg := testConfig(t)

	uc, err := app.NewUseCase(cfg)
	require.NoError(t, err)

	png, err := uc.ExecuteQR(generatebrcode.Request{
		ReceiverName:        "Weslley",
		ReceiverCity:        "Sao Paulo",
		ReceiverCountryCode: "BR",
		Identifier:          "***",
		Key:                 "65952998607",
		KeyType:             "CPF",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestNewUseCase_BadRecovery(t *testing.T) {
	cfg := testConfig(t)
	cfg.QR.Recovery = "extreme"

	_, err := app.NewUseCase(cfg)
	require.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx, cfg, zerolog.New(io.Discard)) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_GRPCListenFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.GRPC.Addr = "256.0.0.1:1"

	err := app.Run(context.Background(), cfg, zerolog.New(io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen grpc")
}
