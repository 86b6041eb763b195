package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpchandler "github.com/Xausdorf/pix-brcode/internal/delivery/grpc"
	httpdelivery "github.com/Xausdorf/pix-brcode/internal/delivery/http"
	"github.com/Xausdorf/pix-brcode/internal/infrastructure/config"
	"github.com/Xausdorf/pix-brcode/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/pix-brcode/internal/usecase/generatebrcode"
)

const readHeaderTimeout = 5 * time.Second

// NewUseCase wires the generate use case to a QR renderer built from cfg.
func NewUseCase(cfg *config.Config) (*generatebrcode.UseCase, error) {
	level, err := qrgenerator.ParseRecoveryLevel(cfg.QR.Recovery)
	if err != nil {
		return nil, err
	}
	return generatebrcode.NewUseCase(qrgenerator.NewGenerator(cfg.QR.Size, level)), nil
}

// Run serves HTTP and gRPC until ctx is done or either server fails, then
// shuts both down within cfg.Shutdown.Timeout.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	uc, err := NewUseCase(cfg)
	if err != nil {
		return err
	}

	httpHandler := httpdelivery.NewHandler(uc, logger)
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpdelivery.NewRouter(httpHandler, logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpchandler.LoggingInterceptor(logger)))
	grpchandler.RegisterBRCodeServiceServer(grpcSrv, grpchandler.NewHandler(uc))
	reflection.Register(grpcSrv)

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", cfg.HTTP.Addr).Msg("HTTP server starting")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info().Str("addr", cfg.GRPC.Addr).Msg("gRPC server starting")
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			grpcSrv.GracefulStop()
			close(stopped)
		}()

		err := httpSrv.Shutdown(shutdownCtx)

		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcSrv.Stop()
		}
		return err
	})

	return g.Wait()
}
