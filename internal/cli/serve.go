package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/example/permlog/internal/adapters/httpapi"
	"github.com/example/permlog/internal/config"
	"github.com/example/permlog/internal/wire"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd returns the serve command. Its --addr flag is bound on v.
func ServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve user history over HTTP",
		Long:  "Serve GET /v1/history/:target?page=N as JSON until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			gin.SetMode(gin.ReleaseMode)
			return serve(ctx, wire.Config().Server.Addr, wire.HistoryHandler(), wire.Logger())
		},
	}

	cmd.Flags().String("addr", "127.0.0.1:8089", "Listen address")
	_ = v.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))

	return cmd
}

func serve(ctx context.Context, addr string, handler *httpapi.HistoryHandler, logger *zap.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
		return err
	}
	return <-errCh
}
