package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/well-living/nurse-exam-app/internal/config"
	"github.com/well-living/nurse-exam-app/internal/container"
	"github.com/well-living/nurse-exam-app/internal/router"
)

func main() {
	cfg := config.Load()
	config.Init(cfg.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := container.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("startup failed: %v", err)
	}

	handler := router.New(router.RouterConfig{
		Config:          cfg,
		UserStore:       c.UserStore(),
		UserHandler:     c.UserContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		AttemptHandler:  c.AttemptContainer.Handler,
		ChatHandler:     c.ChatContainer.Handler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("server shutdown failed")
		}
	}()

	logrus.Infof("nurse-exam-app listening on :%s (debug=%v, persistence=%v)",
		cfg.Port, cfg.Debug, c.DB != nil)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatalf("server error: %v", err)
	}
}
