package util

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// ErrSignalled is returned by Signal when a termination signal arrives
var ErrSignalled = errors.New("termination signal received")

// Signal listens for SIGINT, SIGTERM, SIGQUIT
// and handles them in a graceful manner
func Signal(gctx context.Context) func() error {
	return func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		defer signal.Stop(sig)

		select {
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("Signal received. Beginning shutdown")
			return ErrSignalled
		case <-gctx.Done():
			return gctx.Err()
		}
	}
}
