package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/criblio/greeter/greeter"
	"github.com/criblio/greeter/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// resolveOptions builds the server options from the environment
func resolveOptions(lookup func(string) (string, bool)) (greeter.Options, greeter.PortSource) {
	port, source := greeter.ResolvePort(lookup)
	if source == greeter.PortMalformed {
		val, _ := lookup(greeter.PortEnv)
		log.Warn().Str("value", val).Msgf("%s is not an integer, using %d", greeter.PortEnv, greeter.DefaultPort)
	}
	return greeter.Options{Port: port}, source
}

// serve runs the greeter until a termination signal arrives or ctx is done
func serve(ctx context.Context, lookup func(string) (string, bool)) error {
	opt, _ := resolveOptions(lookup)
	srv := greeter.New(opt)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(util.Signal(gctx))
	g.Go(func() error {
		return srv.Start(gctx)
	})
	return g.Wait()
}

// exitCode maps the result of serve to a process exit status, reporting
// failures to w
func exitCode(err error, w io.Writer) int {
	if err == nil || errors.Is(err, util.ErrSignalled) || errors.Is(err, context.Canceled) {
		return 0
	}

	var be *greeter.BindError
	if errors.As(err, &be) {
		greeter.Diagnose(be)
		log.Error().Err(be.Err).Str("addr", be.Addr).Str("reason", be.Reason.String()).Msg("bind failed")
		fmt.Fprintf(w, "Error: %v\n", be)
		if be.Hint != "" {
			fmt.Fprintf(w, "%s\n", be.Hint)
		}
		return 1
	}

	log.Error().Err(err).Msg("server failed")
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
