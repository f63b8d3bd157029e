// Package signals holds the exit code of the sendtokens command and turns
// interrupt signals into context cancellation.
package signals

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pokt-network/sendtokens/pkg/polylog"
)

// doubleInterruptExitCode follows the UNIX convention of 128 + SIGINT.
const doubleInterruptExitCode = 130

// ExitCode holds the exit code of a run whose errors were handled (logged)
// rather than returned. It is used by ExitWithCodeIfNonZero.
var ExitCode int

// ExitWithCodeIfNonZero exits the process with ExitCode unless it is zero.
// It is intended to be called once the root command has returned.
func ExitWithCodeIfNonZero(_ *cobra.Command, _ []string) {
	if ExitCode != 0 {
		os.Exit(ExitCode)
	}
}

// GoOnExitSignal calls onInterrupt when the process receives an interrupt or
// terminate signal. A second signal exits the process immediately.
// The returned function stops listening for signals.
func GoOnExitSignal(logger polylog.Logger, onInterrupt func()) (stop func()) {
	// SIGKILL cannot be trapped.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			logger.Warn().
				Str("signal", sig.String()).
				Msg("received signal, cancelling transfer")
			onInterrupt()
		case <-done:
			return
		}

		select {
		case sig := <-sigCh:
			logger.Warn().
				Str("signal", sig.String()).
				Msg("received another signal, exiting immediately")
			os.Exit(doubleInterruptExitCode)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
