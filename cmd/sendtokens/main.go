package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pokt-network/sendtokens/cmd/sendtokens/cmd"
	"github.com/pokt-network/sendtokens/cmd/signals"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}

	// Called after Execute so that the log output is closed first.
	signals.ExitWithCodeIfNonZero(rootCmd, nil)
}
