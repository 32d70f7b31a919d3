// Command chatview renders chat messages in the terminal.
//
// Usage:
//
//	chatview render [flags] [file|-]...
//	chatview view [flags] [file|-]
//
// Settings resolve from defaults, then the config file
// ($XDG_CONFIG_HOME/chatview/config.yaml or --config), then CHATVIEW_*
// environment variables, then flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "chatview: %v\n", err)
		stop()
		os.Exit(1)
	}
}
