// Command energymonitor runs the energy consumption API and its
// maintenance tasks.
//
//	energymonitor serve              start the HTTP server
//	energymonitor migrate [up|down|status]
//	energymonitor seed --email a@b.c insert a synthetic 30-day history
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
