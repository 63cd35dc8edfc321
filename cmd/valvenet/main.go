// Command valvenet reads a valve network and prints the best pressure one
// actor, or two cooperating actors, can release.
//
//	valvenet solve input.txt
//	valvenet solve --format yaml --minutes 20 < network.yaml
//	valvenet inspect input.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "valvenet:", err)
		os.Exit(1)
	}
}
