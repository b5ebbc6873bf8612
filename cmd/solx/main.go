// Command solx is a read-only terminal explorer for Solana clusters.
//
// Usage examples:
//
//	solx cluster set mainnet
//	solx account info <address>
//	solx tx info <signature> --parsed
//	solx block info <slot>
//	solx --cluster testnet validator list
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
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
