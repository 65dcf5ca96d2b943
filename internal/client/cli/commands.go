package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "pull":
		err = c.runPull(ctx, args)
	case "sell":
		err = c.runSell(ctx, args)
	case "pending":
		err = c.runPending(ctx)
	case "abandoned":
		err = c.runAbandoned(ctx)
	case "purge":
		err = c.runPurge(ctx, args)
	case "sync":
		err = c.runSync(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "watch":
		err = c.runWatch(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
