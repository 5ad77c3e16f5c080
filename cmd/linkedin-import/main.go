package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := cli.Run(ctx, os.Args[1:], os.Stdout)
	if err == nil {
		return
	}
	var ue cli.UsageError
	if errors.As(err, &ue) {
		fmt.Fprintln(os.Stderr, ue.Error())
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, cli.Usage())
		os.Exit(2)
	}
	fmt.Fprintln(os.Stderr, "Import failed:", err)
	os.Exit(1)
}
