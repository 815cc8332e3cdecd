package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benzoXdev/pyveil/internal/cli"
)

func main() {
	// Clean exit on Ctrl+C; a second signal kills the process outright.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		fmt.Fprintln(os.Stderr, "\n\033[33mInterrupted.\033[0m")
		<-sig
		os.Exit(130)
	}()

	start := time.Now()
	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
	if !hasFlag("-q", "--quiet") {
		fmt.Fprintf(os.Stderr, "\033[90mDone in %s\033[0m\n", time.Since(start).Round(time.Millisecond))
	}
}

func hasFlag(names ...string) bool {
	for _, arg := range os.Args[1:] {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}
