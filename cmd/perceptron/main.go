// Package main provides the perceptron CLI: train, predict and inspect
// multilayer perceptrons.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

const version = "v0.1.0"

const usage = `perceptron - multilayer perceptron trainer

Usage:
  perceptron <command> [flags]

Commands:
  version    Show version
  train      Train a network from a YAML config (default: the XOR demo)
  predict    Run a saved model on one input vector
  inspect    Print a saved model's header and weights

Run "perceptron <command> -h" for command flags.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer, logger *log.Logger) error {
	if len(args) == 0 {
		_, err := io.WriteString(out, usage)
		return err
	}

	switch args[0] {
	case "version":
		_, err := fmt.Fprintf(out, "perceptron %s\n", version)
		return err
	case "train":
		return runTrain(ctx, args[1:], out, logger)
	case "predict":
		return runPredict(args[1:], out)
	case "inspect":
		return runInspect(args[1:], out)
	case "help", "-h", "--help":
		_, err := io.WriteString(out, usage)
		return err
	default:
		return errors.Errorf("unknown command %q", args[0])
	}
}
