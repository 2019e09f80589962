package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Configure GOMAXPROCS for containerized environments.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug().Msgf(format, args...)
	}))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, os.Args, DefaultDeps())
	if err != nil {
		log.Error().Msg(err.Error())
	}
	stop()
	os.Exit(exitCodeFor(err))
}

// run dispatches the subcommand.
func run(ctx context.Context, args []string, deps *Dependencies) error {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ErrNoCommand
	}

	switch args[1] {
	case "clean":
		flags, positional, err := parseCleanFlags(args[2:])
		if err != nil {
			return err
		}
		return runClean(positional, flags, deps)
	case "render":
		flags, positional, err := parseRenderFlags(args[2:])
		if err != nil {
			return err
		}
		return runRender(ctx, positional, flags, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "mdsnap %s\n", Version)
		return nil
	case "help", "-h", "--help":
		runHelp(args[2:], deps)
		return nil
	default:
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[1])
	}
}
