package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/revelaction/newsmunger/config"
	"github.com/revelaction/newsmunger/logger"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer

	// Progress enables the progress bars
	Progress bool
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr, Progress: true}
	logger.SetupLogging()

	opts, cmd, args, err := parseMainArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runCommand(ctx, opts, cmd, args, ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		stop()
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "newsmunger: %v\n", err)
}

func runCommand(ctx context.Context, mainOpts MainOptions, cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(ctx, mainOpts, args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("newsmunger", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "version":
		return versionCommand(ui)

	case "import-doc":
		opts, err := parseImportDocArgs(args, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return importDocCommand(opts, ui)

	case "export-doc":
		opts, err := parseExportDocArgs(args, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return exportDocCommand(opts, ui)
	}

	cfg, err := config.Load(mainOpts.ConfigPath)
	if err != nil {
		return err
	}

	switch cmd {
	case "corpse":
		opts, err := parseCorpseArgs(args, cfg, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return corpseCommand(ctx, opts, cfg, ui)

	case "munge":
		opts, err := parseMungeArgs(args, cfg, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return mungeCommand(ctx, opts, cfg, ui)

	case "query":
		opts, err := parseQueryArgs(args, cfg, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return queryCommand(ctx, opts, cfg, ui)

	case "doc":
		opts, docId, err := parseDocArgs(args, cfg, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return docCommand(opts, docId, ui)

	case "sentence":
		opts, docId, sentId, err := parseSentenceArgs(args, cfg, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return sentenceCommand(opts, docId, sentId, ui)

	case "stat":
		opts, docId, err := parseStatArgs(args, cfg, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return statCommand(opts, docId, ui)

	case "corpses":
		opts, err := parseCorpsesArgs(args, cfg, ui)
		if err != nil {
			return ignoreHelp(err)
		}
		return corpsesCommand(ctx, opts, ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

func ignoreHelp(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
