package main

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"termlife/src/cli"
	"termlife/src/universe"
	"termlife/src/view"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

//run is the whole program, the cursor is shown again on every return path
func run(args []string, stdout io.Writer) int {
	restore := view.HideCursor(stdout)
	defer restore()

	eo, uo, err := cli.Parse(args)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return 0
		}
		cli.PrintUsage(stdout, err, isTerminal(stdout))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := universe.NewUniverse(uo)
	ctl := universe.NewController(u, rand.New(rand.NewSource(eo.Seed)))

	if eo.Interactive {
		err = runInteractive(ctx, ctl, *uo, eo.Colors)
	} else {
		ctl.RegisterViewer(view.NewConsoleOut(stdout, eo.Colors))
		err = ctl.Run(ctx)
	}
	if err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

//runInteractive runs the gocui viewer and the controller side by side
//whichever stops first stops the other one
func runInteractive(ctx context.Context, ctl *universe.Controller, o universe.Options, colors bool) error {
	ui, err := view.NewViewTerminal(ctl, o, colors)
	if err != nil {
		return err
	}
	ctl.RegisterViewer(ui)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return ui.Start()
	})
	g.Go(func() error {
		defer ui.Quit()
		return ctl.Run(ctx)
	})
	return g.Wait()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
