package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group ls output by pending/done")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colors")
	configPath := flag.String("config", "", "path to a yaml, toml or .env config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *noColor {
		cfg.NoColor = true
	}

	log, err := app.NewLogger(cfg)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.DisableColor()
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group: *groupPending,
		Title: cfg.Title,
		Log:   log,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
