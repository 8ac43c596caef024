package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/meghashyamc/vmath/cli"
	"github.com/meghashyamc/vmath/config"
	"github.com/meghashyamc/vmath/logger"
)

func main() {
	flags := pflag.NewFlagSet("vmath", pflag.ContinueOnError)
	env := flags.String("env", "", "config environment (reads config/config.<env>.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Float64("epsilon", 0, "tolerance used by mat3 eq")
	flags.String("output", "", "output format: text or json")
	flags.SetInterspersed(false)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vmath [flags] <vec2|mat3> <op> [args...]\n%s\n%s", flags.FlagUsages(), cli.Usage())
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.Load(*env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	if err := cfg.BindFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "failed to bind flags: %s\n", err)
		os.Exit(1)
	}

	log := logger.NewWithLevel(cfg.GetLogLevel())
	if err := cli.Run(cfg, log, flags.Args(), os.Stdout); err != nil {
		slog.Error("error running command", "err", err)
		os.Exit(1)
	}
}
