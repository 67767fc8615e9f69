// Command foo runs the Foo interpreter: with a script path argument it runs
// that file non-interactively, otherwise it prints a banner and reads from
// standard input.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coccusq/foo"
	"github.com/coccusq/foo/internal/logio"
)

const banner = "Foo, Copyright (C) 2025 CoccusQ.\nInteractive Mode.\nType `bye` to exit"

func main() {
	var (
		trace      bool
		configPath string
		modulePath []string
	)

	root := &cobra.Command{
		Use:           "foo [script]",
		Short:         "Foo interpreter: a stack-oriented, Forth-like language",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, trace, configPath, modulePath)
		},
	}

	root.Flags().BoolVar(&trace, "trace", false, "enable step trace logging")
	root.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.Flags().StringSliceVar(&modulePath, "module-path", nil, "directories searched for # imports")

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Error("foo: fatal")
		os.Exit(1)
	}
}

func run(args []string, trace bool, configPath string, modulePath []string) error {
	cfg, err := foo.LoadConfig(configPath)
	if err != nil {
		return err
	}

	opts := []foo.Option{cfg.Options()}
	if len(modulePath) > 0 {
		opts = append(opts, foo.WithModulePath(modulePath...))
	}

	var traceLog logio.Logger
	if trace {
		traceLog.SetOutput(os.Stderr)
		opts = append(opts, foo.WithTraceLogf(traceLog.Leveledf("TRACE")))
	}

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		opts = append(opts,
			foo.WithInput(args[0], f),
			foo.WithOutput(os.Stdout),
			foo.WithErrorOutput(os.Stderr),
			foo.WithStdin(os.Stdin),
			foo.WithMode(foo.NonInteractive),
		)
	} else {
		os.Stdout.WriteString(banner + "\n")
		opts = append(opts,
			foo.WithInput("<stdin>", os.Stdin),
			foo.WithOutput(os.Stdout),
			foo.WithErrorOutput(os.Stderr),
			foo.WithStdin(os.Stdin),
			foo.WithMode(foo.Interactive),
		)
	}

	in := foo.New(opts...)
	return in.Run()
}
