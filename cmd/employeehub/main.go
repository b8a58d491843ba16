package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"employeehub/internal/config"
	applog "employeehub/internal/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var cfg config.Config
	root := &cobra.Command{
		Use:           "employeehub",
		Short:         "Employee management HTTP backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
			applog.SetLevel(cfg.LogLevel)
		},
	}
	serve := newServeCmd(&cfg)
	root.RunE = serve.RunE
	root.AddCommand(serve, newMigrateCmd(&cfg), newTokenCmd(&cfg))
	return root
}
