package main

import (
	"github.com/spf13/cobra"

	"github.com/shencraft/shenc/internal/replterm"
)

var version = "dev"

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive translate session",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := requestLogger()
			entry.Debug("starting repl")
			session := replterm.New(version, "shen> ")
			return session.Start(cmd.OutOrStdout())
		},
	}
}
