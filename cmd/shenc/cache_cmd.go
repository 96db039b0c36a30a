package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shencraft/shenc/internal/cache"
)

func newCacheCommand() *cobra.Command {
	var cachePath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the translation cache",
	}
	cmd.PersistentFlags().StringVar(&cachePath, "cache-path", defaultCachePath(), "path to the cache database")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the number of cached translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cache.Open(cachePath)
			if err != nil {
				return err
			}
			defer store.Close()
			stats, err := store.Stats()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cached translations\n", stats.Entries)
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached translation",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cache.Open(cachePath)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Clear()
		},
	}

	cmd.AddCommand(statsCmd, clearCmd)
	return cmd
}
