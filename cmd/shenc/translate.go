package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shencraft/shenc/internal/cache"
	"github.com/shencraft/shenc/internal/inference"
	"github.com/shencraft/shenc/internal/lexer"
	"github.com/shencraft/shenc/internal/parser"
	"github.com/shencraft/shenc/internal/pipeline"
	"github.com/shencraft/shenc/internal/prettyprinter"
)

func newTranslateCommand() *cobra.Command {
	var debugAST bool
	var noCache bool
	var cachePath string

	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Translate a Shen source file (or stdin) to the target language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := requestLogger()

			var source []byte
			var err error
			if len(args) == 1 {
				source, err = os.ReadFile(args[0])
			} else {
				source, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				fatal(entry, "read input: %v", err)
			}
			entry.WithField("bytes", len(source)).Debug("read source")

			if debugAST {
				return runDebugAST(cmd, string(source))
			}

			text := string(source)

			if !noCache {
				if dir := filepath.Dir(cachePath); dir != "." {
					os.MkdirAll(dir, 0o755)
				}
				store, err := cache.Open(cachePath)
				if err == nil {
					defer store.Close()
					key := cache.Key(text)
					if hit, err := store.Lookup(key); err == nil {
						entry.Debug("cache hit")
						fmt.Fprint(cmd.OutOrStdout(), hit)
						return nil
					}
					output, err := pipeline.Translate(text)
					if err != nil {
						fatal(entry, "translate: %v", err)
					}
					if err := store.Store(key, output); err != nil {
						entry.WithError(err).Warn("failed to populate cache")
					}
					fmt.Fprint(cmd.OutOrStdout(), output)
					return nil
				}
				entry.WithError(err).Warn("cache unavailable, translating without it")
			}

			output, err := pipeline.Translate(text)
			if err != nil {
				fatal(entry, "translate: %v", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&debugAST, "debug-ast", false, "print the parsed tree instead of translating")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the translation cache")
	cmd.Flags().StringVar(&cachePath, "cache-path", defaultCachePath(), "path to the cache database")

	return cmd
}

func runDebugAST(cmd *cobra.Command, source string) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	form, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	inferred, err := inference.Infer(form)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), prettyprinter.Print(inferred))
	return nil
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "shenc-cache.sqlite"
	}
	return dir + "/shenc/translations.sqlite"
}
