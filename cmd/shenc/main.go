// Command shenc is the command-line front end for the translator: it reads
// Shen-family source (from a file or stdin), runs it through
// internal/pipeline.Translate, and writes the translated target text.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "shenc",
		Short: "Translate Shen-family source into its Rust-flavored target form",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newTranslateCommand(), newReplCommand(), newCacheCommand())
	return root
}

// requestLogger tags every log line from one invocation with a uuid so
// concurrent runs are distinguishable in aggregated logs. The id never
// touches translated output — only log fields — so it cannot affect
// determinism (spec.md §5).
func requestLogger() *logrus.Entry {
	return log.WithField("request_id", uuid.New().String())
}

func fatal(entry *logrus.Entry, format string, args ...interface{}) {
	entry.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
