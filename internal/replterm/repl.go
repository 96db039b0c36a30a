// Package replterm implements an interactive read-translate-print loop
// over the pipeline, in the teacher pack's REPL idiom: readline for line
// editing and history, fatih/color for feedback coloring.
package replterm

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/shencraft/shenc/internal/pipeline"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a single interactive session: one form in, one translated form
// out, until the user exits.
type Repl struct {
	Version string
	Prompt  string
}

// New returns a Repl ready to Start.
func New(version, prompt string) *Repl {
	return &Repl{Version: version, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	line := strings.Repeat("-", 48)
	blueColor.Fprintf(writer, "%s\n", line)
	greenColor.Fprintln(writer, "shenc interactive translator")
	blueColor.Fprintf(writer, "%s\n", line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	cyanColor.Fprintln(writer, "Type a Shen form and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", line)
}

// Start runs the loop until the user exits or the input stream closes.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}
		rl.SaveHistory(line)
		r.evalOne(writer, line)
	}
}

func (r *Repl) evalOne(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", recovered)
		}
	}()

	output, err := pipeline.Translate(line)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s", output)
}
