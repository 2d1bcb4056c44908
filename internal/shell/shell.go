// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell implements the interactive question loop. It reads one
// question per line, answers it through the engine, and prints the answer
// with an enumerated source list. The loop survives per-question errors;
// only a sentinel command or end of input stops it.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/answer-engine/pkg/types"
)

// Answerer is the engine surface the shell drives.
type Answerer interface {
	Answer(ctx context.Context, question string) (types.Answer, error)
}

// exitSentinels are the case-insensitive commands that end the loop.
var exitSentinels = map[string]bool{
	"quit": true,
	"exit": true,
	"q":    true,
	"bye":  true,
}

// Shell reads questions from in and writes everything to out, so tests can
// drive it with buffers.
type Shell struct {
	engine Answerer
	in     io.Reader
	out    io.Writer
}

// New builds a shell over the given engine and streams.
func New(engine Answerer, in io.Reader, out io.Writer) *Shell {
	return &Shell{engine: engine, in: in, out: out}
}

// Run executes the loop until a sentinel or EOF. Engine errors are printed
// as user-facing messages and the loop continues; Run itself returns an
// error only when reading input fails.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Ask a question, or type 'quit' to exit.")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "\nquestion> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			fmt.Fprintln(s.out)
			return nil
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			fmt.Fprintln(s.out, "Please type a question.")
			continue
		}
		if exitSentinels[strings.ToLower(question)] {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}

		ans, err := s.engine.Answer(ctx, question)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\nTry another question.\n", err)
			continue
		}

		printAnswer(s.out, ans)
	}
}

// printAnswer writes the answer text and, when grounding was found, the
// enumerated source list.
func printAnswer(w io.Writer, ans types.Answer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ans.Text)

	if len(ans.Sources) == 0 {
		return
	}

	fmt.Fprintf(w, "\nSources (%d):\n", len(ans.Sources))
	for i, src := range ans.Sources {
		fmt.Fprintf(w, "  %d. %s\n", i+1, src.Title)
		if src.Link != "" {
			fmt.Fprintf(w, "     %s\n", src.Link)
		}
	}
}
