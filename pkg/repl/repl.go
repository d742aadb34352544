// Package repl implements the interactive prompt loop: read a line, send it
// to the configured provider, print the answer, repeat until /exit.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/promptline/promptline/pkg/provider"
	"github.com/promptline/promptline/pkg/router"
	"github.com/promptline/promptline/pkg/transcript"
)

// exitSentinel terminates the loop. Matching is case-insensitive after
// trimming.
const exitSentinel = "/exit"

// Dispatcher resolves a provider key and sends one prompt.
type Dispatcher interface {
	Do(ctx context.Context, providerKey, model, prompt string) (*router.Result, error)
}

// Option configures a REPL.
type Option func(*REPL)

// WithVerbose enables printing token usage and estimated cost after each
// answer.
func WithVerbose(v bool) Option {
	return func(r *REPL) { r.verbose = v }
}

// REPL reads prompts from an input stream and echoes provider answers to an
// output stream. The provider and model are fixed for the life of the loop.
type REPL struct {
	dispatcher Dispatcher
	provider   string
	model      string
	reader     *bufio.Reader
	writer     io.Writer
	log        *transcript.Log
	verbose    bool
}

// New creates a REPL bound to the given dispatcher, provider selection, and
// I/O streams.
func New(d Dispatcher, providerKey, model string, in io.Reader, out io.Writer, opts ...Option) *REPL {
	r := &REPL{
		dispatcher: d,
		provider:   providerKey,
		model:      model,
		reader:     bufio.NewReader(in),
		writer:     out,
		log:        transcript.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives the loop until the exit sentinel or EOF. A dispatch error is
// printed and the loop continues; only the sentinel (or EOF) terminates it.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintf(r.writer, "promptline interactive mode (provider: %s)\n", router.Resolve(r.provider))
	fmt.Fprintf(r.writer, "Type /help for commands, /exit to quit\n\n")

	for {
		fmt.Fprint(r.writer, "> ")

		line, err := r.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.EqualFold(line, exitSentinel) {
			return nil
		}

		switch strings.ToLower(line) {
		case "/help":
			r.showHelp()
			continue
		case "/history":
			r.showHistory()
			continue
		}

		if err := r.ask(ctx, line); err != nil {
			fmt.Fprintf(r.writer, "Error: %v\n", err)
		}

		fmt.Fprintln(r.writer)
	}
}

func (r *REPL) ask(ctx context.Context, prompt string) error {
	res, err := r.dispatcher.Do(ctx, r.provider, r.model, prompt)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.writer, res.Text)
	if r.verbose {
		cost := provider.EstimateCost(res.Model, res.Usage)
		fmt.Fprintf(r.writer, "[%s/%s: %d in, %d out, ~$%.4f]\n",
			res.Provider, res.Model, res.Usage.InputTokens, res.Usage.OutputTokens, cost)
	}

	r.log.Record(prompt, res.Text, res.Usage)
	return nil
}

func (r *REPL) showHelp() {
	fmt.Fprintln(r.writer, "Commands:")
	fmt.Fprintln(r.writer, "  /help       - Show this help")
	fmt.Fprintln(r.writer, "  /history    - Show this session's exchanges")
	fmt.Fprintln(r.writer, "  /exit       - Quit")
	fmt.Fprintln(r.writer, "Anything else is sent to the provider as a prompt.")
}

func (r *REPL) showHistory() {
	exchanges := r.log.Exchanges()
	if len(exchanges) == 0 {
		fmt.Fprintln(r.writer, "No history")
		return
	}

	for i, ex := range exchanges {
		fmt.Fprintf(r.writer, "%3d  %s\n", i+1, ex.Prompt)
	}

	u := r.log.TotalUsage()
	fmt.Fprintf(r.writer, "Session usage: %d in, %d out\n", u.InputTokens, u.OutputTokens)
}
