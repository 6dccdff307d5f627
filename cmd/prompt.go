package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

const selectionPrompt = "Enter the number of your choice: "

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// promptReader opens the terminal on the first selection only, so games in which
// the human never moves do not touch stdin.
type promptReader struct {
	config *readline.Config
	rl     *readline.Instance
}

func newPromptReader(historyFile string, in io.Reader, out io.Writer) *promptReader {
	return &promptReader{
		config: &readline.Config{
			Prompt:              selectionPrompt,
			HistoryFile:         historyFile,
			Stdin:               io.NopCloser(in),
			Stdout:              out,
			FuncFilterInputRune: filterInput,
		},
	}
}

func (p *promptReader) Readline() (string, error) {
	if p.rl == nil {
		if p.config.HistoryFile != "" {
			if err := os.MkdirAll(filepath.Dir(p.config.HistoryFile), 0755); err != nil {
				log.Warn().Err(err).Msg("selection history disabled")
				p.config.HistoryFile = ""
			}
		}
		rl, err := readline.NewEx(p.config)
		if err != nil {
			return "", fmt.Errorf("opening prompt: %w", err)
		}
		p.rl = rl
	}

	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", fmt.Errorf("selection interrupted: %w", err)
	}
	return line, err
}

func (p *promptReader) Close() error {
	if p.rl == nil {
		return nil
	}
	return p.rl.Close()
}
