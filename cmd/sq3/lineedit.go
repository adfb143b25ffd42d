package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/nao1215/sq3"
)

// dotCommands are offered by tab completion at the start of a line
var dotCommands = []string{
	".help", ".list", ".list -full", ".page", ".out", ".mode tabular", ".mode tab-delimited",
	".alias", ".echo", ".set", ".quit",
}

// newReadline creates the readline instance; tests replace it
var newReadline = readline.NewEx

// lineEditor reads operator input through readline. Only lines entered at
// the main prompt are kept in the history; pager answers are not.
// The main prompt is echoed on stdout. Any other prompt, such as the
// pager's, is echoed on the diagnostic stream so that it never mixes with
// result rows. The editor is opened after the session exists, so that the
// history bound comes from the session's "histlen" setting.
type lineEditor struct {
	rl     *readline.Instance
	prompt string
	main   *readline.Config
	aside  *readline.Config
}

// newLineEditor creates an editor for prompt; open must be called before ReadLine
func newLineEditor(prompt string) *lineEditor {
	return &lineEditor{prompt: prompt}
}

// open starts readline, keeping up to historyLength lines in historyFile.
// A length of zero keeps no history.
func (e *lineEditor) open(historyFile string, historyLength int, stderr io.Writer) error {
	items := make([]readline.PrefixCompleterInterface, 0, len(dotCommands))
	for _, cmd := range dotCommands {
		items = append(items, readline.PcItem(cmd))
	}

	limit := historyLength
	if limit == 0 {
		limit = -1 // readline treats 0 as its own default
	}

	cfg := &readline.Config{
		Prompt:                 e.prompt,
		HistoryFile:            historyFile,
		HistoryLimit:           limit,
		DisableAutoSaveHistory: true,
		AutoComplete:           readline.NewPrefixCompleter(items...),
		InterruptPrompt:        "^C",
		Stderr:                 stderr,
	}
	rl, err := newReadline(cfg)
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}

	// The copy shares the initialised input and history of cfg.
	aside := *cfg
	aside.Stdout = stderr

	e.rl = rl
	e.main = cfg
	e.aside = &aside
	return nil
}

// configFor returns the readline configuration used to show prompt
func (e *lineEditor) configFor(prompt string) *readline.Config {
	if prompt == e.prompt {
		return e.main
	}
	return e.aside
}

// ReadLine shows prompt and reads one line.
// Ctrl-C yields sq3.ErrInterrupted and Ctrl-D io.EOF.
func (e *lineEditor) ReadLine(prompt string) (string, error) {
	e.rl.SetConfig(e.configFor(prompt))
	e.rl.SetPrompt(prompt)
	line, err := e.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", sq3.ErrInterrupted
		}
		return "", err
	}

	if prompt == e.prompt && line != "" {
		_ = e.rl.SaveHistory(line) // Ignore history write errors
	}
	return line, nil
}

// Close restores the terminal and closes the history file.
func (e *lineEditor) Close() error {
	if e.rl == nil {
		return nil
	}
	return e.rl.Close()
}
