package sq3

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// commandPrefix starts every dot-command
const commandPrefix = '.'

// outfileNone is how an unset output target is reported
const outfileNone = "none"

// usageError is a malformed dot-command; Usage is the syntax to report
type usageError struct {
	Usage string
}

// Error implements the error interface
func (e *usageError) Error() string {
	return ErrUsage.Error() + ": " + e.Usage
}

// Unwrap returns ErrUsage
func (e *usageError) Unwrap() error {
	return ErrUsage
}

// dispatch runs the dot-command named by words[0]. Short and long forms are
// matched case-sensitively; unknown commands are ignored without output.
func (s *Session) dispatch(ctx context.Context, words []string) (bool, error) {
	var err error
	args := words[1:]

	switch words[0] {
	case ".q", ".quit":
		return true, nil
	case ".h", ".help":
		s.showHelp()
	case ".m", ".mode":
		err = s.setMode(args)
	case ".p", ".page":
		err = s.setPage(args)
	case ".o", ".out":
		s.setOutfile(args)
	case ".l", ".list":
		s.showTables(ctx, args)
	case ".a", ".alias":
		s.setAlias(args)
	case ".e", ".echo":
		s.echo(args)
	case ".s", ".set":
		// reserved
	}

	var ue *usageError
	if errors.As(err, &ue) {
		s.diag.info("Usage: %s", ue.Usage)
		return false, nil
	}
	return false, err
}

// showHelp writes the dot-command reference to the diagnostic stream
func (s *Session) showHelp() {
	s.diag.raw(helpText)
}

// setMode reports or changes the render mode
func (s *Session) setMode(args []string) error {
	if len(args) == 0 {
		s.diag.info("Mode: %s", s.mode)
		return nil
	}

	mode, err := ParseRenderMode(args[0])
	if err != nil {
		return &usageError{Usage: ".mode tabular|tab-delimited"}
	}
	s.mode = mode
	return nil
}

// setPage reports or changes the page size. "-" and "0" disable paging.
func (s *Session) setPage(args []string) error {
	if len(args) == 0 {
		if s.pageSize > 0 {
			s.diag.info("Page: %d lines", s.pageSize)
		} else {
			s.diag.info("Page: disabled")
		}
		return nil
	}

	if args[0] == "-" {
		s.pageSize = 0
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return &usageError{Usage: ".page number-of-rows"}
	}
	s.pageSize = n
	return nil
}

// setOutfile reports, clears or sets the output file target
func (s *Session) setOutfile(args []string) {
	switch {
	case len(args) == 0:
		if s.outFile == "" {
			s.diag.info("Outfile: %s", outfileNone)
		} else {
			s.diag.info("Outfile: %s", s.outFile)
		}
	case args[0] == "-":
		s.outFile = ""
		s.diag.info("Outfile: %s", outfileNone)
	default:
		s.outFile = args[0]
		s.diag.info("Outfile set to %s", s.outFile)
	}
}

// setAlias lists, shows or defines aliases
func (s *Session) setAlias(args []string) {
	switch len(args) {
	case 0:
		for _, alias := range s.aliases.List() {
			s.diag.plain("%s = %s", alias.Name, alias.Template)
		}
	case 1:
		if template, ok := s.aliases.Lookup(args[0]); ok {
			s.diag.plain("%s = %s", args[0], template)
		}
	default:
		s.aliases.Define(args[0], args[1:]...)
	}
}

// echo writes its arguments to standard output
func (s *Session) echo(args []string) {
	_, _ = s.stdout.Write([]byte(strings.Join(args, " ") + "\n"))
}
