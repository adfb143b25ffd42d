package sq3

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/nao1215/sq3/engine"
)

// Session defaults
const (
	// DefaultPrompt is the prompt shown before every input line
	DefaultPrompt = "SQL> "
	// DefaultHistoryLength is the default number of history lines kept
	DefaultHistoryLength = 1000
	// memoryDatabase is SQLite's name for a private in-memory database
	memoryDatabase = ":memory:"
)

// Builder configures and opens a shell session on one database file.
// Use NewBuilder to create a new instance, then chain method calls to configure it.
//
// The typical usage pattern is:
//
//	builder, err := sq3.NewBuilder("data.db").WithInput(reader).Build(ctx)
//	if err != nil {
//		return err
//	}
//	session, err := builder.Open(ctx)
//	if err != nil {
//		return err
//	}
//	defer session.Close()
//	return session.Run(ctx)
type Builder struct {
	// dbPath is the database file to open
	dbPath string
	// stdout receives query results and .echo output
	stdout io.Writer
	// stderr receives diagnostics, help and pager prompts
	stderr io.Writer
	// input supplies operator lines; nil disables the pager
	input LineReader
	// colorize enables coloured failure diagnostics
	colorize bool
	// historyLength is stored in the session settings as "histlen"
	historyLength int
	// prompt is shown before every input line
	prompt string
	// exists records whether the database file existed at Build time
	exists bool
	// built is set by a successful Build
	built bool
}

// NewBuilder creates a builder for the database file at dbPath. The file
// is created empty when it does not exist.
func NewBuilder(dbPath string) *Builder {
	return &Builder{
		dbPath:        dbPath,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		historyLength: DefaultHistoryLength,
		prompt:        DefaultPrompt,
	}
}

// WithStdout sets the writer that receives query results.
func (b *Builder) WithStdout(w io.Writer) *Builder {
	b.stdout = w
	return b
}

// WithStderr sets the writer that receives diagnostics.
func (b *Builder) WithStderr(w io.Writer) *Builder {
	b.stderr = w
	return b
}

// WithInput sets the line reader used by Run and by the pager.
func (b *Builder) WithInput(input LineReader) *Builder {
	b.input = input
	return b
}

// WithColor enables or disables coloured failure diagnostics.
func (b *Builder) WithColor(enabled bool) *Builder {
	b.colorize = enabled
	return b
}

// WithHistoryLength sets the "histlen" setting.
func (b *Builder) WithHistoryLength(n int) *Builder {
	b.historyLength = n
	return b
}

// WithPrompt sets the input prompt.
func (b *Builder) WithPrompt(prompt string) *Builder {
	b.prompt = prompt
	return b
}

// Build validates the configuration. It must be called before Open.
func (b *Builder) Build(ctx context.Context) (*Builder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := newValidator()
	exists, err := v.validateDatabasePath(b.dbPath)
	if err != nil {
		return nil, err
	}
	if err := v.validateHistoryLength(b.historyLength); err != nil {
		return nil, err
	}
	if b.stdout == nil {
		b.stdout = io.Discard
	}
	if b.stderr == nil {
		b.stderr = io.Discard
	}

	b.exists = exists
	b.built = true
	return b, nil
}

// Created reports whether Open will create (or created) a new database file.
func (b *Builder) Created() bool {
	return !b.exists
}

// Open opens the database and returns a session ready to run.
// "Creating empty database <path>" is reported when the file did not exist.
func (b *Builder) Open(ctx context.Context) (*Session, error) {
	if !b.built {
		return nil, errors.New("sq3: Build must be called before Open")
	}

	diag := newReporter(b.stderr, b.colorize)
	if b.Created() {
		diag.info("Creating empty database %s", b.dbPath)
	}

	db, err := engine.Open(ctx, b.dbPath)
	if err != nil {
		return nil, err
	}

	return newSession(db, sessionConfig{
		stdout:        b.stdout,
		diag:          diag,
		input:         b.input,
		prompt:        b.prompt,
		historyLength: b.historyLength,
	}), nil
}
