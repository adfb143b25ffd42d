package main

import (
	"bytes"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/sq3"
)

// TestLineEditorPromptStreams is not parallel because it replaces newReadline.
func TestLineEditorPromptStreams(t *testing.T) {
	original := newReadline
	newReadline = func(_ *readline.Config) (*readline.Instance, error) {
		return nil, nil
	}
	t.Cleanup(func() { newReadline = original })

	var stderr bytes.Buffer
	editor := newLineEditor(sq3.DefaultPrompt)
	require.NoError(t, editor.open("/tmp/hist", 10, &stderr))

	prompt := editor.configFor(sq3.DefaultPrompt)
	assert.Same(t, editor.main, prompt)
	assert.Nil(t, prompt.Stdout, "the main prompt keeps readline's stdout")

	pager := editor.configFor("=== Row: 3 ('enter' for next page, 'q' to quit, 'e' to disable paging) === ")
	assert.Same(t, editor.aside, pager)
	assert.Same(t, &stderr, pager.Stdout)
	assert.Equal(t, prompt.HistoryFile, pager.HistoryFile)
	assert.Equal(t, 10, pager.HistoryLimit)
}

func TestLineEditorCloseBeforeOpen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, newLineEditor(sq3.DefaultPrompt).Close())
}
