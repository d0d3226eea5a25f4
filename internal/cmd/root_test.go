package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "prlint", root.Use)
	assert.True(t, root.SilenceUsage)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "rules")
	assert.Contains(t, names, "history")
	assert.Contains(t, names, "watch")
}

func TestRulesCommandListsRules(t *testing.T) {
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"rules"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "required-sections")
	assert.Contains(t, buf.String(), "rules registered")
}
