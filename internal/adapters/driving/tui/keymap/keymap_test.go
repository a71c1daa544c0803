package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
}

func TestDefaultKeyMap_ExitBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Exit.Keys(), "esc")
}

func TestDefaultKeyMap_StepBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.NextStep.Keys(), "ctrl+n")
	assert.Contains(t, km.PrevStep.Keys(), "ctrl+p")
}

func TestDefaultKeyMap_FieldBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.NextField.Keys(), "tab")
	assert.Contains(t, km.PrevField.Keys(), "shift+tab")
}

func TestDefaultKeyMap_ListBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.AddEntry.Keys(), "ctrl+a")
	assert.Contains(t, km.RemoveEntry.Keys(), "ctrl+d")
	assert.Contains(t, km.NextEntry.Keys(), "ctrl+down")
	assert.Contains(t, km.PrevEntry.Keys(), "ctrl+up")
}

func TestDefaultKeyMap_SubmitBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Submit.Keys(), "ctrl+s")
}

func TestFormHelp_IncludesNavigation(t *testing.T) {
	km := DefaultKeyMap()

	help := km.FormHelp()
	require.NotEmpty(t, help)
	assert.Contains(t, help, km.NextField)
	assert.Contains(t, help, km.Exit)
}

func TestListHelp_IncludesRecordOps(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ListHelp()
	assert.Contains(t, help, km.AddEntry)
	assert.Contains(t, help, km.RemoveEntry)
}

func TestMatches(t *testing.T) {
	binding := key.NewBinding(key.WithKeys("ctrl+n", "pgdown"))

	assert.True(t, Matches("ctrl+n", binding))
	assert.True(t, Matches("pgdown", binding))
	assert.False(t, Matches("ctrl+x", binding))
}
