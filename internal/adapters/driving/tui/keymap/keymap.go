// Package keymap defines keybindings for the wizard TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the wizard.
type KeyMap struct {
	// Quit exits without saving beyond the last draft snapshot.
	Quit key.Binding

	// Exit saves the draft and leaves the wizard.
	Exit key.Binding

	// NextStep validates the current step and advances.
	NextStep key.Binding

	// PrevStep moves one step back without validation.
	PrevStep key.Binding

	// NextField moves focus to the next field.
	NextField key.Binding

	// PrevField moves focus to the previous field.
	PrevField key.Binding

	// NextEntry selects the next record in a list section.
	NextEntry key.Binding

	// PrevEntry selects the previous record in a list section.
	PrevEntry key.Binding

	// AddEntry appends a record to the active list section.
	AddEntry key.Binding

	// RemoveEntry removes the selected record.
	RemoveEntry key.Binding

	// Toggle flips a checkbox field.
	Toggle key.Binding

	// Submit runs the submission from the final step.
	Submit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "save & exit"),
		),
		NextStep: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next step"),
		),
		PrevStep: key.NewBinding(
			key.WithKeys("ctrl+p", "pgup"),
			key.WithHelp("ctrl+p", "prev step"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		NextEntry: key.NewBinding(
			key.WithKeys("ctrl+down", "ctrl+j"),
			key.WithHelp("ctrl+↓", "next record"),
		),
		PrevEntry: key.NewBinding(
			key.WithKeys("ctrl+up", "ctrl+k"),
			key.WithHelp("ctrl+↑", "prev record"),
		),
		AddEntry: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add record"),
		),
		RemoveEntry: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "remove record"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
	}
}

// FormHelp returns the keybindings shown under the form.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextStep, k.PrevStep, k.Exit}
}

// ListHelp returns the extra keybindings shown on list sections.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.AddEntry, k.RemoveEntry, k.NextEntry}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
