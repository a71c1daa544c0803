package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/storage/memory"
	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/services"
)

type stubSubmitter struct {
	id    string
	err   error
	calls int
}

func (s *stubSubmitter) Submit(_ context.Context, _ *domain.CompanyProfile, _ domain.WizardMode) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func newTestApp(t *testing.T) (*App, *stubSubmitter) {
	t.Helper()
	sub := &stubSubmitter{id: "company-1"}
	wizard := services.NewCreateWizard(memory.NewDraftStore(), sub)
	app := NewApp(wizard)
	app.SetDimensions(120, 40)
	return app, sub
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(app *App, text string) {
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewApp_StartsOnIdentity(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, domain.StepIdentity, app.Step())
	assert.Equal(t, "Identity", app.ActiveGroup())
	assert.Len(t, app.inputs, len(identityGroup.fields))
}

func TestApp_TypingUpdatesProfile(t *testing.T) {
	app, _ := newTestApp(t)

	typeText(app, "Acme")

	assert.Equal(t, "Acme", app.wizard.Profile().Name)
}

func TestApp_TabMovesFocus(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(keyMsg("tab"))
	typeText(app, "Tech")

	assert.Equal(t, 1, app.fieldIdx)
	assert.Equal(t, "Tech", app.wizard.Profile().Sector)
}

func TestApp_NextStepBlockedByValidation(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(keyMsg("ctrl+n"))

	assert.Equal(t, domain.StepIdentity, app.Step())
	assert.Contains(t, app.wizard.FieldErrors(), "name")
}

func TestApp_NextStepAdvancesWhenValid(t *testing.T) {
	app, _ := newTestApp(t)

	typeText(app, "Acme Corp")
	app.Update(keyMsg("tab"))
	typeText(app, "Technology")
	app.Update(keyMsg("ctrl+n"))

	assert.Equal(t, domain.StepAddresses, app.Step())
	assert.Equal(t, "Addresses", app.ActiveGroup())
}

func TestApp_PrevStepClampsAtFirst(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(keyMsg("ctrl+p"))

	assert.Equal(t, domain.StepIdentity, app.Step())
}

func TestApp_FieldWrapsIntoNextGroup(t *testing.T) {
	app, _ := newTestApp(t)
	toAddresses(t, app)

	for range addressesGroup.fields {
		app.Update(keyMsg("tab"))
	}

	assert.Equal(t, "Contacts", app.ActiveGroup())
	assert.Equal(t, 0, app.fieldIdx)
}

func TestApp_AddAndRemoveEntry(t *testing.T) {
	app, _ := newTestApp(t)
	toAddresses(t, app)

	app.Update(keyMsg("ctrl+a"))
	assert.Len(t, app.wizard.Profile().Addresses, 2)
	assert.Equal(t, 1, app.entrySel[domain.SectionAddresses])

	app.Update(keyMsg("ctrl+d"))
	assert.Len(t, app.wizard.Profile().Addresses, 1)
	assert.Equal(t, 0, app.entrySel[domain.SectionAddresses])
}

func TestApp_RemoveKeepsLastEntry(t *testing.T) {
	app, _ := newTestApp(t)
	toAddresses(t, app)

	app.Update(keyMsg("ctrl+d"))

	assert.Len(t, app.wizard.Profile().Addresses, 1)
}

func TestApp_EntryEditsLandOnSelectedRecord(t *testing.T) {
	app, _ := newTestApp(t)
	toAddresses(t, app)

	app.Update(keyMsg("ctrl+a"))
	typeText(app, "HQ")

	addresses := app.wizard.Profile().Addresses
	require.Len(t, addresses, 2)
	assert.Empty(t, addresses[0].Type)
	assert.Equal(t, "HQ", addresses[1].Type)
}

func TestApp_ToggleCheckbox(t *testing.T) {
	app, _ := newTestApp(t)
	toAddresses(t, app)

	// Focus the is_primary checkbox.
	app.fieldIdx = len(addressesGroup.fields) - 1
	app.focusField()
	app.toggleField()

	assert.True(t, app.wizard.Profile().Addresses[0].IsPrimary)

	app.toggleField()
	assert.False(t, app.wizard.Profile().Addresses[0].IsPrimary)
}

func TestApp_InvestorsFollowSelectedRound(t *testing.T) {
	app, _ := newTestApp(t)
	toStep(t, app, domain.StepFunding)

	assert.Equal(t, "Funding rounds", app.ActiveGroup())

	// Wrap focus into the investors group and add one.
	for range fundingGroup.fields {
		app.Update(keyMsg("tab"))
	}
	require.Equal(t, "Investors", app.ActiveGroup())

	// The seeded round starts with no investors.
	app.Update(keyMsg("ctrl+a"))
	typeText(app, "Sequoia")

	round := app.wizard.Profile().FundingRounds[0]
	require.Len(t, round.Investors, 1)
	assert.Equal(t, "Sequoia", round.Investors[0].Name)
}

func TestApp_SubmitOnlyFromFinalStep(t *testing.T) {
	app, sub := newTestApp(t)

	typeText(app, "Acme Corp")
	app.Update(keyMsg("tab"))
	typeText(app, "Technology")

	_, cmd := app.Update(keyMsg("ctrl+s"))

	assert.Nil(t, cmd)
	assert.Zero(t, sub.calls)
	assert.NotEmpty(t, app.notice)
}

func TestApp_SubmitSucceedsAndQuits(t *testing.T) {
	app, sub := newTestApp(t)
	toStep(t, app, domain.StepNews)

	_, cmd := app.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)

	msg := cmd()
	_, quit := app.Update(msg)

	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, domain.PhaseSucceeded, app.wizard.Phase())
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestApp_SubmitFailureStaysInWizard(t *testing.T) {
	app, sub := newTestApp(t)
	sub.err = assert.AnError
	toStep(t, app, domain.StepNews)

	_, cmd := app.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)

	_, quit := app.Update(cmd())

	assert.Nil(t, quit)
	assert.Equal(t, domain.PhaseFailed, app.wizard.Phase())
	assert.Contains(t, app.View(), "Submission failed")
}

func TestApp_ViewShowsStepAndRatios(t *testing.T) {
	app, _ := newTestApp(t)
	toStep(t, app, domain.StepFinancials)

	typeText(app, "2024")

	view := app.View()
	assert.Contains(t, view, "Financials")
	assert.Contains(t, view, "Derived ratios")
	assert.Contains(t, view, "Profit margin")
}

func TestApp_ViewShowsValidationError(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(keyMsg("ctrl+n"))

	assert.Contains(t, app.View(), "Company name is required")
}

// toAddresses moves a fresh app to the addresses step.
func toAddresses(t *testing.T, app *App) {
	t.Helper()
	toStep(t, app, domain.StepAddresses)
}

// toStep fills the identity step and advances to the target step.
func toStep(t *testing.T, app *App, target domain.WizardStep) {
	t.Helper()
	typeText(app, "Acme Corp")
	app.Update(keyMsg("tab"))
	typeText(app, "Technology")
	for app.Step() < target {
		app.Update(keyMsg("ctrl+n"))
	}
	require.Equal(t, target, app.Step())
}
