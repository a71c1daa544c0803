// Package tui implements the interactive profile wizard with Bubbletea,
// following the Elm architecture. The model owns no form state of its
// own: every edit is pushed through the wizard service, which snapshots
// a draft after each change.
package tui

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atlas-intel/atlas-cli/internal/adapters/driving/tui/keymap"
	"github.com/atlas-intel/atlas-cli/internal/adapters/driving/tui/styles"
	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driving"
)

// App is the wizard TUI. It implements tea.Model.
type App struct {
	wizard driving.WizardService
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	// Form layout for the current step.
	groups   []group
	groupIdx int
	fieldIdx int

	// Selected record per list section, plus the funding-round cursor
	// that scopes the investors group.
	entrySel map[domain.Section]int
	round    int
	invEntry int

	// One input per field of the active group. Checkbox fields keep a
	// placeholder input that is never typed into.
	inputs []textinput.Model

	err    error
	notice string

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// submitFinished reports the outcome of a submission command.
type submitFinished struct {
	err error
}

// NewApp creates the wizard TUI over the given session.
func NewApp(wizard driving.WizardService) *App {
	a := &App{
		wizard:   wizard,
		ctx:      context.Background(),
		styles:   styles.DefaultStyles(),
		keys:     keymap.DefaultKeyMap(),
		entrySel: make(map[domain.Section]int),
	}
	a.reloadStep()
	return a
}

// WithContext sets the context used for wizard operations.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("atlas - Company Profile"),
		textinput.Blink,
	)
}

// reloadStep rebuilds the form layout after a step change.
func (a *App) reloadStep() {
	a.groups = stepGroups(a.wizard.Step())
	a.groupIdx = 0
	a.fieldIdx = 0
	a.rebuildInputs()
}

// activeGroup returns the group under the cursor.
func (a *App) activeGroup() group {
	if a.groupIdx < 0 || a.groupIdx >= len(a.groups) {
		return group{}
	}
	return a.groups[a.groupIdx]
}

// entryIndex returns the selected record index for a group.
func (a *App) entryIndex(g group) int {
	switch {
	case g.scalar():
		return 0
	case g.investors:
		return a.invEntry
	default:
		return a.entrySel[g.section]
	}
}

// entryCount returns the record count backing a group.
func (a *App) entryCount(g group) int {
	p := a.wizard.Profile()
	switch {
	case g.scalar():
		return 1
	case g.investors:
		return len(roundAt(p, a.round).Investors)
	case g.section == domain.SectionAddresses:
		return len(p.Addresses)
	case g.section == domain.SectionContacts:
		return len(p.Contacts)
	case g.section == domain.SectionOfficials:
		return len(p.Officials)
	case g.section == domain.SectionFinancials:
		return len(p.Financials)
	case g.section == domain.SectionFunding:
		return len(p.FundingRounds)
	case g.section == domain.SectionInvestments:
		return len(p.Investments)
	case g.section == domain.SectionFilings:
		return len(p.Filings)
	case g.section == domain.SectionLegal:
		return len(p.LegalCases)
	case g.section == domain.SectionNews:
		return len(p.News)
	case g.section == domain.SectionRelationships:
		return len(p.Relationships)
	default:
		return 0
	}
}

// rebuildInputs recreates the text inputs for the active group, seeded
// from the wizard's form state.
func (a *App) rebuildInputs() {
	g := a.activeGroup()
	idx := a.entryIndex(g)
	p := a.wizard.Profile()

	a.inputs = make([]textinput.Model, len(g.fields))
	for i, f := range g.fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 512
		ti.Width = 44
		if f.kind != kindCheckbox && f.get != nil {
			ti.SetValue(f.get(p, a.round, idx))
		}
		a.inputs[i] = ti
	}
	if a.fieldIdx >= len(a.inputs) {
		a.fieldIdx = 0
	}
	a.focusField()
}

func (a *App) focusField() {
	for i := range a.inputs {
		if i == a.fieldIdx && a.activeGroup().fields[i].kind != kindCheckbox {
			a.inputs[i].Focus()
		} else {
			a.inputs[i].Blur()
		}
	}
}

// commitField pushes the focused input's value into the wizard. Bool
// fields commit on toggle instead.
func (a *App) commitField() {
	g := a.activeGroup()
	if a.fieldIdx < 0 || a.fieldIdx >= len(g.fields) {
		return
	}
	f := g.fields[a.fieldIdx]
	if f.kind == kindCheckbox {
		return
	}

	idx := a.entryIndex(g)
	value := a.inputs[a.fieldIdx].Value()
	if f.get != nil && f.get(a.wizard.Profile(), a.round, idx) == value {
		return
	}

	var payload any = value
	if f.kind == kindFile {
		if strings.TrimSpace(value) == "" {
			return
		}
		payload = assetFileFor(value)
	}

	var err error
	switch {
	case g.scalar():
		err = a.wizard.UpdateField(a.ctx, f.name, payload)
	case g.investors:
		err = a.wizard.UpdateInvestorField(a.ctx, a.round, idx, f.name, payload)
	default:
		err = a.wizard.UpdateEntryField(a.ctx, g.section, idx, f.name, payload)
	}
	a.err = err
}

// assetFileFor builds the upload reference for a local file path.
func assetFileFor(path string) *domain.AssetFile {
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &domain.AssetFile{
		Name:        filepath.Base(path),
		Path:        path,
		ContentType: contentType,
	}
}

// toggleField flips the focused checkbox field.
func (a *App) toggleField() {
	g := a.activeGroup()
	if a.fieldIdx < 0 || a.fieldIdx >= len(g.fields) {
		return
	}
	f := g.fields[a.fieldIdx]
	if f.kind != kindCheckbox || f.getBool == nil {
		return
	}

	idx := a.entryIndex(g)
	next := !f.getBool(a.wizard.Profile(), a.round, idx)

	var err error
	switch {
	case g.investors:
		err = a.wizard.UpdateInvestorField(a.ctx, a.round, idx, f.name, next)
	default:
		err = a.wizard.UpdateEntryField(a.ctx, g.section, idx, f.name, next)
	}
	a.err = err
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case submitFinished:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if a.wizard.Phase() == domain.PhaseSucceeded {
			return a, tea.Quit
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

//nolint:gocyclo // central key handler for wizard navigation
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.wizard.Phase() == domain.PhaseSubmitting {
		// No edits while the write sequence is in flight.
		if keymap.Matches(msg.String(), a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	k := msg.String()
	switch {
	case keymap.Matches(k, a.keys.Quit):
		return a, tea.Quit

	case keymap.Matches(k, a.keys.Exit):
		a.commitField()
		return a, tea.Quit

	case keymap.Matches(k, a.keys.NextStep):
		a.commitField()
		a.err = a.wizard.Next(a.ctx)
		a.reloadStep()
		return a, nil

	case keymap.Matches(k, a.keys.PrevStep):
		a.commitField()
		a.err = a.wizard.Previous(a.ctx)
		a.reloadStep()
		return a, nil

	case keymap.Matches(k, a.keys.NextField):
		a.moveField(1)
		return a, nil

	case keymap.Matches(k, a.keys.PrevField):
		a.moveField(-1)
		return a, nil

	case keymap.Matches(k, a.keys.NextEntry):
		a.moveEntry(1)
		return a, nil

	case keymap.Matches(k, a.keys.PrevEntry):
		a.moveEntry(-1)
		return a, nil

	case keymap.Matches(k, a.keys.AddEntry):
		return a, a.addEntry()

	case keymap.Matches(k, a.keys.RemoveEntry):
		return a, a.removeEntry()

	case keymap.Matches(k, a.keys.Submit):
		if a.wizard.Step() != domain.StepLast {
			a.notice = "Submission is available from the final step."
			return a, nil
		}
		a.commitField()
		return a, a.submit()

	case keymap.Matches(k, a.keys.Toggle) && a.focusedIsCheckbox():
		a.toggleField()
		return a, nil
	}

	// Everything else types into the focused input.
	g := a.activeGroup()
	if a.fieldIdx >= 0 && a.fieldIdx < len(a.inputs) && g.fields[a.fieldIdx].kind != kindCheckbox {
		var cmd tea.Cmd
		a.inputs[a.fieldIdx], cmd = a.inputs[a.fieldIdx].Update(msg)
		a.commitField()
		return a, cmd
	}
	return a, nil
}

func (a *App) focusedIsCheckbox() bool {
	g := a.activeGroup()
	return a.fieldIdx >= 0 && a.fieldIdx < len(g.fields) && g.fields[a.fieldIdx].kind == kindCheckbox
}

// moveField advances focus, wrapping across the step's groups.
func (a *App) moveField(delta int) {
	a.commitField()
	a.fieldIdx += delta
	switch {
	case a.fieldIdx >= len(a.activeGroup().fields):
		a.groupIdx = (a.groupIdx + 1) % len(a.groups)
		a.fieldIdx = 0
		a.rebuildInputs()
	case a.fieldIdx < 0:
		a.groupIdx = (a.groupIdx - 1 + len(a.groups)) % len(a.groups)
		a.fieldIdx = len(a.activeGroup().fields) - 1
		a.rebuildInputs()
	default:
		a.focusField()
	}
}

// moveEntry selects the next or previous record of the active list.
func (a *App) moveEntry(delta int) {
	g := a.activeGroup()
	if g.scalar() {
		return
	}
	a.commitField()

	count := a.entryCount(g)
	next := a.entryIndex(g) + delta
	if next < 0 || next >= count {
		return
	}

	switch {
	case g.investors:
		a.invEntry = next
	case g.section == domain.SectionFunding:
		a.entrySel[g.section] = next
		a.round = next
		a.invEntry = 0
	default:
		a.entrySel[g.section] = next
	}
	a.rebuildInputs()
}

func (a *App) addEntry() tea.Cmd {
	g := a.activeGroup()
	if g.scalar() {
		return nil
	}
	a.commitField()

	var err error
	if g.investors {
		err = a.wizard.AppendInvestor(a.ctx, a.round)
		a.invEntry = a.entryCount(g) - 1
	} else {
		err = a.wizard.AppendEntry(a.ctx, g.section)
		a.entrySel[g.section] = a.entryCount(g) - 1
		if g.section == domain.SectionFunding {
			a.round = a.entrySel[g.section]
			a.invEntry = 0
		}
	}
	a.err = err
	a.rebuildInputs()
	return nil
}

func (a *App) removeEntry() tea.Cmd {
	g := a.activeGroup()
	if g.scalar() {
		return nil
	}
	// List sections keep their seeded record; investor lists may empty.
	if count := a.entryCount(g); count == 0 || (!g.investors && count <= 1) {
		return nil
	}

	idx := a.entryIndex(g)
	var err error
	if g.investors {
		err = a.wizard.RemoveInvestor(a.ctx, a.round, idx)
		if a.invEntry > 0 {
			a.invEntry--
		}
	} else {
		err = a.wizard.RemoveEntry(a.ctx, g.section, idx)
		if a.entrySel[g.section] > 0 {
			a.entrySel[g.section]--
		}
		if g.section == domain.SectionFunding {
			a.round = a.entrySel[g.section]
			a.invEntry = 0
		}
	}
	a.err = err
	a.rebuildInputs()
	return nil
}

// submit runs the write sequence off the Update loop.
func (a *App) submit() tea.Cmd {
	return func() tea.Msg {
		return submitFinished{err: a.wizard.Submit(a.ctx)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	a.renderHeader(&b)

	switch a.wizard.Phase() {
	case domain.PhaseSubmitting:
		b.WriteString(a.styles.Warning.Render("Submitting profile..."))
		b.WriteString("\n")
		return b.String()
	case domain.PhaseSucceeded:
		b.WriteString(a.styles.Success.Render(
			fmt.Sprintf("Profile saved. Company ID: %s", a.wizard.Profile().ID)))
		b.WriteString("\n")
		return b.String()
	}

	a.renderTabs(&b)
	a.renderEntryBar(&b)
	a.renderFields(&b)
	a.renderFooter(&b)
	return b.String()
}

func (a *App) renderHeader(b *strings.Builder) {
	title := fmt.Sprintf("Company Profile (%s)", a.wizard.Mode())
	step := fmt.Sprintf("Step %d of %d: %s", int(a.wizard.Step()), int(domain.StepLast), a.wizard.Step())
	b.WriteString(a.styles.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(a.styles.Subtitle.Render(step))
	b.WriteString("\n\n")
}

func (a *App) renderTabs(b *strings.Builder) {
	if len(a.groups) < 2 {
		return
	}
	tabs := make([]string, len(a.groups))
	for i, g := range a.groups {
		if i == a.groupIdx {
			tabs[i] = a.styles.ActiveTab.Render(g.title)
		} else {
			tabs[i] = a.styles.Tab.Render(g.title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
}

func (a *App) renderEntryBar(b *strings.Builder) {
	g := a.activeGroup()
	if g.scalar() {
		return
	}
	line := fmt.Sprintf("Record %d of %d", a.entryIndex(g)+1, a.entryCount(g))
	if g.investors {
		line = fmt.Sprintf("Round %d · Investor %d of %d", a.round+1, a.invEntry+1, a.entryCount(g))
	}
	b.WriteString(a.styles.Muted.Render(line))
	b.WriteString("\n\n")
}

func (a *App) renderFields(b *strings.Builder) {
	g := a.activeGroup()
	p := a.wizard.Profile()
	idx := a.entryIndex(g)
	errors := a.wizard.FieldErrors()

	for i, f := range g.fields {
		label := a.styles.Label.Render(f.label)
		if i == a.fieldIdx {
			label = a.styles.FocusedLabel.Render(f.label)
		}

		var value string
		if f.kind == kindCheckbox {
			box := "[ ]"
			if f.getBool != nil && f.getBool(p, a.round, idx) {
				box = "[x]"
			}
			value = a.styles.Normal.Render(box)
		} else {
			value = a.inputs[i].View()
		}

		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")

		if msg, ok := errors[f.name]; ok && g.scalar() {
			b.WriteString(a.styles.Label.Render(""))
			b.WriteString(" ")
			b.WriteString(a.styles.Error.Render(msg))
			b.WriteString("\n")
		}
	}

	if g.section == domain.SectionFinancials {
		a.renderRatios(b, financialAt(p, idx).Ratios)
	}
}

// renderRatios shows the derived ratios for the selected year.
func (a *App) renderRatios(b *strings.Builder, r domain.FinancialRatios) {
	b.WriteString("\n")
	b.WriteString(a.styles.Subtitle.Render("Derived ratios"))
	b.WriteString("\n")
	for _, row := range []struct {
		label string
		value *float64
	}{
		{"Debt to equity", r.DebtToEquity},
		{"Current ratio", r.CurrentRatio},
		{"Return on equity", r.ReturnOnEquity},
		{"Return on assets", r.ReturnOnAssets},
		{"Profit margin", r.ProfitMargin},
	} {
		b.WriteString(a.styles.Label.Render(row.label))
		b.WriteString(" ")
		b.WriteString(a.styles.Muted.Render(formatRatio(row.value)))
		b.WriteString("\n")
	}
}

func formatRatio(v *float64) string {
	if v == nil {
		return "—"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func (a *App) renderFooter(b *strings.Builder) {
	b.WriteString("\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	} else if a.wizard.Phase() == domain.PhaseFailed {
		b.WriteString(a.styles.Error.Render("Submission failed: " + a.wizard.SubmitError()))
		b.WriteString("\n")
	} else if a.notice != "" {
		b.WriteString(a.styles.Warning.Render(a.notice))
		b.WriteString("\n")
	}

	hints := []string{}
	for _, binding := range a.keys.FormHelp() {
		hints = append(hints, binding.Help().Key+" "+binding.Help().Desc)
	}
	if !a.activeGroup().scalar() {
		for _, binding := range a.keys.ListHelp() {
			hints = append(hints, binding.Help().Key+" "+binding.Help().Desc)
		}
	}
	if a.wizard.Step() == domain.StepLast {
		hints = append(hints, a.keys.Submit.Help().Key+" "+a.keys.Submit.Help().Desc)
	}
	b.WriteString(a.styles.Help.Render(strings.Join(hints, " · ")))
	b.WriteString("\n")
}

// Run starts the wizard program and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunWizard launches the TUI for a wizard session. Wired into the CLI
// as the interactive runner.
func RunWizard(wizard driving.WizardService) error {
	return NewApp(wizard).Run()
}

// Step returns the wizard step shown by the app (for testing).
func (a *App) Step() domain.WizardStep {
	return a.wizard.Step()
}

// ActiveGroup returns the active group title (for testing).
func (a *App) ActiveGroup() string {
	return a.activeGroup().title
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
