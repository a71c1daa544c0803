package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

func TestCompanyListCmd_Empty(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "company", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "No companies stored.")
}

func TestCompanyListCmd_Table(t *testing.T) {
	_, profiles, _, cleanup := setupTestServices()
	defer cleanup()

	profiles.summaries = []domain.CompanySummary{
		{ID: "c-1", Name: "Acme Corp", Sector: "Technology", Status: "ACTIVE"},
		{ID: "c-2", Name: "Globex", Sector: "Energy", Status: "DISSOLVED"},
	}

	out, err := execute(t, "company", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "DISSOLVED")
}

func TestCompanyListCmd_JSON(t *testing.T) {
	_, profiles, _, cleanup := setupTestServices()
	defer cleanup()

	profiles.summaries = []domain.CompanySummary{
		{ID: "c-1", Name: "Acme Corp", Sector: "Technology", Status: "ACTIVE"},
	}

	out, err := execute(t, "company", "list", "--json")
	defer func() { companyJSON = false }()

	assert.NoError(t, err)
	assert.Contains(t, out, `"Name": "Acme Corp"`)
}

func TestCompanyShowCmd_NotFound(t *testing.T) {
	_, profiles, _, cleanup := setupTestServices()
	defer cleanup()

	profiles.loadErr = domain.ErrNotFound

	_, err := execute(t, "company", "show", "missing-id")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "company missing-id not found")
}

func TestCompanyShowCmd_PrintsProfile(t *testing.T) {
	_, profiles, _, cleanup := setupTestServices()
	defer cleanup()

	profile := domain.NewCompanyProfile()
	profile.ID = "c-1"
	profile.Name = "Acme Corp"
	profile.Sector = "Technology"
	profile.Website = "https://acme.example.com"
	profiles.profile = profile

	out, err := execute(t, "company", "show", "c-1")

	assert.NoError(t, err)
	assert.Contains(t, out, "Acme Corp (c-1)")
	assert.Contains(t, out, "Sector:   Technology")
	assert.Contains(t, out, "https://acme.example.com")
}

func TestCompanyDeleteCmd_Force(t *testing.T) {
	_, profiles, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "company", "delete", "--force", "c-1")
	defer func() { deleteForce = false }()

	assert.NoError(t, err)
	assert.Contains(t, out, "Deleted company c-1")
	assert.Equal(t, []string{"c-1"}, profiles.deleted)
}

func TestCompanyDeleteCmd_PromptDeclined(t *testing.T) {
	_, profiles, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader("n\n"))
	rootCmd.SetArgs([]string{"company", "delete", "c-1"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Aborted.")
	assert.Empty(t, profiles.deleted)
}

func TestCompanyDeleteCmd_RequiresAuth(t *testing.T) {
	access, _, _, cleanup := setupTestServices()
	defer cleanup()

	access.session = nil
	access.err = domain.ErrAuthRequired

	_, err := execute(t, "company", "delete", "--force", "c-1")
	defer func() { deleteForce = false }()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "atlas auth login")
}
