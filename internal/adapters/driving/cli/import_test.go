package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

func writeImportFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acme.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestImportCmd_SubmitsProfile(t *testing.T) {
	_, _, submission, cleanup := setupTestServices()
	defer cleanup()

	path := writeImportFile(t, `{
		"name": "Acme Corp",
		"sector": "Technology",
		"website": "https://acme.example.com"
	}`)

	out, err := execute(t, "import", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Imported acme.json. Company ID: company-1")
	require.Len(t, submission.profiles, 1)
	assert.Equal(t, "Acme Corp", submission.profiles[0].Name)
	assert.Equal(t, domain.ModeCreate, submission.modes[0])
}

func TestImportCmd_DiscardsEmbeddedID(t *testing.T) {
	_, _, submission, cleanup := setupTestServices()
	defer cleanup()

	path := writeImportFile(t, `{"id": "stale-id", "name": "Acme Corp", "sector": "Technology"}`)

	_, err := execute(t, "import", path)

	assert.NoError(t, err)
	require.Len(t, submission.profiles, 1)
	assert.Empty(t, submission.profiles[0].ID)
}

func TestImportCmd_SeedsMissingSections(t *testing.T) {
	_, _, submission, cleanup := setupTestServices()
	defer cleanup()

	path := writeImportFile(t, `{"name": "Acme Corp", "sector": "Technology"}`)

	_, err := execute(t, "import", path)

	assert.NoError(t, err)
	require.Len(t, submission.profiles, 1)
	assert.Len(t, submission.profiles[0].Addresses, 1)
	assert.Len(t, submission.profiles[0].FundingRounds, 1)
}

func TestImportCmd_MissingFile(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "import", filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestImportCmd_InvalidJSON(t *testing.T) {
	_, _, submission, cleanup := setupTestServices()
	defer cleanup()

	path := writeImportFile(t, `{"name": `)

	_, err := execute(t, "import", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
	assert.Empty(t, submission.profiles)
}

func TestImportCmd_RequiresAuth(t *testing.T) {
	access, _, _, cleanup := setupTestServices()
	defer cleanup()

	access.session = nil
	access.err = domain.ErrAuthRequired

	path := writeImportFile(t, `{"name": "Acme Corp", "sector": "Technology"}`)

	_, err := execute(t, "import", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "atlas auth login")
}
