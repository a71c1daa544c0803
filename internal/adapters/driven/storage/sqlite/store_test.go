package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "atlas-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "drafts.db", filepath.Base(store.Path()))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "atlas-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs the migration scan again against an up-to-date schema.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestDraftSaveAndLoad(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	drafts := store.DraftStore()
	ctx := context.Background()

	state := domain.NewCompanyProfile()
	state.Name = "Acme Corp"
	state.Sector = "Technology"
	state.Addresses[0].City = "Berlin"

	require.NoError(t, drafts.Save(ctx, domain.CreateDraftScope, domain.StepFinancials, state))

	draft, err := drafts.Load(ctx, domain.CreateDraftScope)
	require.NoError(t, err)
	assert.Equal(t, domain.CreateDraftScope, draft.Scope)
	assert.Equal(t, domain.StepFinancials, draft.Step)
	require.NotNil(t, draft.State)
	assert.Equal(t, "Acme Corp", draft.State.Name)
	assert.Equal(t, "Berlin", draft.State.Addresses[0].City)
}

func TestDraftSaveReplacesExisting(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	drafts := store.DraftStore()
	ctx := context.Background()

	state := domain.NewCompanyProfile()
	state.Name = "First"
	require.NoError(t, drafts.Save(ctx, domain.CreateDraftScope, domain.StepIdentity, state))

	state.Name = "Second"
	require.NoError(t, drafts.Save(ctx, domain.CreateDraftScope, domain.StepAddresses, state))

	draft, err := drafts.Load(ctx, domain.CreateDraftScope)
	require.NoError(t, err)
	assert.Equal(t, domain.StepAddresses, draft.Step)
	assert.Equal(t, "Second", draft.State.Name)

	all, err := drafts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDraftStepOnlySnapshot(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	drafts := store.DraftStore()
	ctx := context.Background()
	scope := domain.EditDraftScope("co-1")

	require.NoError(t, drafts.Save(ctx, scope, domain.StepFilings, nil))

	draft, err := drafts.Load(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, domain.StepFilings, draft.Step)
	assert.Nil(t, draft.State, "edit scope stores the step pointer only")
}

func TestDraftLoadMissing(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.DraftStore().Load(context.Background(), domain.EditDraftScope("nope"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftClear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	drafts := store.DraftStore()
	ctx := context.Background()

	require.NoError(t, drafts.Save(ctx, domain.CreateDraftScope, domain.StepIdentity, domain.NewCompanyProfile()))
	require.NoError(t, drafts.Clear(ctx, domain.CreateDraftScope))

	_, err := drafts.Load(ctx, domain.CreateDraftScope)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Clearing again is not an error.
	require.NoError(t, drafts.Clear(ctx, domain.CreateDraftScope))
}

func TestDraftList(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	drafts := store.DraftStore()
	ctx := context.Background()

	require.NoError(t, drafts.Save(ctx, domain.CreateDraftScope, domain.StepIdentity, domain.NewCompanyProfile()))
	require.NoError(t, drafts.Save(ctx, domain.EditDraftScope("co-1"), domain.StepNews, nil))

	all, err := drafts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	scopes := []domain.DraftScope{all[0].Scope, all[1].Scope}
	assert.Contains(t, scopes, domain.CreateDraftScope)
	assert.Contains(t, scopes, domain.EditDraftScope("co-1"))
}
