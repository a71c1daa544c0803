package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

func TestDraftStore_SaveAndLoad(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	profile := domain.NewCompanyProfile()
	profile.Name = "Acme"
	profile.Sector = "technology"

	err := store.Save(ctx, domain.CreateDraftScope, domain.StepFinancials, profile)
	require.NoError(t, err)

	draft, err := store.Load(ctx, domain.CreateDraftScope)
	require.NoError(t, err)
	assert.Equal(t, domain.StepFinancials, draft.Step)
	require.NotNil(t, draft.State)
	assert.Equal(t, "Acme", draft.State.Name)
	assert.Equal(t, "technology", draft.State.Sector)
}

func TestDraftStore_Load_NotFound(t *testing.T) {
	store := NewDraftStore()

	_, err := store.Load(context.Background(), domain.CreateDraftScope)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftStore_StepOnlyDraft(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()
	scope := domain.EditDraftScope("c-1")

	err := store.Save(ctx, scope, domain.StepFunding, nil)
	require.NoError(t, err)

	draft, err := store.Load(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, domain.StepFunding, draft.Step)
	assert.Nil(t, draft.State)
}

func TestDraftStore_SaveDetachesState(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	profile := domain.NewCompanyProfile()
	profile.Name = "Original"
	require.NoError(t, store.Save(ctx, domain.CreateDraftScope, domain.StepIdentity, profile))

	// Later mutation of the live profile must not leak into the snapshot.
	profile.Name = "Mutated"

	draft, err := store.Load(ctx, domain.CreateDraftScope)
	require.NoError(t, err)
	assert.Equal(t, "Original", draft.State.Name)
}

func TestDraftStore_Clear(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.CreateDraftScope, domain.StepIdentity, nil))
	require.NoError(t, store.Clear(ctx, domain.CreateDraftScope))

	_, err := store.Load(ctx, domain.CreateDraftScope)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Clearing a missing draft is not an error.
	assert.NoError(t, store.Clear(ctx, domain.CreateDraftScope))
}

func TestDraftStore_List(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.CreateDraftScope, domain.StepIdentity, domain.NewCompanyProfile()))
	require.NoError(t, store.Save(ctx, domain.EditDraftScope("c-1"), domain.StepNews, nil))

	drafts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}
