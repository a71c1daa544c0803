package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed local storage for wizard drafts.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.atlas/data/drafts.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".atlas", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "drafts.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DraftStore returns a DraftStore interface backed by this store.
func (s *Store) DraftStore() driven.DraftStore {
	return &draftStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Draft Store ====================

// draftStore implements driven.DraftStore.
type draftStore struct {
	store *Store
}

var _ driven.DraftStore = (*draftStore)(nil)

// Save stores or replaces the draft for the given scope. A nil state
// persists the step pointer only.
func (s *draftStore) Save(ctx context.Context, scope domain.DraftScope, step domain.WizardStep, state *domain.CompanyProfile) error {
	var stateJSON sql.NullString
	if state != nil {
		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("marshalling draft state: %w", err)
		}
		stateJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO drafts (scope, step, state, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET
			step = excluded.step,
			state = excluded.state,
			updated_at = excluded.updated_at
	`, string(scope), int(step), stateJSON, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// Load retrieves the draft for a scope.
func (s *draftStore) Load(ctx context.Context, scope domain.DraftScope) (*driven.Draft, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT scope, step, state FROM drafts WHERE scope = ?
	`, string(scope))

	draft, err := scanDraft(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return draft, nil
}

// Clear removes the draft for a scope. Clearing a missing draft is not
// an error.
func (s *draftStore) Clear(ctx context.Context, scope domain.DraftScope) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM drafts WHERE scope = ?", string(scope))
	if err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}

// List returns all stored drafts.
func (s *draftStore) List(ctx context.Context) ([]driven.Draft, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT scope, step, state FROM drafts ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying drafts: %w", err)
	}
	defer rows.Close()

	var drafts []driven.Draft //nolint:prealloc // size unknown from query
	for rows.Next() {
		draft, err := scanDraft(rows.Scan)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *draft)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drafts: %w", err)
	}
	return drafts, nil
}

// scanDraft reads one draft row through the given scan function.
func scanDraft(scan func(...any) error) (*driven.Draft, error) {
	var scope string
	var step int
	var stateJSON sql.NullString
	if err := scan(&scope, &step, &stateJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning draft: %w", err)
	}

	draft := &driven.Draft{
		Scope: domain.DraftScope(scope),
		Step:  domain.WizardStep(step),
	}
	if stateJSON.Valid {
		var state domain.CompanyProfile
		if err := json.Unmarshal([]byte(stateJSON.String), &state); err != nil {
			return nil, fmt.Errorf("unmarshaling draft state: %w", err)
		}
		state.EnsureLists()
		draft.State = &state
	}
	return draft, nil
}
