package internal

import (
	"database/sql"
	"time"
)

// Store persists per-repository reflog state in SQLite. Each repository's
// rows are scoped by its path; two repositories' states never interact.
// Loaded states are memoized per path; MergeAndPersist swaps in a new
// instance only after its database write commits.
type Store struct {
	db     *sql.DB
	loaded map[string]*RepositoryState
}

// NewStore creates a Store on top of an opened database.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:     db,
		loaded: make(map[string]*RepositoryState),
	}
}

// Load returns the persisted state for a repository, empty when the
// repository has never been parsed before.
func (s *Store) Load(repoPath string) (*RepositoryState, error) {
	if state, ok := s.loaded[repoPath]; ok {
		return state, nil
	}

	query := `SELECT hash, raw, commit_id, timestamp, message, previous_ref, current_ref
		FROM reflog_entries WHERE repo_path = ?`
	rows, err := s.db.Query(query, repoPath)
	if err != nil {
		return nil, &StoreError{Op: "load", Repo: repoPath, Err: err}
	}
	defer rows.Close()

	state := NewRepositoryState()
	for rows.Next() {
		var hash, raw, commit, timestamp, message, previous, current string
		if err := rows.Scan(&hash, &raw, &commit, &timestamp, &message, &previous, &current); err != nil {
			return nil, &StoreError{Op: "load", Repo: repoPath, Err: err}
		}

		rec, err := decodeStoredRecord(commit, timestamp, message, previous, current)
		if err != nil {
			// A row that no longer decodes is dropped from the working set
			// but left on disk.
			LogWarn("dropping undecodable stored entry %s for %s: %v", hash, repoPath, err)
			continue
		}

		state.Hashes[hash] = raw
		state.Parsed[hash] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "load", Repo: repoPath, Err: err}
	}

	s.loaded[repoPath] = state
	return state, nil
}

// Merge folds newly discovered entries into the in-memory state for the
// repository. Idempotent: re-merging known hashes changes nothing.
func (s *Store) Merge(repoPath string, raw map[string]string, parsed map[string]CheckoutRecord) {
	state, ok := s.loaded[repoPath]
	if !ok {
		state = NewRepositoryState()
		s.loaded[repoPath] = state
	}
	state.Merge(raw, parsed)
}

// MergeAndPersist folds newly discovered entries into a copy of the
// repository's state, writes the copy to the database, and publishes it only
// once the write commits. A failed persist leaves both the database and the
// in-memory state as they were.
func (s *Store) MergeAndPersist(repoPath string, raw map[string]string, parsed map[string]CheckoutRecord) (*RepositoryState, error) {
	base, ok := s.loaded[repoPath]
	if !ok {
		base = NewRepositoryState()
	}
	merged := base.Clone()
	merged.Merge(raw, parsed)

	if err := s.persist(repoPath, merged); err != nil {
		return nil, err
	}
	s.loaded[repoPath] = merged
	return merged, nil
}

// Persist writes the repository's full current state back to the database.
// Only rows for this repository path are touched; INSERT OR IGNORE keeps the
// persisted set a superset of every earlier persist.
func (s *Store) Persist(repoPath string) error {
	state, ok := s.loaded[repoPath]
	if !ok {
		return nil
	}
	return s.persist(repoPath, state)
}

func (s *Store) persist(repoPath string, state *RepositoryState) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &StoreError{Op: "persist", Repo: repoPath, Err: err}
	}

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO reflog_entries
		(repo_path, hash, raw, commit_id, timestamp, message, previous_ref, current_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return &StoreError{Op: "persist", Repo: repoPath, Err: err}
	}
	defer stmt.Close()

	for hash, raw := range state.Hashes {
		rec, ok := state.Parsed[hash]
		if !ok {
			continue
		}
		_, err := stmt.Exec(repoPath, hash, raw, rec.Commit,
			rec.Timestamp.Format(GitTimeLayout), rec.Message, rec.Previous, rec.Current)
		if err != nil {
			tx.Rollback()
			return &StoreError{Op: "persist", Repo: repoPath, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "persist", Repo: repoPath, Err: err}
	}
	return nil
}

// EntryCount returns the number of persisted checkout entries for a
// repository.
func (s *Store) EntryCount(repoPath string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM reflog_entries WHERE repo_path = ?`, repoPath).Scan(&count)
	if err != nil {
		return 0, &StoreError{Op: "load", Repo: repoPath, Err: err}
	}
	return count, nil
}

// Reset unconditionally clears every repository's persisted state.
func (s *Store) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM reflog_entries`); err != nil {
		return &StoreError{Op: "reset", Err: err}
	}
	s.loaded = make(map[string]*RepositoryState)
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func decodeStoredRecord(commit, timestamp, message, previous, current string) (CheckoutRecord, error) {
	ts, err := time.Parse(GitTimeLayout, timestamp)
	if err != nil {
		return CheckoutRecord{}, err
	}
	return CheckoutRecord{
		Commit:    commit,
		Timestamp: ts,
		Message:   message,
		Previous:  previous,
		Current:   current,
	}, nil
}
