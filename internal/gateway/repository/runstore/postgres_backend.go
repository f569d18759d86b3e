package runstore

import (
	"encoding/json"
	"time"
)

const createRunsTable = `
CREATE TABLE IF NOT EXISTS generation_runs (
	id         TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

func (s *Store) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(createRunsTable)
	})
	return s.schemaErr
}

func (s *Store) putDB(run Run) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO generation_runs (id, data, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, created_at = EXCLUDED.created_at`,
		run.ID, data, run.CreatedAt,
	)
	if err == nil && s.cache != nil {
		s.cache.Add(run.ID, run)
	}
	return err
}

func (s *Store) getDB(id string) (Run, bool) {
	if s.cache != nil {
		if r, ok := s.cache.Get(id); ok {
			return r, true
		}
	}
	if err := s.ensureSchema(); err != nil {
		return Run{}, false
	}
	var data []byte
	if err := s.db.QueryRow(`SELECT data FROM generation_runs WHERE id = $1`, id).Scan(&data); err != nil {
		return Run{}, false
	}
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, false
	}
	if s.cache != nil {
		s.cache.Add(id, run)
	}
	return run, true
}

func (s *Store) recentDB(limit int) []Run {
	if err := s.ensureSchema(); err != nil {
		return nil
	}
	rows, err := s.db.Query(`SELECT data, created_at FROM generation_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var data []byte
		var createdAt time.Time
		if err := rows.Scan(&data, &createdAt); err != nil {
			continue
		}
		var run Run
		if err := json.Unmarshal(data, &run); err != nil {
			continue
		}
		out = append(out, run)
	}
	return out
}
