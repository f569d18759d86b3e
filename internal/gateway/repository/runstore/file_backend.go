package runstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// File backend: everything held in memory, flushed to one JSON file per
// mutation. Fine for local single-process use, which is all the file mode
// serves.

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var runs []Run
		if err := json.Unmarshal(data, &runs); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, r := range runs {
			s.byID[r.ID] = r
		}
	})
}

func (s *Store) saveFileLocked() error {
	runs := make([]Run, 0, len(s.byID))
	for _, r := range s.byID {
		runs = append(runs, r)
	}
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *Store) putFile(run Run) error {
	s.ensureLoadedFile()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[run.ID] = run
	return s.saveFileLocked()
}

func (s *Store) getFile(id string) (Run, bool) {
	s.ensureLoadedFile()
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	return r, ok
}

func (s *Store) recentFile(limit int) []Run {
	s.ensureLoadedFile()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recentFromMap(limit)
}
