// Package runstore records code-generation runs for the plugin host's
// history panel. Backed by Postgres when a DSN is configured, a local
// JSON file otherwise.
package runstore

import (
	"database/sql"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Run is one recorded code-generation request.
type Run struct {
	ID         string    `json:"id"`
	ScreenName string    `json:"screen_name"`
	Success    bool      `json:"success"`
	Errors     []string  `json:"errors,omitempty"`
	FileNames  []string  `json:"file_names,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]Run

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, Run]
}

func New(path string) *Store {
	return &Store{
		path: path,
		byID: make(map[string]Run),
	}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, Run](512)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, cache: cache}, nil
}

// NewFromEnv prefers Postgres via RUN_STORE_PG_DSN and falls back to the
// file store when the DSN is absent or unreachable.
func NewFromEnv(path string) *Store {
	dsn := strings.TrimSpace(os.Getenv("RUN_STORE_PG_DSN"))
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Put(run Run) error {
	if s == nil {
		return nil
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if s.db != nil {
		return s.putDB(run)
	}
	return s.putFile(run)
}

func (s *Store) Get(id string) (Run, bool) {
	if s == nil {
		return Run{}, false
	}
	if s.db != nil {
		return s.getDB(id)
	}
	return s.getFile(id)
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) []Run {
	if s == nil || limit <= 0 {
		return nil
	}
	if s.db != nil {
		return s.recentDB(limit)
	}
	return s.recentFile(limit)
}

func (s *Store) recentFromMap(limit int) []Run {
	out := make([]Run, 0, len(s.byID))
	for _, r := range s.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
