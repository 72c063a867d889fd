// Package report implements run report storage backed by a flat JSON file.
package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPath is where relay writes run reports when no explicit path is
// given.
const DefaultPath = ".relay/report.json"

// Store implements ports.RunReportStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.InstanceReport
}

// NewStore creates a new RunReportStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.InstanceReport),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read run report store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal run report store")
	}
	for id, rep := range s.cache {
		rep.Status = domain.NormalizeInstanceStatus(string(rep.Status))
		s.cache[id] = rep
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run report store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for run report store")
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // report file is not sensitive
		return zerr.Wrap(err, "failed to write run report store")
	}

	return nil
}

// Get retrieves the last report for a given instance identifier.
func (s *Store) Get(instance string) (*domain.InstanceReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rep, ok := s.cache[instance]
	if !ok {
		return nil, nil
	}
	return &rep, nil
}

// Put stores the report, replacing any previous report for the same
// instance.
func (s *Store) Put(rep domain.InstanceReport) error {
	s.mu.Lock()
	s.cache[rep.Instance] = rep
	s.mu.Unlock()

	return s.save()
}
