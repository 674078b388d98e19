// Package store holds the current session's uploads in memory. Nothing
// is persisted: clearing the session or restarting the tool discards
// all data.
package store

import (
	"sync"

	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
)

// UploadInfo describes one accepted upload.
type UploadInfo struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	Rows     int    `json:"rows"`
}

// Store is the mutex-guarded holder for the three input tables. The
// lock only guards concurrent HTTP handlers; report generation itself
// is single-pass and synchronous.
type Store struct {
	mu        sync.RWMutex
	draft     *model.OrderTable
	submitted *model.OrderTable
	forecast  *model.ForecastTable
	meta      map[model.TableKind]UploadInfo
}

// New creates an empty session store.
func New() *Store {
	return &Store{
		meta: make(map[model.TableKind]UploadInfo),
	}
}

// SetOrder stores a decoded draft or submitted order, replacing any
// previous upload of the same kind.
func (s *Store) SetOrder(kind model.TableKind, table *model.OrderTable, info UploadInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case model.TableDraft:
		s.draft = table
	case model.TableSubmitted:
		s.submitted = table
	}
	s.meta[kind] = info
}

// SetForecast stores the decoded forecast report.
func (s *Store) SetForecast(table *model.ForecastTable, info UploadInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forecast = table
	s.meta[model.TableForecast] = info
}

// Snapshot returns the three tables. ready is false until all three
// uploads are present; the report only runs on a complete snapshot.
func (s *Store) Snapshot() (draft, submitted *model.OrderTable, forecast *model.ForecastTable, ready bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ready = s.draft != nil && s.submitted != nil && s.forecast != nil
	return s.draft, s.submitted, s.forecast, ready
}

// Status reports which inputs are loaded.
func (s *Store) Status() (map[model.TableKind]UploadInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[model.TableKind]UploadInfo, len(s.meta))
	for kind, info := range s.meta {
		out[kind] = info
	}
	ready := s.draft != nil && s.submitted != nil && s.forecast != nil
	return out, ready
}

// Clear drops all uploads, returning the session to the idle state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = nil
	s.submitted = nil
	s.forecast = nil
	s.meta = make(map[model.TableKind]UploadInfo)
}
