package memstore

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"docqa/internal/domain"
)

// MemoryStore is an in-memory knowledge store with the same contract as
// the bbolt store. Used in tests and anywhere persistence is not wanted.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]domain.QARecord
	meta    map[string]domain.Metadata
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]domain.QARecord),
		meta:    make(map[string]domain.Metadata),
	}
}

func (s *MemoryStore) CreateNamespace(ns string) error {
	if ns == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[ns]; !ok {
		s.records[ns] = nil
	}
	return nil
}

func (s *MemoryStore) AppendRecord(ns string, rec domain.QARecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[ns]; !ok {
		return fmt.Errorf("namespace not found: %s", ns)
	}
	s.records[ns] = append(s.records[ns], rec)
	return nil
}

func (s *MemoryStore) PutMetadata(ns string, meta domain.Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[ns]; !ok {
		return fmt.Errorf("namespace not found: %s", ns)
	}
	s.meta[ns] = meta
	return nil
}

func (s *MemoryStore) Metadata(ns string) (domain.Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.meta[ns]
	if !ok {
		return domain.Metadata{}, fmt.Errorf("metadata not found for namespace: %s", ns)
	}
	return meta, nil
}

func (s *MemoryStore) QuestionsByHeading(ns, heading string) ([]domain.QARecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs, ok := s.records[ns]
	if !ok {
		return nil, fmt.Errorf("namespace not found: %s", ns)
	}
	var matches []domain.QARecord
	for _, rec := range recs {
		if rec.Heading == heading {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

func (s *MemoryStore) FindQuestionLike(ns, query string) (domain.QARecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs, ok := s.records[ns]
	if !ok {
		return domain.QARecord{}, false, fmt.Errorf("namespace not found: %s", ns)
	}
	queryLower := strings.ToLower(query)
	for _, rec := range recs {
		if strings.Contains(strings.ToLower(rec.Question), queryLower) {
			return rec, true, nil
		}
	}
	return domain.QARecord{}, false, nil
}

func (s *MemoryStore) CountRecords(ns string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs, ok := s.records[ns]
	if !ok {
		return 0, fmt.Errorf("namespace not found: %s", ns)
	}
	return len(recs), nil
}

func (s *MemoryStore) ListNamespaces() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	namespaces := make([]string, 0, len(s.records))
	for ns := range s.records {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	return namespaces, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
