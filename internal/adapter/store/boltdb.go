package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"docqa/internal/domain"
)

var (
	bucketRecords = []byte("records")
	bucketMeta    = []byte("meta")
	keyMetadata   = []byte("metadata")
)

// BoltStore persists QA knowledge in a single bbolt file. Each namespace
// is a top-level bucket with a `records` sub-bucket (sequence-keyed, so
// iteration order is insertion order) and a `meta` sub-bucket holding the
// one metadata record. Records are append-only.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) CreateNamespace(ns string) error {
	if ns == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(ns))
		if err != nil {
			return fmt.Errorf("failed to create namespace %s: %w", ns, err)
		}
		if _, err := b.CreateBucketIfNotExists(bucketRecords); err != nil {
			return err
		}
		_, err = b.CreateBucketIfNotExists(bucketMeta)
		return err
	})
}

func (s *BoltStore) AppendRecord(ns string, rec domain.QARecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		records, err := namespaceBucket(tx, ns, bucketRecords)
		if err != nil {
			return err
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		seq, err := records.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return records.Put(key, data)
	})
}

func (s *BoltStore) PutMetadata(ns string, meta domain.Metadata) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		metaBucket, err := namespaceBucket(tx, ns, bucketMeta)
		if err != nil {
			return err
		}

		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return metaBucket.Put(keyMetadata, data)
	})
}

func (s *BoltStore) Metadata(ns string) (domain.Metadata, error) {
	var meta domain.Metadata
	err := s.db.View(func(tx *bbolt.Tx) error {
		metaBucket, err := namespaceBucket(tx, ns, bucketMeta)
		if err != nil {
			return err
		}

		data := metaBucket.Get(keyMetadata)
		if data == nil {
			return fmt.Errorf("metadata not found for namespace: %s", ns)
		}
		return json.Unmarshal(data, &meta)
	})
	return meta, err
}

func (s *BoltStore) QuestionsByHeading(ns, heading string) ([]domain.QARecord, error) {
	var matches []domain.QARecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		records, err := namespaceBucket(tx, ns, bucketRecords)
		if err != nil {
			return err
		}

		return records.ForEach(func(k, v []byte) error {
			var rec domain.QARecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			if rec.Heading == heading {
				matches = append(matches, rec)
			}
			return nil
		})
	})
	return matches, err
}

func (s *BoltStore) FindQuestionLike(ns, query string) (domain.QARecord, bool, error) {
	var match domain.QARecord
	found := false
	queryLower := strings.ToLower(query)

	err := s.db.View(func(tx *bbolt.Tx) error {
		records, err := namespaceBucket(tx, ns, bucketRecords)
		if err != nil {
			return err
		}

		c := records.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var rec domain.QARecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			if strings.Contains(strings.ToLower(rec.Question), queryLower) {
				match = rec
				found = true
				return nil
			}
		}
		return nil
	})
	return match, found, err
}

func (s *BoltStore) CountRecords(ns string) (int, error) {
	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		records, err := namespaceBucket(tx, ns, bucketRecords)
		if err != nil {
			return err
		}
		count = records.Stats().KeyN
		return nil
	})
	return count, err
}

func (s *BoltStore) ListNamespaces() ([]string, error) {
	var namespaces []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			namespaces = append(namespaces, string(name))
			return nil
		})
	})
	return namespaces, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func namespaceBucket(tx *bbolt.Tx, ns string, child []byte) (*bbolt.Bucket, error) {
	b := tx.Bucket([]byte(ns))
	if b == nil {
		return nil, fmt.Errorf("namespace not found: %s", ns)
	}
	sub := b.Bucket(child)
	if sub == nil {
		return nil, fmt.Errorf("namespace not initialized: %s", ns)
	}
	return sub, nil
}
