package port

import "docqa/internal/domain"

// KnowledgeStore is namespace-per-document persistence of QA records plus
// one metadata record. Records are append-only; nothing is updated or
// deleted.
type KnowledgeStore interface {
	// CreateNamespace prepares a namespace for writes. Idempotent.
	CreateNamespace(ns string) error

	// AppendRecord persists one QA record, preserving insertion order.
	AppendRecord(ns string, rec domain.QARecord) error

	// PutMetadata stores the single metadata record for a namespace.
	PutMetadata(ns string, meta domain.Metadata) error

	// Metadata returns the metadata record for a namespace.
	Metadata(ns string) (domain.Metadata, error)

	// QuestionsByHeading returns records whose heading matches exactly,
	// in insertion order.
	QuestionsByHeading(ns, heading string) ([]domain.QARecord, error)

	// FindQuestionLike returns the first record whose question contains
	// the query as a case-insensitive substring.
	FindQuestionLike(ns, query string) (domain.QARecord, bool, error)

	// CountRecords returns the number of QA records in a namespace.
	CountRecords(ns string) (int, error)

	// ListNamespaces returns all namespaces present in the store.
	ListNamespaces() ([]string, error)

	Close() error
}
