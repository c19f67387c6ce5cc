package store

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"query-router/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultKnowledge []byte

// KnowledgeStore holds the organisation record loaded at startup.
type KnowledgeStore struct {
	record *entity.KnowledgeRecord
}

// NewDefaultKnowledgeStore loads the record compiled into the binary.
func NewDefaultKnowledgeStore() (*KnowledgeStore, error) {
	return ParseKnowledge(defaultKnowledge)
}

// LoadKnowledgeStore reads a record from path. An empty path selects the
// built-in record. Callers are expected to treat an error as fatal.
func LoadKnowledgeStore(path string) (*KnowledgeStore, error) {
	if path == "" {
		return NewDefaultKnowledgeStore()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}
	return ParseKnowledge(data)
}

// ParseKnowledge decodes and validates a YAML record. Unknown keys are rejected
// so a typo cannot silently drop a fact.
func ParseKnowledge(data []byte) (*KnowledgeStore, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rec entity.KnowledgeRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid knowledge record: %w", err)
	}
	return &KnowledgeStore{record: &rec}, nil
}

// Record returns the shared record. It must not be modified.
func (s *KnowledgeStore) Record() *entity.KnowledgeRecord {
	return s.record
}

// Snapshot returns a deep copy that is safe to hand to code outside the core.
func (s *KnowledgeStore) Snapshot() *entity.KnowledgeRecord {
	return s.record.Clone()
}
