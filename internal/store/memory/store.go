// internal/store/memory/store.go
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"go-painter/internal/document"
)

// memStore keeps documents in a process-local map. The default backend when
// no persistent storage is configured.
type memStore struct {
	mu        sync.RWMutex
	documents map[string]*document.Document
}

// NewStore creates a new in-memory store.
func NewStore() *memStore {
	return &memStore{
		documents: make(map[string]*document.Document),
	}
}

func (s *memStore) Save(ctx context.Context, doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		return fmt.Errorf("document id cannot be empty")
	}

	now := time.Now()
	if existing, ok := s.documents[doc.ID]; ok {
		doc.CreatedAt = existing.CreatedAt
	} else {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	stored := *doc
	s.documents[doc.ID] = &stored

	logrus.WithFields(logrus.Fields{
		"document_id": doc.ID,
		"shapes":      len(doc.Shapes),
	}).Info("Document saved")
	return nil
}

func (s *memStore) Get(ctx context.Context, id string) (*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := logrus.WithField("document_id", id)
	if doc, ok := s.documents[id]; ok {
		log.Info("Document retrieved")
		copied := *doc
		return &copied, nil
	}
	log.Warn("Document not found")
	return nil, fmt.Errorf("document with id %s not found", id)
}

func (s *memStore) List(ctx context.Context) ([]*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*document.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc.Meta())
	}
	logrus.Infof("Listed %d documents", len(docs))
	return docs, nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		logrus.WithField("document_id", id).Warn("Document not found for deletion")
		return fmt.Errorf("document with id %s not found", id)
	}
	delete(s.documents, id)
	logrus.WithField("document_id", id).Info("Document deleted")
	return nil
}
