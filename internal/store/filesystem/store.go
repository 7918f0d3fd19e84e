// internal/store/filesystem/store.go
package filesystem

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"go-painter/internal/document"
)

// fsStore keeps each document as a JSON file under basePath.
type fsStore struct {
	basePath string
}

// NewStore creates a new filesystem-based store.
func NewStore(basePath string) *fsStore {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		log.Fatalf("failed to create storage directory: %v", err)
	}
	return &fsStore{basePath: basePath}
}

func (s *fsStore) path(id string) string {
	return filepath.Join(s.basePath, id+".json")
}

func (s *fsStore) Save(ctx context.Context, doc *document.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document id cannot be empty")
	}
	log := logrus.WithFields(logrus.Fields{
		"document_id": doc.ID,
		"file_path":   s.path(doc.ID),
	})

	now := time.Now()
	if existing, err := s.Get(ctx, doc.ID); err == nil {
		doc.CreatedAt = existing.CreatedAt
	} else {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	data, err := doc.Encode()
	if err != nil {
		log.WithError(err).Error("Failed to encode document")
		return err
	}
	if err := os.WriteFile(s.path(doc.ID), data, 0644); err != nil {
		log.WithError(err).Error("Failed to write document")
		return err
	}
	log.Info("Document saved")
	return nil
}

func (s *fsStore) Get(ctx context.Context, id string) (*document.Document, error) {
	log := logrus.WithField("document_id", id)

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Document not found")
			return nil, fmt.Errorf("document with id %s not found", id)
		}
		log.WithError(err).Error("Failed to read document")
		return nil, err
	}
	doc, err := document.Decode(data)
	if err != nil {
		log.WithError(err).Error("Failed to decode document")
		return nil, err
	}
	return doc, nil
}

func (s *fsStore) List(ctx context.Context) ([]*document.Document, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, err
	}

	var docs []*document.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		doc, err := s.Get(ctx, id)
		if err != nil {
			logrus.WithField("file", entry.Name()).WithError(err).Warn("Skipping unreadable document")
			continue
		}
		docs = append(docs, doc.Meta())
	}
	logrus.Infof("Listed %d documents", len(docs))
	return docs, nil
}

func (s *fsStore) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document with id %s not found", id)
		}
		return err
	}
	logrus.WithField("document_id", id).Info("Document deleted")
	return nil
}
