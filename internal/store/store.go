// internal/store/store.go
package store

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"go-painter/internal/document"
	"go-painter/internal/store/filesystem"
	"go-painter/internal/store/memory"
	"go-painter/internal/store/sqlite"
)

// Store is the persistence layer for saved drawings.
type Store interface {
	// Save creates or updates a document. The document must carry an id.
	Save(ctx context.Context, doc *document.Document) error

	// Get returns a document with its full shape payload.
	Get(ctx context.Context, id string) (*document.Document, error)

	// List returns metadata for all saved documents, without shapes.
	List(ctx context.Context) ([]*document.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, id string) error
}

// GetStore selects a backend from the PAINTER_STORAGE environment variable:
// "filesystem", "sqlite", or anything else for in-memory.
func GetStore() Store {
	storageType := os.Getenv("PAINTER_STORAGE")
	var s Store

	storageField := logrus.Fields{
		"storageType": storageType,
	}

	switch storageType {
	case "filesystem":
		basePath := os.Getenv("PAINTER_STORAGE_PATH")
		if basePath == "" {
			basePath = "./paintings"
		}
		storageField["basePath"] = basePath
		s = filesystem.NewStore(basePath)
	case "sqlite":
		dataSourceName := os.Getenv("PAINTER_DATA_SOURCE")
		if dataSourceName == "" {
			dataSourceName = "painter.db"
		}
		storageField["dataSourceName"] = dataSourceName
		s = sqlite.NewStore(dataSourceName)
	default:
		s = memory.NewStore()
		storageField["storageType"] = "in-memory"
	}
	logrus.WithFields(storageField).Info("Using document storage")
	return s
}
