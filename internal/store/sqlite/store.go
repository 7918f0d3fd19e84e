// internal/store/sqlite/store.go
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"go-painter/internal/document"
)

// sqliteStore keeps documents in a single-file sqlite database.
type sqliteStore struct {
	db *sql.DB
}

// NewStore creates a new sqlite-based store.
func NewStore(dataSourceName string) *sqliteStore {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}

	stmt := `
	CREATE TABLE IF NOT EXISTS paintings (
		id TEXT PRIMARY KEY,
		name TEXT,
		data BLOB,
		created_at DATETIME,
		updated_at DATETIME
	);`
	if _, err = db.Exec(stmt); err != nil {
		log.Fatalf("failed to create paintings table: %v", err)
	}

	return &sqliteStore{db: db}
}

func (s *sqliteStore) Save(ctx context.Context, doc *document.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document id cannot be empty")
	}
	log := logrus.WithField("document_id", doc.ID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var createdAt time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT created_at FROM paintings WHERE id = ?", doc.ID).Scan(&createdAt)
	now := time.Now()
	switch err {
	case nil:
		doc.CreatedAt = createdAt
	case sql.ErrNoRows:
		doc.CreatedAt = now
	default:
		return err
	}
	doc.UpdatedAt = now

	data, err := doc.Encode()
	if err != nil {
		log.WithError(err).Error("Failed to encode document")
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO paintings (id, name, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = ?, data = ?, updated_at = ?`,
		doc.ID, doc.Name, data, doc.CreatedAt, doc.UpdatedAt,
		doc.Name, data, doc.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to save document")
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Document saved")
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*document.Document, error) {
	log := logrus.WithField("document_id", id)

	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM paintings WHERE id = ?", id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Warn("Document not found")
			return nil, fmt.Errorf("document with id %s not found", id)
		}
		log.WithError(err).Error("Failed to retrieve document")
		return nil, err
	}
	return document.Decode(data)
}

func (s *sqliteStore) List(ctx context.Context) ([]*document.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM paintings ORDER BY updated_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*document.Document
	for rows.Next() {
		var doc document.Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM paintings WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("document with id %s not found", id)
	}
	logrus.WithField("document_id", id).Info("Document deleted")
	return nil
}
