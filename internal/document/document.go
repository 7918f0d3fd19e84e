// internal/document/document.go
package document

import (
	"encoding/json"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"go-painter/internal/shape"
)

// Document is a saved drawing: a named set of shape snapshots.
type Document struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Shapes    []*shape.State `json:"shapes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// New creates a document with a fresh ULID id. The entropy reader may be
// nil, in which case the default ULID entropy is used.
func New(name string, entropy io.Reader) *Document {
	return &Document{
		ID:   NewID(entropy),
		Name: name,
	}
}

// NewID returns a new ULID string.
func NewID(entropy io.Reader) string {
	if entropy == nil {
		return ulid.Make().String()
	}
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Snapshot replaces the document's shapes with the states of the given
// canvas shapes.
func (d *Document) Snapshot(shapes []shape.Shape) {
	d.Shapes = make([]*shape.State, 0, len(shapes))
	for _, s := range shapes {
		d.Shapes = append(d.Shapes, s.State())
	}
}

// Meta returns a copy of the document without the shape payload, for list
// views.
func (d *Document) Meta() *Document {
	return &Document{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Encode serializes the document as JSON.
func (d *Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}

// Decode deserializes a document from JSON.
func Decode(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
