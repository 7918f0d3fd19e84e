// internal/store/sqlite/store_test.go
package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-painter/internal/document"
	"go-painter/internal/shape"
	"go-painter/pkg/geometry"
)

func newTestStore(t *testing.T) *sqliteStore {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "painter.db"))
	t.Cleanup(func() { s.db.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := shape.NewCircle(shape.DefaultStyle())
	c.HandleTouchDown(shape.Touch{Pos: geometry.Pt(100, 100)})
	c.Finish()

	doc := document.New("sketch", nil)
	doc.Snapshot([]shape.Shape{c})
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "sketch", got.Name)
	require.Len(t, got.Shapes, 1)
	assert.Equal(t, shape.VariantCircle, got.Shapes[0].Variant)
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := document.New("sketch", nil)
	require.NoError(t, s.Save(ctx, doc))
	created := doc.CreatedAt

	time.Sleep(10 * time.Millisecond)
	doc.Name = "renamed"
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, created.Unix(), got.CreatedAt.Unix())
}

func TestListOrdersByUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d1 := document.New("old", nil)
	d2 := document.New("new", nil)
	require.NoError(t, s.Save(ctx, d1))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.Save(ctx, d2))

	docs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, d2.ID, docs[0].ID)
	assert.Nil(t, docs[0].Shapes, "listing returns metadata only")
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := document.New("sketch", nil)
	require.NoError(t, s.Save(ctx, doc))
	require.NoError(t, s.Delete(ctx, doc.ID))
	assert.Error(t, s.Delete(ctx, doc.ID))
}
