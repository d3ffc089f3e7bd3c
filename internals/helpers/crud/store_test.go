package crud

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type noteModel struct {
	NoteID        uuid.UUID `gorm:"column:note_id;type:uuid;primaryKey"`
	NoteTitle     string    `gorm:"column:note_title"`
	NoteCreatedAt time.Time `gorm:"column:note_created_at;autoCreateTime"`
}

func (noteModel) TableName() string { return "notes" }

func (m *noteModel) BeforeCreate(tx *gorm.DB) error {
	if m.NoteID == uuid.Nil {
		m.NoteID = uuid.New()
	}
	return nil
}

func newStore(t *testing.T) *Store[noteModel] {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&noteModel{}))
	return NewStore[noteModel](db, "note_id", "note_created_at DESC")
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	note := noteModel{NoteTitle: "first"}
	require.NoError(t, store.Create(ctx, &note))
	require.NotEqual(t, uuid.Nil, note.NoteID)

	got, err := store.GetByID(ctx, note.NoteID.String())
	require.NoError(t, err)
	assert.Equal(t, "first", got.NoteTitle)
}

func TestStore_GetMissing(t *testing.T) {
	store := newStore(t)

	_, err := store.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStore_ListPage(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		note := noteModel{
			NoteTitle:     fmt.Sprintf("note-%d", i),
			NoteCreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, store.Create(ctx, &note))
	}

	items, total, err := store.ListPage(ctx, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 3)
	// Newest first.
	assert.Equal(t, "note-4", items[0].NoteTitle)

	rest, total, err := store.ListPage(ctx, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rest, 2)
}

func TestStore_Update(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	note := noteModel{NoteTitle: "draft"}
	require.NoError(t, store.Create(ctx, &note))

	note.NoteTitle = "published"
	require.NoError(t, store.Update(ctx, &note))

	got, err := store.GetByID(ctx, note.NoteID.String())
	require.NoError(t, err)
	assert.Equal(t, "published", got.NoteTitle)
}

func TestStore_Delete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	note := noteModel{NoteTitle: "gone soon"}
	require.NoError(t, store.Create(ctx, &note))

	rows, err := store.Delete(ctx, note.NoteID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// Absent rows report zero so handlers can 404.
	rows, err = store.Delete(ctx, note.NoteID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
