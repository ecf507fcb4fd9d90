package repository

import (
	"fmt"
	"testing"

	"github.com/chalkboard-dev/chalkboard/internal/db"
	"github.com/chalkboard-dev/chalkboard/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	// A second pool connection would open a second, empty in-memory db
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func TestInsert(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))

	first, err := repo.Insert(&model.Message{
		BoardID:   "demo",
		Content:   "hello",
		CreatedAt: "2026-08-30T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Greater(t, first, int64(0))

	second, err := repo.Insert(&model.Message{
		BoardID:   "demo",
		Content:   "again",
		CreatedAt: "2026-08-30T10:00:01Z",
	})
	require.NoError(t, err)
	assert.Greater(t, second, first, "ids must be monotonic by insertion")
}

func TestByBoard(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		repo := NewMessageRepository(setupTestDB(t))

		for i := 0; i < 5; i++ {
			_, err := repo.Insert(&model.Message{
				BoardID:   "demo",
				Content:   fmt.Sprintf("message %d", i),
				CreatedAt: fmt.Sprintf("2026-08-30T10:00:0%dZ", i),
			})
			require.NoError(t, err)
		}

		messages, err := repo.ByBoard("demo")
		require.NoError(t, err)
		require.Len(t, messages, 5)
		for i, msg := range messages {
			assert.Equal(t, fmt.Sprintf("message %d", 4-i), msg.Content)
			assert.False(t, msg.HasAttachment)
			assert.Nil(t, msg.R2Key)
			assert.Nil(t, msg.Filename)
		}
	})

	t.Run("same timestamp falls back to insertion order", func(t *testing.T) {
		repo := NewMessageRepository(setupTestDB(t))

		for i := 0; i < 3; i++ {
			_, err := repo.Insert(&model.Message{
				BoardID:   "demo",
				Content:   fmt.Sprintf("message %d", i),
				CreatedAt: "2026-08-30T10:00:00Z",
			})
			require.NoError(t, err)
		}

		messages, err := repo.ByBoard("demo")
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "message 2", messages[0].Content)
		assert.Equal(t, "message 0", messages[2].Content)
	})

	t.Run("boards are isolated", func(t *testing.T) {
		repo := NewMessageRepository(setupTestDB(t))

		_, err := repo.Insert(&model.Message{BoardID: "one", Content: "a", CreatedAt: "2026-08-30T10:00:00Z"})
		require.NoError(t, err)
		_, err = repo.Insert(&model.Message{BoardID: "two", Content: "b", CreatedAt: "2026-08-30T10:00:00Z"})
		require.NoError(t, err)

		messages, err := repo.ByBoard("one")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "a", messages[0].Content)
	})

	t.Run("unknown board returns empty slice", func(t *testing.T) {
		repo := NewMessageRepository(setupTestDB(t))

		messages, err := repo.ByBoard("never-posted-to")
		require.NoError(t, err)
		require.NotNil(t, messages)
		assert.Len(t, messages, 0)
	})

	t.Run("attachment joined onto its message", func(t *testing.T) {
		repo := NewMessageRepository(setupTestDB(t))

		plainID, err := repo.Insert(&model.Message{
			BoardID:   "demo",
			Content:   "no file",
			CreatedAt: "2026-08-30T10:00:00Z",
		})
		require.NoError(t, err)

		withID, err := repo.Insert(&model.Message{
			BoardID:       "demo",
			Content:       "with file",
			CreatedAt:     "2026-08-30T10:00:01Z",
			HasAttachment: true,
		})
		require.NoError(t, err)

		err = repo.InsertAttachment(&model.Attachment{
			MessageID:  withID,
			R2Key:      "board_attachments/demo/token/a.txt",
			Filename:   "a.txt",
			UploadedAt: "2026-08-30T10:00:01Z",
		})
		require.NoError(t, err)

		messages, err := repo.ByBoard("demo")
		require.NoError(t, err)
		require.Len(t, messages, 2)

		assert.Equal(t, withID, messages[0].ID)
		assert.True(t, messages[0].HasAttachment)
		require.NotNil(t, messages[0].R2Key)
		assert.Equal(t, "board_attachments/demo/token/a.txt", *messages[0].R2Key)
		require.NotNil(t, messages[0].Filename)
		assert.Equal(t, "a.txt", *messages[0].Filename)

		assert.Equal(t, plainID, messages[1].ID)
		assert.False(t, messages[1].HasAttachment)
		assert.Nil(t, messages[1].R2Key)
	})
}
