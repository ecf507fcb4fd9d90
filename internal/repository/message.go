package repository

import (
	"errors"
	"fmt"

	"github.com/chalkboard-dev/chalkboard/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrNoInsertID = errors.New("no insert id returned")
)

type MessageRepository interface {
	Insert(msg *model.Message) (int64, error)
	InsertAttachment(att *model.Attachment) error
	ByBoard(boardID string) ([]model.BoardMessage, error)
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *messageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Insert(msg *model.Message) (int64, error) {
	query := `INSERT INTO board_messages (board_id, content, created_at, has_attachment)
	          VALUES ($1, $2, $3, $4)`

	res, err := r.db.Exec(query,
		msg.BoardID,
		msg.Content,
		msg.CreatedAt,
		msg.HasAttachment,
	)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoInsertID, err)
	}
	if id == 0 {
		return 0, ErrNoInsertID
	}

	return id, nil
}

func (r *messageRepository) InsertAttachment(att *model.Attachment) error {
	query := `INSERT INTO board_attachment (message_id, r2_key, filename, uploaded_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query,
		att.MessageID,
		att.R2Key,
		att.Filename,
		att.UploadedAt,
	)

	return err
}

// ByBoard returns every message for a board, newest first, with its
// attachment key/filename when one exists. Same-timestamp ties fall back
// to insertion order, also descending.
func (r *messageRepository) ByBoard(boardID string) ([]model.BoardMessage, error) {
	messages := []model.BoardMessage{}
	query := `SELECT m.id, m.board_id, m.content, m.created_at, m.has_attachment,
	                 a.r2_key, a.filename
	          FROM board_messages AS m
	          LEFT JOIN board_attachment AS a ON m.id = a.message_id
	          WHERE m.board_id = $1
	          ORDER BY m.created_at DESC, m.id DESC`

	err := r.db.Select(&messages, query, boardID)
	if err != nil {
		return nil, err
	}

	return messages, nil
}
