package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/chalkboard-dev/chalkboard/internal/model"
	"github.com/chalkboard-dev/chalkboard/internal/repository"
)

// AttachmentInput is the attachment metadata a client supplies when
// posting a message. The object itself is expected to already be in
// storage under R2Key (via the upload broker), but nothing verifies that.
type AttachmentInput struct {
	R2Key    string
	Filename string
}

type MessageService interface {
	Messages(boardID string) ([]model.BoardMessage, error)
	Create(boardID, content string, att *AttachmentInput) (int64, error)
}

type messageService struct {
	repo repository.MessageRepository
}

func NewMessageService(repo repository.MessageRepository) *messageService {
	return &messageService{repo: repo}
}

// Messages returns the full history of a board, newest first. There is no
// pagination; boards are expected to stay small.
func (s *messageService) Messages(boardID string) ([]model.BoardMessage, error) {
	messages, err := s.repo.ByBoard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list board %q: %w", boardID, err)
	}
	return messages, nil
}

// Create inserts the message row and, if attachment metadata was supplied,
// the attachment row referencing it. The two inserts are sequential, not
// atomic: when the second fails the message row stays committed with
// has_attachment set and no attachment row. The caller gets an error
// either way; readers of that board will see the orphaned message.
func (s *messageService) Create(boardID, content string, att *AttachmentInput) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	id, err := s.repo.Insert(&model.Message{
		BoardID:       boardID,
		Content:       content,
		CreatedAt:     now,
		HasAttachment: att != nil,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create message: %w", err)
	}

	if att != nil {
		err = s.repo.InsertAttachment(&model.Attachment{
			MessageID:  id,
			R2Key:      att.R2Key,
			Filename:   att.Filename,
			UploadedAt: now,
		})
		if err != nil {
			slog.Error("attachment insert failed, message row is orphaned",
				"board_id", boardID,
				"message_id", id,
				"r2_key", att.R2Key,
				"error", err,
			)
			return 0, fmt.Errorf("failed to create attachment for message %d: %w", id, err)
		}
	}

	return id, nil
}
