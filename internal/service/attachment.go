package service

import (
	"fmt"

	"github.com/chalkboard-dev/chalkboard/internal/storage"
	"github.com/google/uuid"
)

// UploadGrant is the upload broker's response: a time-limited PUT URL and
// the key the client must echo back when it later posts the message.
type UploadGrant struct {
	PresignedURL string `json:"presignedUrl"`
	R2Key        string `json:"r2Key"`
}

type AttachmentService interface {
	GrantUpload(boardID, fileName, contentType string) (*UploadGrant, error)
	GrantDownload(key string) (string, error)
}

type attachmentService struct {
	presigner storage.Presigner
}

func NewAttachmentService(presigner storage.Presigner) *attachmentService {
	return &attachmentService{presigner: presigner}
}

// GrantUpload issues a write authorization for a freshly generated key.
// The random token segment makes the key unique per request, so the same
// filename can be uploaded any number of times without collision.
func (s *attachmentService) GrantUpload(boardID, fileName, contentType string) (*UploadGrant, error) {
	key := fmt.Sprintf("board_attachments/%s/%s/%s", boardID, uuid.NewString(), fileName)

	url, err := s.presigner.PresignUpload(key, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to grant upload for %q: %w", key, err)
	}

	return &UploadGrant{PresignedURL: url, R2Key: key}, nil
}

// GrantDownload issues a read authorization for a key the caller already
// knows. There is no ownership or existence check: anyone holding a key
// can obtain a URL for it, including keys nothing was ever written under.
// That is a deliberate trade-off carried over from the system's design.
func (s *attachmentService) GrantDownload(key string) (string, error) {
	url, err := s.presigner.PresignDownload(key)
	if err != nil {
		return "", fmt.Errorf("failed to grant download for %q: %w", key, err)
	}
	return url, nil
}
