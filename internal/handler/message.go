package handler

import (
	"log/slog"
	"net/http"

	"github.com/chalkboard-dev/chalkboard/internal/service"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

type createMessageRequest struct {
	Content    string             `json:"content" validate:"required"`
	Attachment *attachmentPayload `json:"attachment"`
}

type attachmentPayload struct {
	R2Key    string `json:"r2Key" validate:"required"`
	Filename string `json:"filename" validate:"required"`
}

// List returns the full message history of a board, newest first. An
// unknown board is an empty board, not an error.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	boardID := r.PathValue("boardId")
	if boardID == "" {
		writeError(w, http.StatusBadRequest, "missing board id")
		return
	}

	messages, err := h.messageService.Messages(boardID)
	if err != nil {
		slog.Error("failed to list messages", "error", err, "board_id", boardID)
		writeError(w, http.StatusInternalServerError, "failed to load messages")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	boardID := r.PathValue("boardId")
	if boardID == "" {
		writeError(w, http.StatusBadRequest, "missing board id")
		return
	}

	var body createMessageRequest
	if err := decodeValidate(w, r, &body); err != nil {
		return
	}

	var att *service.AttachmentInput
	if body.Attachment != nil {
		att = &service.AttachmentInput{
			R2Key:    body.Attachment.R2Key,
			Filename: body.Attachment.Filename,
		}
	}

	id, err := h.messageService.Create(boardID, body.Content, att)
	if err != nil {
		// The message row may have been committed even though we report a
		// failure here (attachment insert is a separate statement).
		slog.Error("failed to create message", "error", err, "board_id", boardID)
		writeError(w, http.StatusInternalServerError, "failed to create message")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}
