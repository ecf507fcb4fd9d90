package handler

import (
	"log/slog"
	"net/http"

	"github.com/chalkboard-dev/chalkboard/internal/service"
)

type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
	}
}

type uploadRequest struct {
	BoardID     string `json:"boardId" validate:"required"`
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

type downloadResponse struct {
	PresignedURL string `json:"presignedUrl"`
}

// Upload issues a pre-signed PUT URL for one new object. Message content
// never passes through here; the client uploads bytes to storage directly
// and references the returned key when it posts the message.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var body uploadRequest
	if err := decodeValidate(w, r, &body); err != nil {
		return
	}

	grant, err := h.attachmentService.GrantUpload(body.BoardID, body.FileName, body.ContentType)
	if err != nil {
		slog.Error("failed to grant upload", "error", err, "board_id", body.BoardID)
		writeError(w, http.StatusInternalServerError, "failed to authorize upload")
		return
	}

	writeJSON(w, http.StatusOK, grant)
}

// Download issues a pre-signed GET URL for an existing key. Whether the
// key actually refers to a stored object is not checked.
func (h *AttachmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing required query parameter: key")
		return
	}

	url, err := h.attachmentService.GrantDownload(key)
	if err != nil {
		slog.Error("failed to grant download", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, "failed to authorize download")
		return
	}

	writeJSON(w, http.StatusOK, downloadResponse{PresignedURL: url})
}
