package model

// Attachment links a message to an object stored under r2_key. One-to-one
// with its message, written after the message row in a separate statement.
type Attachment struct {
	ID         int64  `db:"id" json:"id"`
	MessageID  int64  `db:"message_id" json:"message_id"`
	R2Key      string `db:"r2_key" json:"r2_key"`
	Filename   string `db:"filename" json:"filename"` // client-supplied, unsanitized
	UploadedAt string `db:"uploaded_at" json:"uploaded_at"`
}
