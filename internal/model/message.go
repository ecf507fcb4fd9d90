package model

// Message is one row of board_messages. A board has no row of its own; it
// is simply the set of messages sharing a board_id.
type Message struct {
	ID            int64  `db:"id" json:"id"`
	BoardID       string `db:"board_id" json:"board_id"`
	Content       string `db:"content" json:"content"` // opaque payload, clients may compress it
	CreatedAt     string `db:"created_at" json:"created_at"`
	HasAttachment bool   `db:"has_attachment" json:"has_attachment"`
}

// BoardMessage is a list-query row: a message left-joined with its
// attachment, if one exists. R2Key and Filename are null otherwise.
type BoardMessage struct {
	Message
	R2Key    *string `db:"r2_key" json:"r2_key"`
	Filename *string `db:"filename" json:"filename"`
}
