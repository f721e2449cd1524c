package models

// ShareCode is the renderable result of a successful share action. It exists
// only after the rolled token has been persisted; a code is never produced
// for a token the backend does not know about.
type ShareCode struct {
	NoteID string
	Token  string

	// Payload is the exact text embedded in the QR code.
	Payload string

	// QR is a terminal rendering of the code; PNG is the image form.
	QR  string
	PNG []byte
}
