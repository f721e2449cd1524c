package models

import "time"

// Note is a single shareable text note stored in the "notes" collection.
//
// A note is visible to every user whose id appears in UserIDs. The list grows
// when another user imports the note through a scanned share code and never
// shrinks in any application flow.
type Note struct {
	// ID is the opaque backend-assigned identifier of the note. It is set
	// once at creation time and stable for the note's lifetime.
	ID string `json:"id,omitempty"`

	// Title and Content are free-form text, editable by any member.
	Title   string `json:"title"`
	Content string `json:"content"`

	// UserIDs holds the ids of all users with access to the note. It always
	// contains at least the creator's id. Order carries no meaning.
	UserIDs []string `json:"userIds"`

	// Token is the current share secret embedded in the note's QR payload.
	// It is regenerated on every share action and on every edit, which
	// invalidates any previously issued code for this note. Never empty
	// after creation.
	Token string `json:"token"`

	// SecurityPassword, when non-blank, gates viewing and editing of the
	// note behind an exact plaintext match. It is a visibility gate only:
	// the stored content is not encrypted.
	SecurityPassword string `json:"securityPassword,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table backing the notes
// collection.
func (n Note) TableName() string {
	return "notes"
}

// HasMember reports whether the given user id is present in UserIDs.
func (n Note) HasMember(userID string) bool {
	for _, id := range n.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// NoteUpdate describes a partial update of a note document. Nil fields are
// left untouched by the persistence layer; the server stamps UpdatedAt on
// every successful update.
type NoteUpdate struct {
	Title            *string   `json:"title,omitempty"`
	Content          *string   `json:"content,omitempty"`
	SecurityPassword *string   `json:"securityPassword,omitempty"`
	Token            *string   `json:"token,omitempty"`
	UserIDs          *[]string `json:"userIds,omitempty"`
}
