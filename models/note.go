// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single note as returned by the notes service. Identity and
// timestamps are assigned by the server and never changed by the client.
type Note struct {
	// ID is the server-assigned note identifier.
	ID int64 `json:"id"`

	// Title is the note headline. Required and non-empty.
	Title string `json:"title"`

	// Content is the note body. Required and non-empty.
	Content string `json:"content"`

	// Archived reports whether the note is hidden from the active list.
	Archived bool `json:"archived"`

	// CreatedAt is set by the server on creation, in UTC.
	CreatedAt *Timestamp `json:"created_at,omitempty"`

	// UpdatedAt is set by the server on every modification.
	UpdatedAt *Timestamp `json:"updated_at,omitempty"`
}

// NewNote is the body of POST /notes/.
type NewNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteUpdate is the body of PUT /notes/{id}. Nil fields are omitted from the
// request and left unchanged by the server.
type NoteUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}

// NewNoteUpdate builds a [NoteUpdate] that only carries non-empty values.
// An empty string means "unchanged", never "clear this field".
func NewNoteUpdate(title, content string) NoteUpdate {
	var u NoteUpdate
	if title != "" {
		u.Title = &title
	}
	if content != "" {
		u.Content = &content
	}
	return u
}
