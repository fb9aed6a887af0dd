package models

// NotesResponse is the body of GET /notes/.
type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// NoteResponse is the body returned by every single-note endpoint
// (create, get, update, archive, unarchive).
type NoteResponse struct {
	Note    Note   `json:"note"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the body of DELETE /notes/{id}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body produced by the notes service. Messages
// holds per-field validation details when the server provides them.
type ErrorResponse struct {
	Error    string         `json:"error"`
	Message  string         `json:"message,omitempty"`
	Messages map[string]any `json:"messages,omitempty"`
}
