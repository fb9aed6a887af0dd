// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-client/models"
	"github.com/go-chi/chi/v5"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 80
	minPasswordLen = 6
	maxTitleLen    = 100
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", nil)
		return
	}

	messages := map[string]any{}
	if l := len(creds.Username); l < minUsernameLen || l > maxUsernameLen {
		messages["username"] = []string{"Length must be between 3 and 80."}
	}
	if len(creds.Password) < minPasswordLen {
		messages["password"] = []string{"Shorter than minimum length 6."}
	}
	if len(messages) > 0 {
		writeError(w, http.StatusBadRequest, "Validation failed", messages)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[creds.Username]; exists {
		writeError(w, http.StatusBadRequest, "Username already exists", nil)
		return
	}
	s.users[creds.Username] = creds.Password

	writeJSON(w, http.StatusCreated, models.TokenResponse{
		AccessToken: s.issueTokenLocked(creds.Username),
		Message:     "User registered successfully",
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Validation failed", nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if password, ok := s.users[creds.Username]; !ok || password != creds.Password {
		writeError(w, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: s.issueTokenLocked(creds.Username),
		Message:     "Login successful",
	})
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	owner := currentUser(r)

	var day string
	if raw := q.Get("date"); raw != "" {
		if _, err := time.Parse(models.DateLayout, raw); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.", nil)
			return
		}
		day = raw
	}

	var archived *bool
	if q.Has("archived") {
		switch strings.ToLower(q.Get("archived")) {
		case "true":
			v := true
			archived = &v
		case "false":
			v := false
			archived = &v
		default:
			writeError(w, http.StatusBadRequest, "Invalid archived filter. Use true or false.", nil)
			return
		}
	}

	keyword := strings.ToLower(q.Get("keyword"))

	s.mu.Lock()
	notes := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.owner != owner {
			continue
		}
		if day != "" && (n.note.CreatedAt == nil || n.note.CreatedAt.Format(models.DateLayout) != day) {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(n.note.Title), keyword) &&
			!strings.Contains(strings.ToLower(n.note.Content), keyword) {
			continue
		}
		if archived != nil && n.note.Archived != *archived {
			continue
		}
		notes = append(notes, n.note)
	}
	s.mu.Unlock()

	slices.SortFunc(notes, func(a, b models.Note) int { return int(a.ID - b.ID) })
	writeJSON(w, http.StatusOK, models.NotesResponse{Notes: notes})
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var body map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", nil)
		return
	}

	messages := map[string]any{}
	title, content := body["title"], body["content"]
	switch {
	case title == nil:
		messages["title"] = []string{"Missing data for required field."}
	case len(*title) == 0 || len(*title) > maxTitleLen:
		messages["title"] = []string{"Length must be between 1 and 100."}
	}
	if content == nil {
		messages["content"] = []string{"Missing data for required field."}
	}
	if len(messages) > 0 {
		writeError(w, http.StatusBadRequest, "validation failed", messages)
		return
	}

	s.mu.Lock()
	n := s.insertLocked(currentUser(r), *title, *content)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, models.NoteResponse{Note: n, Message: "Note created successfully"})
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	s.withNote(w, r, func(n *models.Note) (int, string) {
		return http.StatusOK, ""
	})
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	var body map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", nil)
		return
	}
	if t, ok := body["title"]; ok && (t == nil || len(*t) == 0 || len(*t) > maxTitleLen) {
		writeError(w, http.StatusBadRequest, "validation failed",
			map[string]any{"title": []string{"Length must be between 1 and 100."}})
		return
	}

	s.withNote(w, r, func(n *models.Note) (int, string) {
		if t := body["title"]; t != nil {
			n.Title = *t
		}
		if c := body["content"]; c != nil {
			n.Content = *c
		}
		n.UpdatedAt = models.NewTimestamp(s.now())
		return http.StatusOK, "Note updated successfully"
	})
}

func (s *Server) setArchived(archived bool) http.HandlerFunc {
	message := "Note archived successfully"
	if !archived {
		message = "Note restored successfully"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s.withNote(w, r, func(n *models.Note) (int, string) {
			n.Archived = archived
			return http.StatusOK, message
		})
	}
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := s.ownedNoteID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	delete(s.notes, id)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Note deleted successfully"})
}

// withNote runs fn on the caller's note under the lock and writes the note
// back, answering 404 if it does not exist or belongs to someone else.
func (s *Server) withNote(w http.ResponseWriter, r *http.Request, fn func(n *models.Note) (int, string)) {
	id, ok := s.ownedNoteID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	stored, ok := s.notes[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "Note not found", nil)
		return
	}
	status, message := fn(&stored.note)
	s.notes[id] = stored
	note := stored.note
	s.mu.Unlock()

	writeJSON(w, status, models.NoteResponse{Note: note, Message: message})
}

func (s *Server) ownedNoteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found", nil)
		return 0, false
	}

	s.mu.Lock()
	n, ok := s.notes[id]
	s.mu.Unlock()
	if !ok || n.owner != currentUser(r) {
		writeError(w, http.StatusNotFound, "Note not found", nil)
		return 0, false
	}
	return id, true
}
