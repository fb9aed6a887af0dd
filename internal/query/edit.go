// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"context"

	"github.com/MKhiriev/go-notes-client/models"
)

// StartEdit opens the inline editor for note, seeded with its current title
// and content. An edit already in progress is dropped without saving.
func (n *Notes) StartEdit(note models.Note) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.edit = &EditState{NoteID: note.ID, Title: note.Title, Content: note.Content}
	n.notifyLocked()
}

// SetEditFields replaces the form values of the current edit. It is a no-op
// when nothing is being edited.
func (n *Notes) SetEditFields(title, content string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.edit == nil {
		return
	}
	n.edit.Title = title
	n.edit.Content = content
	n.notifyLocked()
}

// CancelEdit closes the inline editor without saving.
func (n *Notes) CancelEdit() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.edit == nil {
		return
	}
	n.edit = nil
	n.notifyLocked()
}

// Editing returns the current edit, if any.
func (n *Notes) Editing() (EditState, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.edit == nil {
		return EditState{}, false
	}
	return *n.edit, true
}

// SubmitEdit saves the current edit through [Notes.Update].
func (n *Notes) SubmitEdit(ctx context.Context) error {
	edit, ok := n.Editing()
	if !ok {
		return ErrNoEdit
	}
	return n.Update(ctx, edit.NoteID, edit.Title, edit.Content)
}
