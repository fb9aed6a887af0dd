package query

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotes_StartEdit_ReplacesSilently(t *testing.T) {
	n, _ := newMockedNotes(t)

	a := models.Note{ID: 1, Title: "A title", Content: "A body"}
	b := models.Note{ID: 2, Title: "B title", Content: "B body"}

	n.StartEdit(a)
	n.SetEditFields("A edited", "A body edited")
	n.StartEdit(b)

	edit, ok := n.Editing()
	require.True(t, ok)
	assert.Equal(t, EditState{NoteID: 2, Title: "B title", Content: "B body"}, edit)
}

func TestNotes_CancelEdit(t *testing.T) {
	n, _ := newMockedNotes(t)

	n.StartEdit(models.Note{ID: 1, Title: "t", Content: "c"})
	n.CancelEdit()

	_, ok := n.Editing()
	assert.False(t, ok)
	assert.Nil(t, n.View().Edit)

	n.SetEditFields("ignored", "ignored")
	_, ok = n.Editing()
	assert.False(t, ok)
}

func TestNotes_SubmitEdit_ClearsEditOnSuccess(t *testing.T) {
	n, svc := newMockedNotes(t)
	ctx := context.Background()

	gomock.InOrder(
		svc.EXPECT().Update(ctx, int64(1), "new title", "c").Return(models.Note{ID: 1}, nil),
		svc.EXPECT().List(ctx, gomock.Any()).Return(notesWithIDs(1), nil),
	)

	n.StartEdit(models.Note{ID: 1, Title: "t", Content: "c"})
	n.SetEditFields("new title", "c")
	require.NoError(t, n.SubmitEdit(ctx))

	_, ok := n.Editing()
	assert.False(t, ok)
}

func TestNotes_SubmitEdit_KeepsEditOnFailure(t *testing.T) {
	n, svc := newMockedNotes(t)
	ctx := context.Background()

	boom := errors.New("title too long")
	svc.EXPECT().Update(ctx, int64(1), "t", "c").Return(models.Note{}, boom)

	n.StartEdit(models.Note{ID: 1, Title: "t", Content: "c"})
	assert.ErrorIs(t, n.SubmitEdit(ctx), boom)

	edit, ok := n.Editing()
	assert.True(t, ok)
	assert.Equal(t, int64(1), edit.NoteID)
	assert.ErrorIs(t, n.View().Mutations[MutationUpdate].Err, boom)
}

func TestNotes_SubmitEdit_NothingBeingEdited(t *testing.T) {
	n, _ := newMockedNotes(t)
	assert.ErrorIs(t, n.SubmitEdit(context.Background()), ErrNoEdit)
}
