package query

import (
	"errors"

	"github.com/MKhiriev/go-notes-client/models"
)

var (
	// ErrMutationPending is returned when a mutation is invoked while the
	// previous call of the same mutation has not settled yet.
	ErrMutationPending = errors.New("mutation already in progress")
	// ErrSuperseded is returned by a fetch whose result was discarded
	// because a newer fetch for the same filter was issued meanwhile.
	ErrSuperseded = errors.New("fetch superseded by a newer one")
	// ErrNoEdit is returned by SubmitEdit when no note is being edited.
	ErrNoEdit = errors.New("no note is being edited")
)

// Status is the state of a cached list.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Mutation names a write operation. Each one has its own pending flag and
// last error.
type Mutation string

const (
	MutationCreate  Mutation = "create"
	MutationUpdate  Mutation = "update"
	MutationArchive Mutation = "archive"
	MutationDelete  Mutation = "delete"
)

// Mutations lists every [Mutation].
var Mutations = []Mutation{MutationCreate, MutationUpdate, MutationArchive, MutationDelete}

// EditState is the single in-progress inline edit.
type EditState struct {
	NoteID  int64
	Title   string
	Content string
}

// MutationState is the pending flag and last error of one mutation.
type MutationState struct {
	Pending bool
	Err     error
}

// View is a snapshot of everything the notes page renders.
type View struct {
	Filter models.ListFilter
	// Notes is the last successful result for Filter; nil if there is none.
	Notes  []models.Note
	Status Status
	Err    error
	// Stale is set when the entry was invalidated and not yet refetched.
	Stale     bool
	Edit      *EditState
	Mutations map[Mutation]MutationState
}

// Loading reports whether there is nothing to show yet for the filter.
func (v View) Loading() bool {
	return v.Notes == nil && (v.Status == StatusPending || v.Status == StatusIdle)
}

// Busy reports whether m is in flight.
func (v View) Busy(m Mutation) bool {
	return v.Mutations[m].Pending
}

type entry struct {
	notes  []models.Note
	status Status
	err    error
	gen    uint64
	stale  bool
}
