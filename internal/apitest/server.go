// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest provides an in-memory fake of the notes service REST API
// for tests. It follows the service contract closely enough to drive the
// adapter, service and query layers end to end: JWT session tokens, per-user
// notes, keyword/archived/date filters and the {error, messages} error body.
package apitest

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/models"
)

const signingKey = "apitest-signing-key"

// Request is one request seen by the fake.
type Request struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	RequestID     string
}

// Server is a running fake notes API. Its URL is the API origin; routes live
// under /api/v1.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]string // username -> password
	revoked  map[string]bool
	notes    map[int64]ownedNote
	nextID   int64
	requests []Request
	failure  *failure
	now      func() time.Time
	logger   *logger.Logger
}

type ownedNote struct {
	owner string
	note  models.Note
}

type failure struct {
	status  int
	message string
}

// New starts a fake server and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		users:   map[string]string{},
		revoked: map[string]bool{},
		notes:   map[int64]ownedNote{},
		now:     time.Now,
		logger:  logger.Nop(),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// SetClock replaces the time source used for created_at/updated_at.
func (s *Server) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetLogger makes the server log every request to l.
func (s *Server) SetLogger(l *logger.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = l
}

func (s *Server) log() *logger.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logger
}

// AddUser registers username directly and returns a valid token for it.
func (s *Server) AddUser(username, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
	return s.issueTokenLocked(username)
}

// SeedNote stores a note owned by username and returns it.
func (s *Server) SeedNote(username, title, content string, archived bool) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.insertLocked(username, title, content)
	n.Archived = archived
	s.notes[n.ID] = ownedNote{owner: username, note: n}
	return n
}

// Note returns the stored note id regardless of owner.
func (s *Server) Note(id int64) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	return n.note, ok
}

// RevokeToken makes token fail authentication from now on.
func (s *Server) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
}

// FailNotes makes every /notes request answer status with message until
// [Server.ClearFailure] is called.
func (s *Server) FailNotes(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = &failure{status: status, message: message}
}

func (s *Server) ClearFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = nil
}

// Requests returns a copy of the request log.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) insertLocked(owner, title, content string) models.Note {
	s.nextID++
	now := s.now()
	n := models.Note{ID: s.nextID, Title: title, Content: content, CreatedAt: models.NewTimestamp(now), UpdatedAt: models.NewTimestamp(now)}
	s.notes[n.ID] = ownedNote{owner: owner, note: n}
	return n
}
