package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, s *Server, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.URL+"/api/v1"+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestServer_RegisterLoginFlow(t *testing.T) {
	s := New(t)

	resp, body := do(t, s, http.MethodPost, "/auth/register", "", models.Credentials{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["access_token"])

	resp, body = do(t, s, http.MethodPost, "/auth/register", "", models.Credentials{Username: "alice", Password: "secret1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username already exists", body["error"])

	resp, _ = do(t, s, http.MethodPost, "/auth/login", "", models.Credentials{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = do(t, s, http.MethodPost, "/auth/login", "", models.Credentials{Username: "alice", Password: "secret1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["access_token"])
}

func TestServer_RegisterValidation(t *testing.T) {
	s := New(t)

	resp, body := do(t, s, http.MethodPost, "/auth/register", "", models.Credentials{Username: "al", Password: "123"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", body["error"])
	messages, ok := body["messages"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, messages, "username")
	assert.Contains(t, messages, "password")
}

func TestServer_NotesRequireToken(t *testing.T) {
	s := New(t)
	token := s.AddUser("alice", "secret1")

	resp, _ := do(t, s, http.MethodGet, "/notes/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, s, http.MethodGet, "/notes/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	s.RevokeToken(token)
	resp, _ = do(t, s, http.MethodGet, "/notes/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_ListFilters(t *testing.T) {
	s := New(t)
	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return day })
	token := s.AddUser("alice", "secret1")
	s.SeedNote("alice", "Buy milk", "2 liters", false)
	s.SeedNote("alice", "Old stuff", "milk crate", true)
	s.SeedNote("bob", "Milk for bob", "not visible", false)

	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 2},
		{query: "?keyword=MILK", want: 2},
		{query: "?archived=true", want: 1},
		{query: "?archived=false&keyword=milk", want: 1},
		{query: "?date=2024-05-01", want: 2},
		{query: "?date=2024-05-02", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, body := do(t, s, http.MethodGet, "/notes/"+tt.query, token, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			notes, _ := body["notes"].([]any)
			assert.Len(t, notes, tt.want)
		})
	}

	resp, _ := do(t, s, http.MethodGet, "/notes/?archived=maybe", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_NoteLifecycle(t *testing.T) {
	s := New(t)
	token := s.AddUser("alice", "secret1")

	resp, body := do(t, s, http.MethodPost, "/notes/", token, map[string]string{"title": "t", "content": "c"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	note := body["note"].(map[string]any)
	id := int64(note["id"].(float64))

	resp, _ = do(t, s, http.MethodPut, "/notes/1", token, map[string]string{"content": "c2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stored, ok := s.Note(id)
	require.True(t, ok)
	assert.Equal(t, "t", stored.Title)
	assert.Equal(t, "c2", stored.Content)

	resp, _ = do(t, s, http.MethodPatch, "/notes/1/archive", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stored, _ = s.Note(id)
	assert.True(t, stored.Archived)

	resp, _ = do(t, s, http.MethodDelete, "/notes/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, ok = s.Note(id)
	assert.False(t, ok)

	resp, body = do(t, s, http.MethodGet, "/notes/1", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Note not found", body["error"])
}

func TestServer_TitleTooLong(t *testing.T) {
	s := New(t)
	token := s.AddUser("alice", "secret1")

	long := make([]byte, maxTitleLen+1)
	for i := range long {
		long[i] = 'x'
	}
	resp, body := do(t, s, http.MethodPost, "/notes/", token, map[string]string{"title": string(long), "content": "c"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation failed", body["error"])
}

func TestServer_FailNotes(t *testing.T) {
	s := New(t)
	token := s.AddUser("alice", "secret1")

	s.FailNotes(http.StatusInternalServerError, "db down")
	resp, body := do(t, s, http.MethodGet, "/notes/", token, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "db down", body["error"])

	s.ClearFailure()
	resp, _ = do(t, s, http.MethodGet, "/notes/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	reqs := s.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "Bearer "+token, reqs[0].Authorization)
}

func TestServer_RequestIDEchoedAndRecorded(t *testing.T) {
	s := New(t)

	req, err := http.NewRequest(http.MethodGet, s.URL+"/api/v1/notes/", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-1")

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-1", resp.Header.Get("X-Request-ID"))
	reqs := s.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "req-1", reqs[0].RequestID)

	resp, _ = do(t, s, http.MethodGet, "/notes/", "", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServer_TimestampsUseZoneLessForm(t *testing.T) {
	s := New(t)
	s.SetClock(func() time.Time {
		return time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.UTC)
	})
	token := s.AddUser("alice", "secret1")
	s.SeedNote("alice", "Groceries", "milk", false)

	resp, body := do(t, s, http.MethodGet, "/notes/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	notes, ok := body["notes"].([]any)
	require.True(t, ok)
	require.Len(t, notes, 1)
	note := notes[0].(map[string]any)
	assert.Equal(t, "2025-01-02T03:04:05.123456", note["created_at"])
	assert.Equal(t, "2025-01-02T03:04:05.123456", note["updated_at"])
}
