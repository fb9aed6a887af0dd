// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/internal/utils"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
	bearerPrefix        = "Bearer "
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	apiRoot     *apiRootResolver
	credentials store.CredentialStore
	sessions    session.Publisher
	requestIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter].
//
// The API root is resolved on every request (see [config.EnvAPIURL]). The
// stored credential is read from credentials on every request as well. When
// the server answers 401 the credential is cleared and an
// [session.ReasonUnauthorized] event is published on sessions; the caller
// still receives the error.
//
// Returns an error if adapterCfg.APIURL is set but is not a valid URL.
func NewHTTPServerAdapter(
	adapterCfg config.ClientAdapter,
	credentials store.CredentialStore,
	sessions session.Publisher,
	logger *logger.Logger,
) (ServerAdapter, error) {
	apiRoot, err := newAPIRootResolver(adapterCfg.APIURL, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	h := &httpServerAdapter{
		client:      utils.NewHTTPClient(adapterCfg.RequestTimeout, logger),
		apiRoot:     apiRoot,
		credentials: credentials,
		sessions:    sessions,
		requestIDs:  utils.NewUUIDGenerator(),
		logger:      logger,
	}

	h.client.
		OnBeforeRequest(h.resolveURL).
		OnBeforeRequest(h.attachCredential).
		OnBeforeRequest(h.attachRequestID).
		OnAfterResponse(h.handleUnauthorized)

	return h, nil
}

// resolveURL turns the relative endpoint path into an absolute URL against
// the API root. resty keeps absolute URLs as they are.
func (h *httpServerAdapter) resolveURL(_ *resty.Client, r *resty.Request) error {
	if strings.Contains(r.URL, "://") {
		return nil
	}
	r.URL = h.apiRoot.Resolve() + r.URL
	return nil
}

func (h *httpServerAdapter) attachCredential(_ *resty.Client, r *resty.Request) error {
	token, ok, err := h.credentials.Get(r.Context())
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.attachCredential").
			Msg("failed to read credential, sending request without it")
		return nil
	}
	if ok {
		r.SetHeader(headerAuthorization, bearerPrefix+token)
	}
	return nil
}

func (h *httpServerAdapter) attachRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(headerRequestID) == "" {
		r.SetHeader(headerRequestID, h.requestIDs.Generate())
	}
	return nil
}

// handleUnauthorized never fails the response: the status is mapped into an
// error by the calling method.
func (h *httpServerAdapter) handleUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	ctx := context.WithoutCancel(resp.Request.Context())
	if err := h.credentials.Clear(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.handleUnauthorized").
			Msg("failed to clear credential")
	}

	h.logger.Info().Str("func", "httpServerAdapter.handleUnauthorized").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(headerRequestID)).
		Msg("session rejected by server")

	if h.sessions != nil {
		h.sessions.Publish(session.Event{Reason: session.ReasonUnauthorized})
	}
	return nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/register and decodes the issued token.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	return h.authenticate(ctx, "/auth/register", creds)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and decodes the issued token.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	return h.authenticate(ctx, "/auth/login", creds)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, creds models.Credentials) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err = decode(resp, &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode %s response: %w", path, err)
	}
	return token, nil
}

// ListNotes implements [ServerAdapter]. GET /notes/ with the filter rendered
// by [models.ListFilter.QueryParams].
func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.ListFilter) ([]models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(filter.QueryParams()).
		Get("/notes/")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.NotesResponse
	if err = decode(resp, &body); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}
	if body.Notes == nil {
		body.Notes = []models.Note{}
	}
	return body.Notes, nil
}

// GetNote implements [ServerAdapter]. GET /notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, id int64) (models.Note, error) {
	resp, err := h.noteRequest(ctx, id).Get("/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	return decodeNote(resp)
}

// CreateNote implements [ServerAdapter]. POST /notes/.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.NewNote) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		Post("/notes/")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	return decodeNote(resp)
}

// UpdateNote implements [ServerAdapter]. PUT /notes/{id} with the non-nil
// fields of update.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	resp, err := h.noteRequest(ctx, id).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	return decodeNote(resp)
}

// ArchiveNote implements [ServerAdapter]. PATCH /notes/{id}/archive.
func (h *httpServerAdapter) ArchiveNote(ctx context.Context, id int64) (models.Note, error) {
	resp, err := h.noteRequest(ctx, id).Patch("/notes/{id}/archive")
	if err != nil {
		return models.Note{}, fmt.Errorf("archive note request: %w", err)
	}
	return decodeNote(resp)
}

// UnarchiveNote implements [ServerAdapter]. PATCH /notes/{id}/unarchive.
func (h *httpServerAdapter) UnarchiveNote(ctx context.Context, id int64) (models.Note, error) {
	resp, err := h.noteRequest(ctx, id).Patch("/notes/{id}/unarchive")
	if err != nil {
		return models.Note{}, fmt.Errorf("unarchive note request: %w", err)
	}
	return decodeNote(resp)
}

// DeleteNote implements [ServerAdapter]. DELETE /notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.noteRequest(ctx, id).Delete("/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) noteRequest(ctx context.Context, id int64) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10))
}

func decodeNote(resp *resty.Response) (models.Note, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var body models.NoteResponse
	if err := decode(resp, &body); err != nil {
		return models.Note{}, fmt.Errorf("decode note response: %w", err)
	}
	return body.Note, nil
}

func decode(resp *resty.Response, v any) error {
	if len(resp.Body()) == 0 {
		return nil
	}
	return json.Unmarshal(resp.Body(), v)
}
