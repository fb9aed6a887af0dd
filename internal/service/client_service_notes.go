// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/models"
)

type clientNotesService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientNotesService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientNotesService {
	return &clientNotesService{adapter: serverAdapter, logger: log}
}

func (s *clientNotesService) List(ctx context.Context, filter models.ListFilter) ([]models.Note, error) {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	notes, err := s.adapter.ListNotes(ctx, filter)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNotesService.List").Msg("failed to list notes")
		return nil, fmt.Errorf("list notes: %w", mapAdapterError(err))
	}
	return notes, nil
}

func (s *clientNotesService) Get(ctx context.Context, id int64) (models.Note, error) {
	if id <= 0 {
		return models.Note{}, ErrInvalidNoteID
	}

	note, err := s.adapter.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %d: %w", id, mapAdapterError(err))
	}
	return note, nil
}

func (s *clientNotesService) Create(ctx context.Context, title, content string) (models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return models.Note{}, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return models.Note{}, ErrEmptyContent
	}

	note, err := s.adapter.CreateNote(ctx, models.NewNote{Title: title, Content: content})
	if err != nil {
		s.logger.Err(err).Str("func", "clientNotesService.Create").Msg("failed to create note")
		return models.Note{}, fmt.Errorf("create note: %w", mapAdapterError(err))
	}
	return note, nil
}

func (s *clientNotesService) Update(ctx context.Context, id int64, title, content string) (models.Note, error) {
	if id <= 0 {
		return models.Note{}, ErrInvalidNoteID
	}

	update := models.NewNoteUpdate(title, content)
	if update.IsEmpty() {
		return models.Note{}, ErrNothingToUpdate
	}

	note, err := s.adapter.UpdateNote(ctx, id, update)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNotesService.Update").Int64("id", id).Msg("failed to update note")
		return models.Note{}, fmt.Errorf("update note %d: %w", id, mapAdapterError(err))
	}
	return note, nil
}

func (s *clientNotesService) Archive(ctx context.Context, id int64) (models.Note, error) {
	if id <= 0 {
		return models.Note{}, ErrInvalidNoteID
	}

	note, err := s.adapter.ArchiveNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("archive note %d: %w", id, mapAdapterError(err))
	}
	return note, nil
}

func (s *clientNotesService) Unarchive(ctx context.Context, id int64) (models.Note, error) {
	if id <= 0 {
		return models.Note{}, ErrInvalidNoteID
	}

	note, err := s.adapter.UnarchiveNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("unarchive note %d: %w", id, mapAdapterError(err))
	}
	return note, nil
}

func (s *clientNotesService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidNoteID
	}

	if err := s.adapter.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note %d: %w", id, mapAdapterError(err))
	}
	return nil
}
