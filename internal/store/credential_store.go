// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/logger"
)

type sqliteCredentialStore struct {
	db     *DB
	slot   string
	logger *logger.Logger
	now    func() time.Time
}

// NewCredentialStore returns a [CredentialStore] backed by the slots table of
// db. The token lives in the [SessionTokenSlot] row.
func NewCredentialStore(db *DB, log *logger.Logger) CredentialStore {
	return &sqliteCredentialStore{
		db:     db,
		slot:   SessionTokenSlot,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqliteCredentialStore) Set(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	query, args, err := upsertSlotQuery(s.slot, token, s.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteCredentialStore.Set").
			Str("slot", s.slot).
			Msg("failed to save session token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteCredentialStore) Get(ctx context.Context) (string, bool, error) {
	query, args, err := selectSlotQuery(s.slot)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteCredentialStore.Get").
			Str("slot", s.slot).
			Msg("failed to read session token")
		return "", false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return token, token != "", nil
}

func (s *sqliteCredentialStore) Clear(ctx context.Context) error {
	query, args, err := deleteSlotQuery(s.slot)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteCredentialStore.Clear").
			Str("slot", s.slot).
			Msg("failed to clear session token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
