// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/models"
)

type clientAuthService struct {
	credentials store.CredentialStore
	adapter     adapter.ServerAdapter
	logger      *logger.Logger
}

func NewClientAuthService(credentials store.CredentialStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{credentials: credentials, adapter: serverAdapter, logger: log}
}

func (a *clientAuthService) Register(ctx context.Context, username, password string) error {
	creds, err := newCredentials(username, password)
	if err != nil {
		return err
	}

	resp, err := a.adapter.Register(ctx, creds)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err = a.storeToken(ctx, resp); err != nil {
		return err
	}

	a.logger.Info().Str("func", "clientAuthService.Register").Str("username", creds.Username).Msg("registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) error {
	creds, err := newCredentials(username, password)
	if err != nil {
		return err
	}

	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	if err = a.storeToken(ctx, resp); err != nil {
		return err
	}

	a.logger.Info().Str("func", "clientAuthService.Login").Str("username", creds.Username).Msg("logged in")
	return nil
}

func (a *clientAuthService) storeToken(ctx context.Context, resp models.TokenResponse) error {
	if strings.TrimSpace(resp.AccessToken) == "" {
		return ErrNoTokenInResponse
	}
	if err := a.credentials.Set(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("%w: %w", ErrStoringToken, err)
	}
	return nil
}

func newCredentials(username, password string) (models.Credentials, error) {
	creds := models.Credentials{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if creds.Username == "" || creds.Password == "" {
		return models.Credentials{}, ErrEmptyCredentials
	}
	return creds, nil
}
