// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyCredentials  = errors.New("username and password are required")
	ErrNoTokenInResponse = errors.New("server response has no access token")
	ErrRegisterOnServer  = errors.New("error registering on server")
	ErrLoginOnServer     = errors.New("error logging in on server")
	ErrStoringToken      = errors.New("error storing session token")

	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyContent    = errors.New("content is required")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrInvalidNoteID   = errors.New("invalid note id")

	ErrNoteNotFound      = errors.New("note not found")
	ErrSessionExpired    = errors.New("session expired")
	ErrInvalidNoteData   = errors.New("invalid note data")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrServerUnavailable = errors.New("notes service unavailable")
)
