// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-notes client.
//
// All Msg* constants are human-readable strings shown to the user when an
// operation fails and the server did not provide a more specific message.
// Keeping them in one place ensures consistent wording throughout the UI.
package app

const (
	// MsgRegistrationFailed is shown when registration fails without a
	// server-provided reason.
	MsgRegistrationFailed = "Registration failed"

	// MsgLoginFailed is shown when login fails without a server-provided
	// reason.
	MsgLoginFailed = "Login failed"

	// MsgLoadNotesFailed is shown when the notes list cannot be fetched.
	MsgLoadNotesFailed = "Failed to load notes"

	// MsgAddNoteFailed is shown when a note cannot be created.
	MsgAddNoteFailed = "Failed to add note"

	// MsgUpdateNoteFailed is shown when a note cannot be updated.
	MsgUpdateNoteFailed = "Failed to update note"

	// MsgArchiveNoteFailed is shown when archiving or unarchiving fails.
	MsgArchiveNoteFailed = "Failed to archive note"

	// MsgDeleteNoteFailed is shown when a note cannot be deleted.
	MsgDeleteNoteFailed = "Failed to delete note"

	// MsgSessionExpired is shown on the login page after the server rejected
	// the stored credential.
	MsgSessionExpired = "Session expired, please log in again"

	// MsgTitleRequired and MsgContentRequired are client-side checks on the
	// create form.
	MsgTitleRequired   = "Title is required"
	MsgContentRequired = "Content is required"

	// MsgCredentialsRequired is shown when the username or password is empty.
	MsgCredentialsRequired = "Username and password are required"
)
