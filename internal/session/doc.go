// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session derives the authentication state of the client from the
// credential store and carries session events from the transport layer to the
// code that owns navigation.
//
// The HTTP client never navigates on its own. When the server rejects the
// credential it clears the store and publishes an [Event] on a [Notifier];
// the terminal UI drains [Notifier.Events] and routes back to the login page
// through [Gate.Resolve].
package session
