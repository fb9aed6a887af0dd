// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query keeps the client's view of the note list in sync with the
// server.
//
// [Notes] caches one result per [models.ListFilter] in a bounded LRU. Every
// fetch for a filter gets a new generation; a response is committed only if
// its generation is still the newest one issued for that filter, so a slow
// response can never overwrite a newer one. Mutations (create, update,
// archive, delete) never patch the cache: on success they invalidate the
// active filter and refetch it.
//
// Notes is safe for concurrent use. Blocking calls are meant to run off the
// UI goroutine; the UI learns about changes through [Notes.Subscribe] and
// reads the current state through [Notes.View].
package query
