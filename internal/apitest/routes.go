// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID)
	router.Use(s.withLogging)
	router.Use(s.record)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.register)
		r.Post("/auth/login", s.login)

		r.Route("/notes", func(r chi.Router) {
			r.Use(s.auth)
			r.Use(s.injectFailure)

			r.Get("/", s.listNotes)
			r.Post("/", s.createNote)
			r.Get("/{id}", s.getNote)
			r.Put("/{id}", s.updateNote)
			r.Delete("/{id}", s.deleteNote)
			r.Patch("/{id}/archive", s.setArchived(true))
			r.Patch("/{id}/unarchive", s.setArchived(false))
		})
	})

	return router
}

func currentUser(r *http.Request) string {
	username, _ := r.Context().Value(ctxKey{}).(string)
	return username
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, messages map[string]any) {
	body := map[string]any{"error": message}
	if messages != nil {
		body["messages"] = messages
	}
	writeJSON(w, status, body)
}
