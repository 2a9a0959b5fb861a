package main

import (
	"context"
	"net/http"
	"time"

	"booksdemo/internal/author"
	"booksdemo/internal/book"
)

// newRouter registers the health probes and the resource routes. ping reports
// whether the database is reachable.
func newRouter(authors *author.Service, books *book.Service, ping func(context.Context) error) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	author.NewHTTPHandler(authors).Register(router)
	book.NewHTTPHandler(books).Register(router)

	return router
}
