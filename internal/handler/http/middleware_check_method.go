// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with a method it does not serve is answered by
// notFound instead of 405, so the dashboard never reveals which routes exist.
// A nil notFound writes a bare 404.
func CheckHTTPMethod(router *chi.Mux, notFound http.Handler) http.HandlerFunc {
	if notFound == nil {
		notFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// chi may report 405 for a path that a method-specific route
		// registered elsewhere still serves
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound.ServeHTTP(w, r)
	}
}
