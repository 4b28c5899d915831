// Package http implements the web dashboard and its JSON API.
//
// Pages are server-rendered through the web package; the JSON routes under
// /api expose the same operations to scripts. Tracing, access logging,
// compression, language selection and session checks are middleware that run
// before a request reaches the service layer.
package http
