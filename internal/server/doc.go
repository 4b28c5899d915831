// Package server runs the dashboard transports: the HTTP server with the
// pages and JSON API, the optional gRPC health server and the background
// workers. All of them stop together on SIGTERM, SIGINT or SIGQUIT.
package server
