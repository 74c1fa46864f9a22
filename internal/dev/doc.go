// Package dev implements the development server: it watches the routes
// directory, re-runs the bundler on changes, and pushes hot reload
// notifications to connected browsers over WebSocket.
package dev
