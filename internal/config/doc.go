// Package config loads the tuono.json project configuration and exposes
// the fixed filesystem conventions of a tuono project: route sources under
// src/routes, generated output under .tuono.
package config
