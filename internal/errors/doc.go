// Package errors provides structured errors for the tuono toolchain.
//
// Every fatal error carries a registered code (E001, E101, ...) with a
// category, a human explanation, and an optional fix suggestion. The CLI
// prints these with Format; FormatCompact is used in logs.
package errors
