// Package sqlclient holds the client-level types shared across the SQL
// wire-protocol client subpackages.
//
// The package currently carries the error types surfaced by configuration
// and construction paths; protocol-specific integrations live in
// subpackages such as retry.
package sqlclient
