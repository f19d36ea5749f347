// Package storage provides the pluggable transcript store used by chat
// sessions. Turns are kept in memory by default, or on disk with the
// pebble backend when a transcript directory is configured.
package storage
