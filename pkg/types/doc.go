// Package types defines the Note record, the NoteStore interface, store
// configuration, and the standard errors for the noty notes tool.
package types
