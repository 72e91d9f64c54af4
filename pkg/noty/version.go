// Package noty holds build-level metadata for the noty CLI.
package noty

// Version is the current noty release.
const Version = "0.1.0"
