// Package utils provides general-purpose helpers used across the vault:
// random password generation and time-ordered identifiers.
package utils
