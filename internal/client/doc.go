// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault command-line application.
//
// It wires configuration, the log file, the storage backend and the vault
// services into a cobra command tree. The bare command starts the terminal
// UI; the subcommands cover the same operations for scripts.
package client
