// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// UI defines the interactive front end started by the bare vault command.
type UI interface {
	// Run blocks until the user quits.
	Run(ctx context.Context) error
}
