// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Runner executes one command line request against the vault.
type Runner interface {
	// Run performs cmd and writes its result to the configured output.
	Run(ctx context.Context, cmd Command) error
}

var _ Runner = (*App)(nil)
