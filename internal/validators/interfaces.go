// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before the service layer acts on
// it: certificate records, group names, the administrator bootstrap request
// and password-generation preferences. Violations are sentinel errors that
// services wrap into their invalid-data error.
package validators

import "context"

// Validator validates a value, optionally only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
