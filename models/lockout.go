// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginFailRecord is a single failed login attempt.
type LoginFailRecord struct {
	Date     time.Time `json:"date"`
	IP       string    `json:"ip"`
	Location string    `json:"location"`
}

// LockoutStatus is the public view of the login lockout tracker.
type LockoutStatus struct {
	Records          []LoginFailRecord `json:"records"`
	IsLocked         bool              `json:"is_locked"`
	RetriesRemaining int               `json:"retries_remaining"`
}
