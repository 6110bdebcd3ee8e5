// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Certificate is a named encrypted record of labeled fields. Content is
// AES-CBC ciphertext produced by the client; the server cannot read it.
type Certificate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	GroupID   int64     `json:"group_id"`
	Content   string    `json:"content"`
	MarkColor *string   `json:"mark_color,omitempty"`
	Icon      *string   `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CertificateField is one labeled value inside decrypted certificate content.
type CertificateField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
