// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoticeLevel is the severity of a security notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "Info"
	NoticeWarning NoticeLevel = "Warning"
	NoticeDanger  NoticeLevel = "Danger"
)

// Notice is a persisted security event kept for the administrator's review.
type Notice struct {
	ID        int64       `json:"id"`
	Level     NoticeLevel `json:"level"`
	Content   string      `json:"content"`
	IP        string      `json:"ip"`
	Location  string      `json:"location"`
	IsRead    bool        `json:"is_read"`
	CreatedAt time.Time   `json:"created_at"`
}
