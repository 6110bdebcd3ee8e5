// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line administrator client.
//
// Every authenticated command logs in, opens the requested group (unlocking
// it with a group password or TOTP code when needed), performs its work and
// logs out again. Certificate content is decrypted locally with the key
// derived from the master password; the server never sees it.
package client
