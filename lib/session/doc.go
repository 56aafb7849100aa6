// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package session persists the signed-in user and bearer token
// between runs of the TicketHub TUI.
//
// The browser incarnation of this client kept two local-storage
// entries (a serialized user profile and a raw token). Here the
// equivalent is a single JSON file, written 0600 under a 0700
// directory, at $TICKETHUB_SESSION_FILE or
// ~/.config/tickethub/session.json. The [Store] interface keeps the
// persistence pluggable: the UI only ever asks for load, save, and
// clear.
package session
