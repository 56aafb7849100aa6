// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the TicketHub client. Built on bubbletea (Elm architecture), these
// components handle common patterns like dropdown overlays, fuzzy
// search, single-line text fields, markdown rendering, change
// animation, and ANSI-aware text manipulation.
//
// The booking UI (lib/bookingui) imports this package for consistent
// look and behavior: same theme, same keyboard conventions, same
// overlay mechanics. The booking UI owns its own data source, layout,
// and domain-specific rendering.
package tui
