// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the
// TicketHub client.
//
// Configuration is resolved from three sources with a fixed
// precedence: the --api-url flag, the TICKETHUB_API_URL environment
// variable, and finally the config file (TICKETHUB_CONFIG, or
// tickethub/config.yaml under the user config directory). The file is
// optional; the client refuses to start only when no source at all
// provides the API URL.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- api_url, session_file, log_file, default_event_type
//   - [Load] -- reads the file, tolerating its absence
//   - [Config.Resolve] -- applies the flag/env/file precedence
//   - [Config.Validate] -- rejects a missing or malformed API URL
//
// This package depends on no other TicketHub packages.
package config
