// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for ssr using Cobra.
// It wires configuration, localization and logging, resolves the known_hosts
// path once per invocation, and delegates the work to internal/core.
package cli
