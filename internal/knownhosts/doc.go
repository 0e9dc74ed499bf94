// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package knownhosts reads, classifies and rewrites an OpenSSH known_hosts
// file. It knows nothing about output or configuration: callers resolve the
// file path once, load a Document, and decide what to print.
//
// Entry lines are never reformatted. Only whole lines are dropped, so the
// key type, key material and comment of every kept entry survive byte for byte.
package knownhosts
