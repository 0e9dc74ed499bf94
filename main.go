// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for ssr.
//
// Usage:
//
//	ssr list
//	ssr <ip_or_hostname>
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/ssr/ui/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
