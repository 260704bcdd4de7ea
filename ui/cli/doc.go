// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface using Cobra. It loads
// configuration, opens the store and hands it to the TUI, or prints every
// page when stdout is not a terminal. CLI code stays thin and delegates to
// the internal packages.
package cli
