// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui implements the terminal UI. Presentation and input handling
// live here; paging and decoding are provided by the internal packages.
package tui
