// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package mdkrle

import "github.com/oldbytes/retropack"

// Package errors, aliased from the shared taxonomy so callers can
// errors.Is against a single sentinel set regardless of codec.
var (
	ErrInputTooLarge   = retropack.ErrInputTooLarge
	ErrTruncatedStream = retropack.ErrTruncatedStream
)
