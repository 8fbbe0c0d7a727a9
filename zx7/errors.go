// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package zx7

import "github.com/oldbytes/retropack"

var (
	ErrInputTooLarge        = retropack.ErrInputTooLarge
	ErrTruncatedStream      = retropack.ErrTruncatedStream
	ErrInvalidHeader        = retropack.ErrInvalidHeader
	ErrInvalidBackReference = retropack.ErrInvalidBackReference
)
