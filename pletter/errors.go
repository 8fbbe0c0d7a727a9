// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package pletter

import "github.com/oldbytes/retropack"

var (
	ErrInputTooLarge        = retropack.ErrInputTooLarge
	ErrTruncatedStream      = retropack.ErrTruncatedStream
	ErrInvalidHeader        = retropack.ErrInvalidHeader
	ErrInvalidBackReference = retropack.ErrInvalidBackReference
	ErrInvalidQValue        = retropack.ErrInvalidQValue
)
