// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package retropack

import "errors"

// Package errors. Every codec subpackage re-exports these as type aliases so
// callers can errors.Is against a single sentinel set regardless of codec.
// Use errors.New for static messages, pkg/errors.Wrapf when values are needed.
var (
	// ErrInputTooLarge: input exceeds the codec's declared MaxInput.
	ErrInputTooLarge = errors.New("input exceeds codec maximum")
	// ErrTruncatedStream: decoder ran out of source bytes mid-token.
	ErrTruncatedStream = errors.New("compressed stream ended mid-token")
	// ErrInvalidHeader: malformed leading bytes (subset indicator, length prefix).
	ErrInvalidHeader = errors.New("malformed stream header")
	// ErrInvalidBackReference: decoded offset/length reads before the start
	// of the output or past its current end.
	ErrInvalidBackReference = errors.New("back-reference reads outside output")
	// ErrInvalidQValue: Pletter q outside 1..7.
	ErrInvalidQValue = errors.New("q outside 1..7")
	// ErrRoundTripMismatch: used by the validation harness only.
	ErrRoundTripMismatch = errors.New("decompress(compress(x)) != x")
)
