// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and client services into a single process
// lifecycle: sign-in, the optional account security gate, and the main note
// loop, repeated on logout.
package client
