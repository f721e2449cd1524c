// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and merges application configuration for both the
// server and the terminal client.
//
// Values are collected from three sources, merged in priority order with
// mergo (earlier sources win for non-zero fields):
//
//  1. Environment variables (caarlos0/env struct tags)
//  2. Command-line flags
//  3. An optional JSON file whose path comes from sources 1 and 2
//
// The merged [StructuredConfig] is validated before use; the client obtains
// its own narrowed view via [GetClientConfig].
package config
