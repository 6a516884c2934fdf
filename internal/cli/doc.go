// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the go-diary command tree. The root command opens the
// interactive diary; the subcommands move entries in and out of the local
// store without the terminal UI.
package cli
