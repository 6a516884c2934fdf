// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the diary runtime: it opens the local storage,
// wires the services on top of it and hands them to the terminal UI or to a
// one-shot command.
package client
