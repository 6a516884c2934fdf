// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewSessionID returns a time-ordered identifier for an unlock session.
// It falls back to a random v4 UUID when a v7 one cannot be generated.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
