// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Fixed keys of the diary key-value storage. The names are shared with the
// browser edition of the diary.
const (
	// CredentialKey holds the passphrase checksum as a decimal string.
	CredentialKey = "diaryPassword"

	// EntriesKey holds the JSON array of [DiaryEntry], newest first.
	EntriesKey = "diaryEntries"
)
