// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"unicode/utf16"
)

// PassphraseChecksum computes the polynomial rolling hash used by the diary
// passphrase gate and returns it as a decimal string.
//
// The passphrase is walked as UTF-16 code units (surrogate pairs count as two
// units) and folded into a signed 32-bit accumulator as h = h*31 + c with
// two's-complement wrap-around. The result is identical to the checksum the
// browser edition of the diary stores, so existing records keep verifying.
//
// This is NOT a cryptographic hash: it is trivially reversible and collides
// easily. It only backs a privacy lock.
//
// Example:
//
//	utils.PassphraseChecksum("hello") // "99162322"
func PassphraseChecksum(passphrase string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(passphrase)) {
		h = h*31 + int32(c)
	}

	return strconv.FormatInt(int64(h), 10)
}
