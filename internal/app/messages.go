// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible wording shared by the terminal UI
// and the command line.
//
// Msg* constants are shown verbatim to the user. Keeping them in one place
// keeps the wording consistent between the TUI and the CLI commands.
package app

const (
	// MsgEnterPassphrase is shown when the passphrase field is blank.
	MsgEnterPassphrase = "Please enter a password! 🔑"

	// MsgWrongPassphrase is shown when the passphrase does not match.
	MsgWrongPassphrase = "Incorrect password! Try again 🔐"

	// MsgWelcome is shown after a successful unlock.
	MsgWelcome = "✨ Welcome to your diary!"

	// MsgPassphraseSet is shown when the first unlock enrolled the passphrase.
	MsgPassphraseSet = "✨ Password set. Welcome to your diary!"

	// MsgConfirmLock asks before the diary is locked.
	MsgConfirmLock = "🔒 Lock your diary? You'll need your password to unlock it again."

	// MsgConfirmDelete asks before an entry is deleted.
	MsgConfirmDelete = "🗑️ Are you sure you want to delete this entry? This cannot be undone!"

	// MsgWriteSomething is shown when an entry is saved without content.
	MsgWriteSomething = "✍️ Please write something in your diary!"

	// MsgUnknownMood is shown when the mood is not one of the known symbols.
	MsgUnknownMood = "🤷 Please pick a mood from the list!"

	// MsgImageTooLarge is shown when the chosen image exceeds the size limit.
	MsgImageTooLarge = "📷 Image size should be less than 5MB!"

	// MsgNotAnImage is shown when the chosen file is not an image.
	MsgNotAnImage = "📷 Please choose an image file!"

	// MsgImageUnreadable is shown when the chosen image cannot be read.
	MsgImageUnreadable = "📷 Could not read that image."

	// MsgImageAttached is shown when an image has been staged.
	MsgImageAttached = "📷 Image attached"

	// MsgImageRemoved is shown when the staged image is dropped.
	MsgImageRemoved = "📷 Image removed"

	// MsgEntrySaved is shown after an entry is created or updated.
	MsgEntrySaved = "💾 Entry saved successfully!"

	// MsgEntryDeleted is shown after an entry is deleted.
	MsgEntryDeleted = "🗑️ Entry deleted successfully!"

	// MsgEntryMissing is shown when the entry being edited no longer exists.
	MsgEntryMissing = "🔍 That entry no longer exists."

	// MsgEntryCopied is shown after an entry was copied to the clipboard.
	MsgEntryCopied = "📋 Entry copied to clipboard"

	// MsgClipboardFailed is shown when the clipboard is not available.
	MsgClipboardFailed = "📋 Could not copy to clipboard"

	// MsgStorageUnavailable is shown when the diary could not be saved.
	MsgStorageUnavailable = "⚠️ Could not save your diary. Your last change was not kept."

	// MsgStorageCorrupt is shown when stored entries cannot be read.
	MsgStorageCorrupt = "⚠️ Your saved entries could not be read."

	// MsgNoEntries is the empty state of the entry list.
	MsgNoEntries = "📖 No entries yet. Start writing your first diary entry!"

	// MsgUnexpected is shown for errors without a dedicated message.
	MsgUnexpected = "⚠️ Something went wrong"
)
