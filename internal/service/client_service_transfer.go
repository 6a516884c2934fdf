// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

type clientTransferService struct {
	storage   store.KeyValueStorage
	gate      ClientGateService
	validator validators.Validator
}

// NewClientTransferService wires a [ClientTransferService] to the local store.
func NewClientTransferService(storage store.KeyValueStorage, gate ClientGateService, validator validators.Validator) ClientTransferService {
	return &clientTransferService{storage: storage, gate: gate, validator: validator}
}

func (t *clientTransferService) Export(ctx context.Context, passphrase string) ([]models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	if err := t.checkPassphrase(ctx, passphrase); err != nil {
		log.Err(err).Str("func", "*clientTransferService.Export").Msg("export refused")
		return nil, err
	}

	entries, err := readEntries(ctx, t.storage)
	if err != nil {
		log.Err(err).Str("func", "*clientTransferService.Export").Msg("error reading entries")
		return nil, err
	}

	log.Info().Str("func", "*clientTransferService.Export").Int("count", len(entries)).Msg("entries exported")
	return entries, nil
}

// checkPassphrase verifies passphrase without enrolling it when the store
// has no record yet.
func (t *clientTransferService) checkPassphrase(ctx context.Context, passphrase string) error {
	passphrase = strings.TrimSpace(passphrase)
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	enrolled, err := t.gate.IsEnrolled(ctx)
	if err != nil {
		return err
	}
	if !enrolled {
		return ErrNotEnrolled
	}

	ok, err := t.gate.Verify(ctx, passphrase)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassphrase
	}
	return nil
}

func (t *clientTransferService) Import(ctx context.Context, src store.KeyValueStorage, force bool) (ImportSummary, error) {
	log := logger.FromContext(ctx)
	var summary ImportSummary

	credential, err := src.GetItem(ctx, models.CredentialKey)
	hasCredential := err == nil
	if err != nil && !errors.Is(err, store.ErrItemNotFound) {
		return summary, fmt.Errorf("read source credential: %w", err)
	}

	rawEntries, err := src.GetItem(ctx, models.EntriesKey)
	hasEntries := err == nil
	if err != nil && !errors.Is(err, store.ErrItemNotFound) {
		return summary, fmt.Errorf("read source entries: %w", err)
	}

	var entries []models.DiaryEntry
	if hasEntries {
		if entries, err = decodeEntries(rawEntries); err != nil {
			return summary, err
		}
		for _, e := range entries {
			if err = t.validator.Validate(ctx, e); err != nil {
				return summary, fmt.Errorf("%w: entry %d: %w", ErrValidation, e.ID, err)
			}
		}
	}

	if hasCredential {
		enrolled, err := t.gate.IsEnrolled(ctx)
		if err != nil {
			return summary, err
		}
		if enrolled && !force {
			return summary, ErrAlreadyEnrolled
		}
	}

	// entries first: a half-finished import never leaves a new passphrase
	// guarding the old collection
	if hasEntries {
		if err = writeEntries(ctx, t.storage, entries); err != nil {
			log.Err(err).Str("func", "*clientTransferService.Import").Msg("error writing entries")
			return summary, err
		}
		summary.Entries = len(entries)
	}

	if hasCredential {
		if err = t.storage.SetItem(ctx, models.CredentialKey, credential); err != nil {
			log.Err(err).Str("func", "*clientTransferService.Import").Msg("error writing credential")
			return summary, fmt.Errorf("%w: write credential: %w", ErrStorageUnavailable, err)
		}
		summary.CredentialImported = true
	}

	log.Info().Str("func", "*clientTransferService.Import").
		Bool("credential", summary.CredentialImported).
		Int("entries", summary.Entries).
		Msg("import finished")
	return summary, nil
}
