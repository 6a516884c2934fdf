// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

type clientGateService struct {
	storage store.KeyValueStorage

	mu    sync.RWMutex
	state GateState
}

// NewClientGateService returns a [ClientGateService] in the [Locked] state.
func NewClientGateService(storage store.KeyValueStorage) ClientGateService {
	return &clientGateService{storage: storage, state: Locked}
}

func (g *clientGateService) IsEnrolled(ctx context.Context) (bool, error) {
	_, err := g.storedChecksum(ctx)
	if errors.Is(err, store.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *clientGateService) Enroll(ctx context.Context, passphrase string) error {
	log := logger.FromContext(ctx)

	enrolled, err := g.IsEnrolled(ctx)
	if err != nil {
		return err
	}
	if enrolled {
		log.Debug().Str("func", "*clientGateService.Enroll").Msg("passphrase already enrolled, keeping existing record")
		return nil
	}

	if err = g.storage.SetItem(ctx, models.CredentialKey, utils.PassphraseChecksum(passphrase)); err != nil {
		log.Err(err).Str("func", "*clientGateService.Enroll").Msg("error saving passphrase record")
		return fmt.Errorf("%w: save passphrase: %w", ErrStorageUnavailable, err)
	}

	log.Info().Str("func", "*clientGateService.Enroll").Msg("passphrase enrolled")
	return nil
}

func (g *clientGateService) Verify(ctx context.Context, passphrase string) (bool, error) {
	stored, err := g.storedChecksum(ctx)
	if errors.Is(err, store.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return stored == utils.PassphraseChecksum(passphrase), nil
}

func (g *clientGateService) Unlock(ctx context.Context, passphrase string) (UnlockOutcome, error) {
	log := logger.FromContext(ctx)

	passphrase = strings.TrimSpace(passphrase)
	if passphrase == "" {
		return NotUnlocked, ErrEmptyPassphrase
	}

	enrolled, err := g.IsEnrolled(ctx)
	if err != nil {
		return NotUnlocked, err
	}

	outcome := Verified
	if !enrolled {
		if err = g.Enroll(ctx, passphrase); err != nil {
			return NotUnlocked, err
		}
		outcome = Enrolled
	} else {
		ok, err := g.Verify(ctx, passphrase)
		if err != nil {
			return NotUnlocked, err
		}
		if !ok {
			log.Warn().Str("func", "*clientGateService.Unlock").Msg("wrong passphrase")
			return NotUnlocked, ErrWrongPassphrase
		}
	}

	g.mu.Lock()
	g.state = Unlocked
	g.mu.Unlock()

	log.Info().Str("func", "*clientGateService.Unlock").Bool("enrolled", outcome == Enrolled).Msg("diary unlocked")
	return outcome, nil
}

func (g *clientGateService) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Locked
}

func (g *clientGateService) State() GateState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *clientGateService) storedChecksum(ctx context.Context) (string, error) {
	value, err := g.storage.GetItem(ctx, models.CredentialKey)
	if err != nil && !errors.Is(err, store.ErrItemNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*clientGateService.storedChecksum").Msg("error reading passphrase record")
		return "", fmt.Errorf("%w: read passphrase: %w", ErrStorageUnavailable, err)
	}
	return value, err
}
