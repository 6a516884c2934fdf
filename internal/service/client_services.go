// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
)

// ClientServices groups the services the diary front ends run on.
type ClientServices struct {
	GateService     ClientGateService
	TransferService ClientTransferService

	storage   store.KeyValueStorage
	validator validators.Validator
	clock     func() time.Time
}

// NewClientServices wires every service to storage.
func NewClientServices(storage store.KeyValueStorage, log *logger.Logger) *ClientServices {
	log.Debug().Msg("creating client services")

	validator := validators.NewEntryValidator()
	gate := NewClientGateService(storage)

	return &ClientServices{
		GateService:     gate,
		TransferService: NewClientTransferService(storage, gate, validator),
		storage:         storage,
		validator:       validator,
		clock:           time.Now,
	}
}

// OpenEntryStore creates and loads the [EntryStore] for a new unlocked
// session. It fails with [ErrGateLocked] while the gate is locked.
func (s *ClientServices) OpenEntryStore(ctx context.Context) (EntryStore, error) {
	if s.GateService.State() != Unlocked {
		return nil, ErrGateLocked
	}

	entries := NewEntryStore(s.storage, s.validator, s.clock)
	if err := entries.Load(ctx); err != nil {
		return nil, err
	}
	return entries, nil
}
