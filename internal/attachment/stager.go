// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attachment

import "sync"

// Ticket identifies one asynchronous image read started by [Stager.Begin].
type Ticket uint64

// Result is the outcome of an image read.
type Result struct {
	DataURI string
	Err     error
}

// Stager holds at most one image waiting to be saved with the entry form.
//
// Reads run asynchronously, so several may be in flight when the user picks
// files quickly. Only the read started last is allowed to stage its result.
// The zero value is ready to use.
type Stager struct {
	mu     sync.Mutex
	latest Ticket
	staged *string
}

// Begin starts a new read and invalidates every earlier one.
func (s *Stager) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	return s.latest
}

// Complete applies the result of the read identified by t. It returns false
// when t has been superseded, in which case nothing changes. A failed read
// discards the staged image.
func (s *Stager) Complete(t Ticket, r Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t != s.latest {
		return false
	}
	if r.Err != nil {
		s.staged = nil
		return true
	}

	uri := r.DataURI
	s.staged = &uri
	return true
}

// Set stages uri directly, e.g. the image of an entry opened for editing.
// nil clears the staged image. Pending reads are invalidated.
func (s *Stager) Set(uri *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	if uri == nil {
		s.staged = nil
		return
	}
	v := *uri
	s.staged = &v
}

// Clear drops the staged image and invalidates pending reads.
func (s *Stager) Clear() {
	s.Set(nil)
}

// Staged returns a copy of the staged data URI or nil.
func (s *Stager) Staged() *string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staged == nil {
		return nil
	}
	v := *s.staged
	return &v
}
