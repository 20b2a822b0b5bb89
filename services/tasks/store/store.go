// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package store implements the in-memory task registry for the tasks service.
//
// The Store owns the mapping from integer identifier to Task and performs
// every mutation under the invariants below. It is the only component with
// decision logic; the HTTP layer translates its outcomes to status codes.
//
// # Invariants
//
//   - All task ids are pairwise distinct.
//   - No stored title is empty or whitespace-only.
//   - Listing preserves insertion order; lookup is by identity.
//
// # Identifier Generation
//
// A new task gets max(current ids) + 1, or 1 when the store is empty. This
// is NOT a monotonic counter: deleting the highest-id task frees its numeric
// value for the next create. Clients holding references across a delete can
// observe id reuse. The behavior is intentional and covered by tests.
//
// # Thread Safety
//
// Store is safe for concurrent use. Every operation holds a single mutex
// around its entire read-modify-write sequence, so two concurrent creates
// can never compute the same next id.
package store

import (
	"sync"

	"github.com/AleutianAI/AleutianTasks/pkg/validation"
)

// Task is a single to-do record.
//
// ID is assigned by the store on create and is immutable afterwards.
// Title and Done are the only mutable fields, and only through Update.
type Task struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// TaskPatch carries the raw field values of a partial update.
//
// Presence and validity are tracked independently: HasTitle says the caller
// supplied a title value at all, while Update decides whether that value is
// usable. A field that is absent, of the wrong type, or (for title) blank
// after trimming is silently left unchanged.
//
// The values are deliberately untyped. The HTTP layer hands the store
// whatever the request body contained; all type decisions live here.
type TaskPatch struct {
	// Title is the raw title value from the request body, if present.
	Title any

	// HasTitle reports whether the title key was present at all.
	HasTitle bool

	// Done is the raw done value from the request body, if present.
	Done any

	// HasDone reports whether the done key was present at all.
	HasDone bool
}

// Store is the ordered, identifier-indexed collection of all tasks.
//
// The zero value is not usable; construct with New or NewSeeded.
type Store struct {
	mu    sync.Mutex
	tasks []*Task       // insertion order, for listing
	byID  map[int]*Task // identity lookup
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		byID: make(map[int]*Task),
	}
}

// NewSeeded creates a Store pre-populated with the two starter records
// the service ships with.
func NewSeeded() *Store {
	s := New()
	s.insert(&Task{ID: 1, Title: "Buy milk", Done: false})
	s.insert(&Task{ID: 2, Title: "Learn Go", Done: true})
	return s
}

// List returns every task in insertion order.
//
// The returned slice is a copy; mutating it does not affect the store.
// List never mutates the store and never fails. An empty store yields an
// empty (non-nil) slice so the HTTP layer serializes [] rather than null.
func (s *Store) List() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	return out
}

// Get returns the task with the given id.
//
// Returns ErrTaskNotFound if no task has that id. Get has no side effects.
func (s *Store) Get(id int) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return *t, nil
}

// Create validates rawTitle and appends a new task.
//
// rawTitle must be present, be a string, and be non-empty after trimming;
// anything else yields a ValidationError and leaves the store unchanged.
// On success the task gets the next identifier (max current id + 1, or 1
// when empty), the trimmed title, and done=false.
func (s *Store) Create(rawTitle any) (Task, error) {
	title, ok := rawTitle.(string)
	if !ok {
		return Task{}, NewValidationError("title is required and must be a non-empty string")
	}

	clean, err := validation.SanitizeTitle(title)
	if err != nil {
		return Task{}, NewValidationError("title is required and must be a non-empty string")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{
		ID:    s.nextID(),
		Title: clean,
		Done:  false,
	}
	s.tasks = append(s.tasks, t)
	s.byID[t.ID] = t

	return *t, nil
}

// Update applies a partial update to the task with the given id.
//
// Returns ErrTaskNotFound if no task has that id, regardless of the patch
// contents. Otherwise each field is applied independently:
//
//   - title: replaced only when supplied as a string that is non-empty
//     after trimming; the trimmed form is stored
//   - done: replaced only when supplied as a bool
//
// Invalid or absent fields are skipped without error, so an empty patch is
// a successful no-op. Returns the resulting task.
func (s *Store) Update(id int, patch TaskPatch) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}

	if patch.HasTitle {
		if title, ok := patch.Title.(string); ok {
			if clean, err := validation.SanitizeTitle(title); err == nil {
				t.Title = clean
			}
		}
	}

	if patch.HasDone {
		if done, ok := patch.Done.(bool); ok {
			t.Done = done
		}
	}

	return *t, nil
}

// Delete removes the task with the given id.
//
// Returns ErrTaskNotFound if no task has that id. No other side effects.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrTaskNotFound
	}

	delete(s.byID, id)
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// nextID computes the identifier for a new task.
// Caller must hold s.mu.
func (s *Store) nextID() int {
	max := 0
	for _, t := range s.tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// insert adds a task without validation. Used for seeding only.
func (s *Store) insert(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	s.byID[t.ID] = t
}
