// Package memory keeps agreements, audit events, rate counters and monthly usage in process memory.
//
// It applies the same conditional-write rules as the DynamoDB and Postgres repositories
// and backs STORAGE_DRIVER=memory as well as end-to-end use case tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"quotelock/internal/domain/entities"
)

type counter struct {
	value     int64
	expiresAt time.Time
}

// Store is the shared state behind the memory repositories.
type Store struct {
	mu         sync.RWMutex
	agreements map[string]entities.Agreement
	events     map[string][]entities.AuditEvent
	counters   map[string]counter
	usage      map[string]int64
}

func NewStore() *Store {
	return &Store{
		agreements: make(map[string]entities.Agreement),
		events:     make(map[string][]entities.AuditEvent),
		counters:   make(map[string]counter),
		usage:      make(map[string]int64),
	}
}

// appendEventLocked keeps the per-agreement slice ordered by (created_at, id).
func (s *Store) appendEventLocked(e entities.AuditEvent) {
	list := append(s.events[e.AgreementID], cloneEvent(e))
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	s.events[e.AgreementID] = list
}

func cloneEvent(e entities.AuditEvent) entities.AuditEvent {
	if e.Metadata != nil {
		m := make(map[string]any, len(e.Metadata))
		for k, v := range e.Metadata {
			m[k] = v
		}
		e.Metadata = m
	}
	return e
}
