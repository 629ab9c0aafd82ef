package service

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/sebasr/clinic-service/internal/auth"
	"github.com/sebasr/clinic-service/internal/events"
)

// testHasher keeps bcrypt fast in tests
var testHasher = auth.NewHasher(bcrypt.MinCost)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Event, len(p.events))
	copy(out, p.events)
	return out
}
