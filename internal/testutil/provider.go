// Package testutil provides in-memory stand-ins for the service
// capabilities, used by tests across packages.
package testutil

import (
	"context"
	"sync"

	"airename/internal/renamer"
)

// StubProvider returns canned names in order and records every request it
// receives. When Err is set, every call fails with it.
type StubProvider struct {
	mu       sync.Mutex
	Names    []string
	Err      error
	Requests []renamer.GenerateRequest
	next     int
}

// NewStubProvider creates a StubProvider that returns the given names in
// sequence. After the names run out it keeps returning the last one.
func NewStubProvider(names ...string) *StubProvider {
	return &StubProvider{Names: names}
}

func (p *StubProvider) Name() string { return "stub" }

func (p *StubProvider) GenerateFileName(_ context.Context, req renamer.GenerateRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Requests = append(p.Requests, req)
	if p.Err != nil {
		return "", p.Err
	}
	if len(p.Names) == 0 {
		return "", nil
	}
	name := p.Names[p.next]
	if p.next < len(p.Names)-1 {
		p.next++
	}
	return name, nil
}

// Calls returns how many generation requests the stub received.
func (p *StubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Requests)
}
