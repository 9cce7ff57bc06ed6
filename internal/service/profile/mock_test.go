package profile

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func newMockWithClock(t *testing.T) Service {
	t.Helper()
	m := NewMockProfileService()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	ticks := 0
	m.SetClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		ticks++
		return base.Add(time.Duration(ticks) * time.Second)
	})
	return m
}

func TestMockProfileService(t *testing.T) {
	testService(t, newMockWithClock)
}

func TestMockReturnsCopies(t *testing.T) {
	m := NewMockProfileService()
	ctx := context.Background()
	p, err := m.Create(ctx, "user-1", CreateParams{Username: "jean"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Record.FirstName = "mutated"

	got, err := m.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Record.FirstName != "" {
		t.Fatalf("expected stored profile to be unaffected, got %q", got.Record.FirstName)
	}
}

func TestMockConcurrentCreateKeepsUsernamesUnique(t *testing.T) {
	m := NewMockProfileService()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Create(ctx, fmt.Sprintf("user-%d", i), CreateParams{Username: "shared"}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Fatalf("expected exactly one profile to claim the username, got %d", created)
	}
}
