package draft

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
)

func openSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "drafts.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": openSQLite(t),
	}
}

func TestStoreGetMissing(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), "missing")
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStoreSetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(ctx, DefaultKey, []byte(`{"firstName":"Jean"}`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, DefaultKey, []byte(`{"firstName":"Marie"}`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := s.Get(ctx, DefaultKey)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if string(got) != `{"firstName":"Marie"}` {
				t.Errorf("expected last write, got %s", got)
			}
		})
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_ = s.Set(ctx, UserKey("a"), []byte("A"))
			_ = s.Set(ctx, UserKey("b"), []byte("B"))

			got, err := s.Get(ctx, UserKey("a"))
			if err != nil || string(got) != "A" {
				t.Errorf("expected A, got %q, %v", got, err)
			}
			if _, err := s.Get(ctx, DefaultKey); !errors.Is(err, ErrNotFound) {
				t.Errorf("expected default key to be empty, got %v", err)
			}
		})
	}
}

func TestSQLiteEmptyValue(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	if err := s.Set(ctx, "k", nil); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty value, got %q", got)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	v := []byte("abc")
	_ = m.Set(ctx, "k", v)
	v[0] = 'x'

	got, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("expected stored copy, got %q", got)
	}
	got[1] = 'y'
	again, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("expected returned copy, got %q", again)
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, UserKey(string(rune('a'+i%26))), []byte("v"))
			_, _ = m.Get(ctx, DefaultKey)
		}()
	}
	wg.Wait()
}

func TestUserKey(t *testing.T) {
	if got := UserKey("uid-1"); got != "cardData:uid-1" {
		t.Errorf("unexpected key %q", got)
	}
}
