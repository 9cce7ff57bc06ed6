package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/janisto/digicard/internal/card"
)

// testService runs the behaviour every Service implementation shares.
func testService(t *testing.T, newService func(t *testing.T) Service) {
	t.Run("create seeds contact email", func(t *testing.T) {
		svc := newService(t)
		p, err := svc.Create(context.Background(), "user-1", CreateParams{Username: " JeanDupont ", Email: "jean@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "user-1" || p.Username != "jeandupont" {
			t.Fatalf("unexpected profile %+v", p)
		}
		if want := (card.Record{EmailContact: "jean@example.com"}); p.Record != want {
			t.Fatalf("unexpected initial record (-want +got):\n%s", cmp.Diff(want, p.Record))
		}
		if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
			t.Fatalf("expected equal non-zero timestamps, got %v / %v", p.CreatedAt, p.UpdatedAt)
		}
	})

	t.Run("create rejects duplicates", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()
		if _, err := svc.Create(ctx, "user-1", CreateParams{Username: "jean"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Create(ctx, "user-1", CreateParams{Username: "other"}); !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
		if _, err := svc.Create(ctx, "user-2", CreateParams{Username: "JEAN"}); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("save replaces record", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()
		created, err := svc.Create(ctx, "user-1", CreateParams{Username: "jean", Email: "jean@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rec := card.Record{FirstName: "Jean", LastName: "Dupont", Phone: "+33612345678", PhoneEnabled: true}
		saved, err := svc.Save(ctx, "user-1", rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(rec, saved.Record); diff != "" {
			t.Fatalf("unexpected saved record (-want +got):\n%s", diff)
		}
		if saved.Username != "jean" || saved.UpdatedAt.Before(created.UpdatedAt) {
			t.Fatalf("unexpected saved profile %+v", saved)
		}

		got, err := svc.GetByUsername(ctx, "Jean")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(rec, got.Record); diff != "" {
			t.Fatalf("unexpected stored record (-want +got):\n%s", diff)
		}
		if got.Card().Phone != (card.SocialField{Value: "+33612345678", Enabled: true}) {
			t.Fatalf("unexpected card phone %+v", got.Card().Phone)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()
		if _, err := svc.Get(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get: expected ErrNotFound, got %v", err)
		}
		if _, err := svc.GetByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("GetByUsername: expected ErrNotFound, got %v", err)
		}
		if _, err := svc.Save(ctx, "nobody", card.Record{}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Save: expected ErrNotFound, got %v", err)
		}
		if err := svc.Delete(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Delete: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete releases username", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()
		if _, err := svc.Create(ctx, "user-1", CreateParams{Username: "jean"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.Delete(ctx, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.GetByUsername(ctx, "jean"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if _, err := svc.Create(ctx, "user-2", CreateParams{Username: "jean"}); err != nil {
			t.Fatalf("expected username to be reusable, got %v", err)
		}
	})

	t.Run("list is ordered by creation", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()
		for _, id := range []string{"user-a", "user-b", "user-c"} {
			if _, err := svc.Create(ctx, id, CreateParams{Username: id[5:] + "_name"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		list, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := make([]string, 0, len(list))
		for _, p := range list {
			ids = append(ids, p.ID)
		}
		if diff := cmp.Diff([]string{"user-a", "user-b", "user-c"}, ids); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}
	})
}
