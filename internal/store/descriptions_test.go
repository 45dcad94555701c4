package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m02xime/fesipopApi/internal/store"
)

func TestDescriptionStore_GetByEventID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	eventID := f.seedEvent(t, "Angele", "pop", "Soiree", "", "")

	first, err := f.descriptions.Create(ctx, &store.Description{
		EvenementID: eventID, Titre: "premier", Image: "a.jpg", Date: "2024-06-01", Ville: "Paris", Description: "d1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = f.descriptions.Create(ctx, &store.Description{
		EvenementID: eventID, Titre: "second", Image: "b.jpg", Date: "2024-06-02", Ville: "Lyon", Description: "d2",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Lookup is by event id and returns the first attached description.
	d, err := f.descriptions.GetByEventID(ctx, eventID)
	if err != nil {
		t.Fatalf("get by event id: %v", err)
	}
	if d.ID != first {
		t.Errorf("id = %d, want first description %d", d.ID, first)
	}
	if d.Titre != "premier" {
		t.Errorf("titre = %q, want %q", d.Titre, "premier")
	}
}

func TestDescriptionStore_GetByEventID_NotFound(t *testing.T) {
	f := newFixture(t)
	if _, err := f.descriptions.GetByEventID(context.Background(), 42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDescriptionStore_Update_FullReplace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	eventID := f.seedEvent(t, "Angele", "pop", "Soiree", "", "")
	id, err := f.descriptions.Create(ctx, &store.Description{
		EvenementID: eventID, Titre: "old", Image: "old.jpg", Date: "2024-01-01", Ville: "Paris", Description: "old",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = f.descriptions.Update(ctx, &store.Description{
		ID: id, EvenementID: eventID, Titre: "new", Image: "new.jpg", Date: "2024-02-02", Ville: "Lyon", Description: "new",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := f.descriptions.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Titre != "new" || got.Image != "new.jpg" || got.Date != "2024-02-02" ||
		got.Ville != "Lyon" || got.Description != "new" {
		t.Errorf("update was not a full replace: %+v", got)
	}
}

func TestDescriptionStore_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	eventID := f.seedEvent(t, "Angele", "pop", "Soiree", "", "")
	id, err := f.descriptions.Create(ctx, &store.Description{
		EvenementID: eventID, Titre: "t", Image: "i", Date: "2024-01-01", Ville: "v", Description: "d",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := f.descriptions.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.descriptions.GetByID(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
}
