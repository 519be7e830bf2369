package documents

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	doc := Document{ID: "doc-1", OwnerID: "guest:g1", FileName: "a.docx", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, doc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "guest:g1", "doc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FileName != "a.docx" {
		t.Errorf("file name = %q", got.FileName)
	}

	if _, err := repo.GetByID(ctx, "guest:other", "doc-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-owner lookup err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, "guest:g1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing lookup err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Now().UTC()

	for i, id := range []string{"doc-1", "doc-2", "doc-3"} {
		doc := Document{ID: id, OwnerID: "guest:g1", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, doc); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	docs, err := repo.ListByOwner(ctx, "guest:g1", 2, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
	if docs[0].ID != "doc-3" || docs[1].ID != "doc-2" {
		t.Errorf("unexpected order: %s, %s", docs[0].ID, docs[1].ID)
	}

	page, err := repo.ListByOwner(ctx, "guest:g1", 2, 2)
	if err != nil {
		t.Fatalf("ListByOwner offset: %v", err)
	}
	if len(page) != 1 || page[0].ID != "doc-1" {
		t.Errorf("unexpected page: %+v", page)
	}

	empty, err := repo.ListByOwner(ctx, "guest:g1", 10, 10)
	if err != nil {
		t.Fatalf("ListByOwner past end: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty page, got %+v", empty)
	}
}
