package pphistory

import (
	"context"
	"testing"
	"time"

	"github.com/relsqui/prettydoc/pkg/pp"
)

func entryAt(n int) Entry {
	return Entry{
		ID:         "id",
		DocHash:    "hash",
		Width:      80,
		EOL:        pp.LF,
		RenderedAt: time.Unix(int64(n), 0),
	}
}

func TestMemoryStoreRecentIsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	for i := 1; i <= 3; i++ {
		if err := s.Record(ctx, entryAt(i)); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	got, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
	for i, want := range []int64{3, 2, 1} {
		if got[i].RenderedAt.Unix() != want {
			t.Errorf("got[%d].RenderedAt = %d, want %d", i, got[i].RenderedAt.Unix(), want)
		}
	}
}

func TestMemoryStoreRecentRespectsLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	for i := 1; i <= 5; i++ {
		_ = s.Record(ctx, entryAt(i))
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].RenderedAt.Unix() != 5 || got[1].RenderedAt.Unix() != 4 {
		t.Errorf("got = %+v, want entries 5 then 4", got)
	}
}

func TestMemoryStoreEvictsBeyondCapacity(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)
	for i := 1; i <= 5; i++ {
		_ = s.Record(ctx, entryAt(i))
	}

	got, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].RenderedAt.Unix() != 5 || got[1].RenderedAt.Unix() != 4 {
		t.Errorf("got = %+v, want entries 5 then 4", got)
	}
}

func TestMemoryStoreCloseClears(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	_ = s.Record(ctx, entryAt(1))
	if err := s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	got, _ := s.Recent(ctx, 0)
	if len(got) != 0 {
		t.Errorf("len(got) = %d after Close, want 0", len(got))
	}
}
