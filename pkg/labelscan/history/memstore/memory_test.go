package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/foodlens/labelscan/pkg/labelscan/history"
	"github.com/foodlens/labelscan/pkg/labelscan/product"
)

func TestAppendAndRecentOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	for i := 0; i < 3; i++ {
		err := s.Append(ctx, history.Entry{
			ID:        fmt.Sprintf("scan-%d", i),
			CreatedAt: time.Now(),
			Summary:   product.Summary{},
		})
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	entries, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "scan-2" {
		t.Errorf("Most recent entry must come first, got %s", entries[0].ID)
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	ctx := context.Background()
	s := New()

	total := history.Capacity + 5
	for i := 0; i < total; i++ {
		if err := s.Append(ctx, history.Entry{ID: fmt.Sprintf("scan-%d", i)}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	entries, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != history.Capacity {
		t.Fatalf("Expected %d entries, got %d", history.Capacity, len(entries))
	}
	if entries[0].ID != fmt.Sprintf("scan-%d", total-1) {
		t.Errorf("Newest entry missing, got %s", entries[0].ID)
	}
	last := entries[len(entries)-1]
	if last.ID != fmt.Sprintf("scan-%d", total-history.Capacity) {
		t.Errorf("Oldest retained entry wrong, got %s", last.ID)
	}
}

func TestRecentLimit(t *testing.T) {
	ctx := context.Background()
	s := New()

	for i := 0; i < 10; i++ {
		if err := s.Append(ctx, history.Entry{ID: fmt.Sprintf("scan-%d", i)}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	entries, err := s.Recent(ctx, 4)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("Expected 4 entries, got %d", len(entries))
	}
}
