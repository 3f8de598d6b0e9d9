package cart

import (
	"errors"
	"sync"
	"testing"
)

func TestAddItem_SameIDSumsQuantity(t *testing.T) {
	s := NewService()

	if err := s.AddItem(Item{ID: "b1", Name: "Booking", Price: 72, Quantity: 1}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(Item{ID: "b1", Name: "Booking", Price: 72, Quantity: 1}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	summary := s.Summary()
	if len(summary.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(summary.Items))
	}
	if summary.Items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", summary.Items[0].Quantity)
	}
	if summary.Total != 144 {
		t.Fatalf("total = %d, want 144", summary.Total)
	}
}

func TestAddItem_ZeroQuantityCountsAsOne(t *testing.T) {
	s := NewService()

	if err := s.AddItem(Item{ID: "w1", Price: 89}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if got := s.Summary().Items[0].Quantity; got != 1 {
		t.Fatalf("quantity = %d, want 1", got)
	}
}

func TestAddItem_Rejections(t *testing.T) {
	s := NewService()

	if err := s.AddItem(Item{Price: 10}); !errors.Is(err, ErrMissingItemID) {
		t.Fatalf("missing id: got %v", err)
	}
	if err := s.AddItem(Item{ID: "x", Quantity: -1}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity: got %v", err)
	}
}

func TestConcurrentAdds(t *testing.T) {
	s := NewService()

	const adders = 20
	var wg sync.WaitGroup
	for i := 0; i < adders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.AddItem(Item{ID: "j1", Name: "Juggling set", Price: 24, Quantity: 1}); err != nil {
				t.Errorf("AddItem: %v", err)
			}
		}()
	}
	wg.Wait()

	summary := s.Summary()
	if len(summary.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(summary.Items))
	}
	if summary.Items[0].Quantity != adders {
		t.Fatalf("quantity = %d, want %d", summary.Items[0].Quantity, adders)
	}
	if summary.Total != 24*adders {
		t.Fatalf("total = %d, want %d", summary.Total, 24*adders)
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := NewService()
	if err := s.AddItem(Item{ID: "w1", Price: 89, Quantity: 1}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := s.UpdateQuantity("w1", 3); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if got := s.Summary().Total; got != 267 {
		t.Fatalf("total = %d, want 267", got)
	}

	// Zero removes the line.
	if err := s.UpdateQuantity("w1", 0); err != nil {
		t.Fatalf("UpdateQuantity to zero: %v", err)
	}
	if got := len(s.Summary().Items); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}

	if err := s.UpdateQuantity("missing", 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("unknown id: got %v", err)
	}
	if err := s.UpdateQuantity("missing", -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity: got %v", err)
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := NewService()
	s.AddItem(Item{ID: "a", Price: 10})
	s.AddItem(Item{ID: "b", Price: 20})
	s.AddItem(Item{ID: "c", Price: 30})

	if err := s.RemoveItem("b"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	summary := s.Summary()
	if len(summary.Items) != 2 || summary.Items[0].ID != "a" || summary.Items[1].ID != "c" {
		t.Fatalf("unexpected lines after remove: %+v", summary.Items)
	}

	if err := s.RemoveItem("b"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("double remove: got %v", err)
	}

	s.Clear()
	if got := s.Summary(); len(got.Items) != 0 || got.Total != 0 {
		t.Fatalf("cart not empty after clear: %+v", got)
	}
}

func TestSummary_InsertionOrderAndCount(t *testing.T) {
	s := NewService()
	s.AddItem(Item{ID: "first", Price: 5, Quantity: 2})
	s.AddItem(Item{ID: "second", Price: 7})

	summary := s.Summary()
	if summary.Items[0].ID != "first" || summary.Items[1].ID != "second" {
		t.Fatalf("order lost: %+v", summary.Items)
	}
	if summary.Count != 3 {
		t.Fatalf("count = %d, want 3", summary.Count)
	}
	if summary.Total != 17 {
		t.Fatalf("total = %d, want 17", summary.Total)
	}
}
