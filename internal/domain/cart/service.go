package cart

import (
	"sync"
)

// Service holds the cart in memory. It is shared between the shop flow and
// the booking flow, so every method takes the lock; adds may arrive
// concurrently and in arbitrary order.
type Service struct {
	mu    sync.Mutex
	items map[string]*Item
	order []string
}

// NewService creates an empty cart.
func NewService() *Service {
	return &Service{
		items: make(map[string]*Item),
	}
}

// AddItem puts an item in the cart. Adding an id that is already present
// increments that line's quantity instead of creating a second line.
// A zero quantity on the incoming item counts as one unit.
func (s *Service) AddItem(item Item) error {
	if item.ID == "" {
		return ErrMissingItemID
	}
	if item.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.items[item.ID]; ok {
		existing.Quantity += item.Quantity
		return nil
	}

	s.items[item.ID] = &item
	s.order = append(s.order, item.ID)
	return nil
}

// UpdateQuantity sets the quantity of a line. Zero removes the line.
func (s *Service) UpdateQuantity(id string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrItemNotFound
	}
	if quantity == 0 {
		s.removeLocked(id)
		return nil
	}
	s.items[id].Quantity = quantity
	return nil
}

// RemoveItem deletes a line from the cart.
func (s *Service) RemoveItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrItemNotFound
	}
	s.removeLocked(id)
	return nil
}

// Clear empties the cart.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*Item)
	s.order = nil
}

// Summary returns a snapshot of the cart in insertion order with the total.
func (s *Service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := Summary{Items: make([]Item, 0, len(s.order))}
	for _, id := range s.order {
		item := *s.items[id]
		summary.Items = append(summary.Items, item)
		summary.Total += item.Price * item.Quantity
		summary.Count += item.Quantity
	}
	return summary
}

func (s *Service) removeLocked(id string) {
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
