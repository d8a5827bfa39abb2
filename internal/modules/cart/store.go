// Package cart implements the in-memory cart. One Store per browsing
// session, handed to handlers by explicit injection; there is no ambient
// cart. Nothing is persisted: a server restart loses every cart, which is
// accepted for this storefront.
package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/pricing"
)

// ErrStoreClosed is returned by every operation on a Store whose owning
// session scope has ended. Using a cart past its scope is a programming
// error and must surface, not read as an empty cart.
var ErrStoreClosed = errors.New("cart: store used outside its owning session scope")

// Line is one add-to-cart action materialized. Two adds of the same product
// and size still occupy two lines; LineID, not ProductID, is the key.
type Line struct {
	LineID       string
	ProductID    string
	Name         string
	Description  string
	ImageURL     string
	CategorySlug string
	Quantity     int
	Size         pricing.Size // zero value means the product takes no size
	HasSize      bool
	Observation  string
	FinalPrice   float64 // size-adjusted unit price × quantity
}

// UnitPrice is the per-unit price implied by the line. It survives quantity
// rescaling, including any size surcharge baked in at add time.
func (l Line) UnitPrice() float64 {
	if l.Quantity <= 0 {
		return 0
	}
	return l.FinalPrice / float64(l.Quantity)
}

// lineClock yields strictly increasing timestamps so that line ids composed
// from product+size+time never collide within a process.
var lineClock = struct {
	mu   sync.Mutex
	last int64
}{}

func nextLineStamp() int64 {
	lineClock.mu.Lock()
	defer lineClock.mu.Unlock()
	now := time.Now().UnixNano()
	if now <= lineClock.last {
		now = lineClock.last + 1
	}
	lineClock.last = now
	return now
}

// NewLineID composes a session-unique line identifier.
func NewLineID(productID string, size pricing.Size) string {
	return fmt.Sprintf("%s-%s-%d", productID, size, nextLineStamp())
}

// Store is an ordered collection of lines. Insertion order is display order.
// Operations are atomic from the caller's point of view; the mutex only
// exists because the Go server handles requests concurrently.
type Store struct {
	mu     sync.Mutex
	lines  []Line
	closed bool
}

func NewStore() *Store { return &Store{} }

// Add appends the line. Identical product+size combinations are never
// merged; every add is its own line, with no upper bound.
func (s *Store) Add(l Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.lines = append(s.lines, l)
	return nil
}

// Remove deletes the line with the given id. Absent ids are a no-op.
func (s *Store) Remove(lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	for i, l := range s.lines {
		if l.LineID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

// UpdateQuantity sets a line's quantity. n <= 0 removes the line. The final
// price is rescaled by n/oldQuantity rather than recomputed, so whatever
// surcharge was priced in at add time is preserved proportionally.
func (s *Store) UpdateQuantity(lineID string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	for i := range s.lines {
		if s.lines[i].LineID != lineID {
			continue
		}
		if n <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
		s.lines[i].FinalPrice = s.lines[i].FinalPrice / float64(s.lines[i].Quantity) * float64(n)
		s.lines[i].Quantity = n
		return nil
	}
	return nil
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.lines = nil
	return nil
}

// Lines returns the lines in insertion order. The slice is a copy.
func (s *Store) Lines() ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

// TotalItems is the sum of quantities over all lines.
func (s *Store) TotalItems() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n, nil
}

// TotalPrice is the sum of final prices over all lines.
func (s *Store) TotalPrice() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	total := 0.0
	for _, l := range s.lines {
		total += l.FinalPrice
	}
	return total, nil
}

// Close ends the store's owning scope. Every later operation fails with
// ErrStoreClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.lines = nil
}
