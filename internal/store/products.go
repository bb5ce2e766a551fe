package store

import (
	"slices"
	"sync"
	"time"

	"github.com/claude/vincera/internal/storage"
)

// Product is a purchase record.
type Product struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
}

// ProductStore owns purchased-product records.
type ProductStore struct {
	mu       sync.Mutex
	rs       RecordStore
	products []Product
}

// NewProductStore loads the purchase records, treating absence as empty.
func NewProductStore(rs RecordStore) *ProductStore {
	s := &ProductStore{rs: rs}
	if err := rs.Read(storage.RecProducts, &s.products); err != nil {
		s.products = nil
	}
	return s
}

// Purchase records a product purchase. Already-purchased ids are a no-op.
func (s *ProductStore) Purchase(productID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasLocked(productID) {
		return nil
	}
	s.products = append(s.products, Product{ID: productID, Date: now})
	if err := s.rs.Write(storage.RecProducts, s.products); err != nil {
		s.products = s.products[:len(s.products)-1]
		return err
	}
	return nil
}

// HasPurchased reports whether the product was bought.
func (s *ProductStore) HasPurchased(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasLocked(productID)
}

func (s *ProductStore) hasLocked(productID string) bool {
	return slices.ContainsFunc(s.products, func(p Product) bool { return p.ID == productID })
}

// List returns all purchase records.
func (s *ProductStore) List() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}
