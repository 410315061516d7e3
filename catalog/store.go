package catalog

import (
	"errors"
	"sync"
)

var ErrProductNotFound = errors.New("product not found")

// Store keeps the catalog in process memory. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

func NewStore(seed ...Product) *Store {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &Store{products: products}
}

func NewSeededStore() *Store {
	return NewStore(Seed()...)
}

// List returns a copy of every product in insertion order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Get(id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// Create appends a product with id len+1. The id is taken under the write lock,
// so concurrent creates never share an id.
func (s *Store) Create(np NewProduct) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := np.build(len(s.products) + 1)
	s.products = append(s.products, p)
	return p
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// ImageURLs returns the set of image_url values currently referenced.
func (s *Store) ImageURLs() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	urls := make(map[string]struct{}, len(s.products))
	for _, p := range s.products {
		urls[p.ImageURL] = struct{}{}
	}
	return urls
}
