// Package testutil provides in-memory stand-ins for the store used by
// service and handler tests.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/clothes-catalog/internal/errs"
	"github.com/deppfellow/clothes-catalog/internal/model/cloth"
	"github.com/google/uuid"
)

// ClothStore is an in-memory ClothStore. Clothes keep insertion order, and
// each Create stamps CreatedAt one second after the previous one.
type ClothStore struct {
	mu        sync.Mutex
	clothes   []cloth.Cloth
	clock     time.Time
	mutations int

	// Err, when set, is returned by every call.
	Err error
}

func NewClothStore() *ClothStore {
	return &ClothStore{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Seed appends clothes as-is and returns the stored copies.
func (s *ClothStore) Seed(clothes ...cloth.Cloth) []cloth.Cloth {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range clothes {
		if clothes[i].ID == uuid.Nil {
			clothes[i].ID = uuid.New()
		}
		if clothes[i].CreatedAt.IsZero() {
			s.clock = s.clock.Add(time.Second)
			clothes[i].CreatedAt = s.clock
		}
		s.clothes = append(s.clothes, clothes[i])
	}
	return clothes
}

// Mutations counts successful Create, Update and Delete calls that changed
// a row.
func (s *ClothStore) Mutations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

// Len is the number of stored clothes.
func (s *ClothStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clothes)
}

func capped(clothes []cloth.Cloth, limit *int) []cloth.Cloth {
	out := make([]cloth.Cloth, len(clothes))
	copy(out, clothes)
	if limit != nil && *limit < len(out) {
		out = out[:*limit]
	}
	return out
}

func (s *ClothStore) List(_ context.Context, limit *int) ([]cloth.Cloth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return capped(s.clothes, limit), nil
}

func (s *ClothStore) ListOrdered(_ context.Context, order cloth.Order, limit *int) ([]cloth.Cloth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	sorted := capped(s.clothes, nil)
	switch order {
	case cloth.OrderNewest:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	case cloth.OrderTrending:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TrendingScore > sorted[j].TrendingScore })
	default:
		return nil, errors.New("unsupported cloth order")
	}
	return capped(sorted, limit), nil
}

func (s *ClothStore) GetByID(_ context.Context, id uuid.UUID) (*cloth.Cloth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.clothes {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	code := "CLOTH_NOT_FOUND"
	return nil, errs.NewNotFoundError("Cloth not found", true, &code)
}

func (s *ClothStore) Create(_ context.Context, data cloth.Data) (*cloth.Cloth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.clock = s.clock.Add(time.Second)
	c := cloth.Cloth{ID: uuid.New(), CreatedAt: s.clock, Data: data}
	s.clothes = append(s.clothes, c)
	s.mutations++
	return &c, nil
}

func (s *ClothStore) Update(_ context.Context, id uuid.UUID, data cloth.Data) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	for i := range s.clothes {
		if s.clothes[i].ID == id {
			s.clothes[i].Data = data
			s.mutations++
			return 1, nil
		}
	}
	return 0, nil
}

func (s *ClothStore) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	for i := range s.clothes {
		if s.clothes[i].ID == id {
			s.clothes = append(s.clothes[:i], s.clothes[i+1:]...)
			s.mutations++
			return 1, nil
		}
	}
	return 0, nil
}
