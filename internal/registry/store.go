package registry

import (
	"errors"
	"iter"

	"go.uber.org/zap"

	"github.com/rhyrak/exam-registry/pkg/model"
)

// ErrNotFound is returned when no reservation is held under the given name.
var ErrNotFound = errors.New("no matching reservation")

// Store keeps reservations in insertion order and hands out seat numbers.
// It is not safe for concurrent use.
type Store struct {
	reservations []model.Reservation
	nextID       model.ReservationID
	logger       *zap.Logger
}

// NewStore returns an empty store whose first seat is 1.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{nextID: 1, logger: logger}
}

// Insert appends req under the next seat number and returns it.
// The request must already be valid.
func (s *Store) Insert(req model.Request) model.ReservationID {
	id := s.nextID
	s.nextID++
	s.reservations = append(s.reservations, req.Reservation(id))
	s.logger.Debug("reservation inserted", zap.Uint64("seat", uint64(id)), zap.String("name", req.Name))
	return id
}

// DeleteByName removes every reservation held by name and reports how many
// went. ErrNotFound is returned when nothing matched.
func (s *Store) DeleteByName(name string) (int, error) {
	kept := s.reservations[:0]
	for _, r := range s.reservations {
		if r.Name != name {
			kept = append(kept, r)
		}
	}
	removed := len(s.reservations) - len(kept)
	clear(s.reservations[len(kept):])
	s.reservations = kept

	if removed == 0 {
		return 0, ErrNotFound
	}
	s.logger.Debug("reservations deleted", zap.String("name", name), zap.Int("count", removed))
	return removed, nil
}

// FindByName returns the earliest reservation held by name.
func (s *Store) FindByName(name string) (model.Reservation, error) {
	for _, r := range s.reservations {
		if r.Name == name {
			return r, nil
		}
	}
	return model.Reservation{}, ErrNotFound
}

// All yields copies of the stored reservations in insertion order.
func (s *Store) All() iter.Seq[model.Reservation] {
	return func(yield func(model.Reservation) bool) {
		for _, r := range s.reservations {
			if !yield(r) {
				return
			}
		}
	}
}

// Len reports how many reservations are stored.
func (s *Store) Len() int {
	return len(s.reservations)
}
