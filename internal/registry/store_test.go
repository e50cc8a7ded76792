package registry

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rhyrak/exam-registry/pkg/model"
)

func newTestStore() *Store {
	return NewStore(zap.NewNop())
}

func request(name string) model.Request {
	return model.Request{Name: name, Subject: "Math", Location: "RoomA", Month: 5, Day: 10, Hour: 9, Minute: 30}
}

func TestStore_InsertAssignsSequentialIDs(t *testing.T) {
	s := newTestStore()

	for i := 1; i <= 5; i++ {
		id := s.Insert(request(fmt.Sprintf("applicant-%d", i)))
		assert.Equal(t, model.ReservationID(i), id)
	}

	var ids []model.ReservationID
	for r := range s.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []model.ReservationID{1, 2, 3, 4, 5}, ids)
	assert.Equal(t, 5, s.Len())
}

func TestStore_Example(t *testing.T) {
	s := newTestStore()

	kim := s.Insert(model.Request{Name: "Kim", Subject: "Math", Location: "RoomA", Month: 5, Day: 10, Hour: 9, Minute: 30})
	lee := s.Insert(model.Request{Name: "Lee", Subject: "Science", Location: "RoomB", Month: 6, Day: 1, Hour: 13, Minute: 0})
	require.Equal(t, model.ReservationID(1), kim)
	require.Equal(t, model.ReservationID(2), lee)

	n, err := s.DeleteByName("Kim")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, []model.Reservation{{
		ID: 2, Name: "Lee", Subject: "Science", Location: "RoomB",
		Month: 6, Day: 1, Hour: 13, Minute: 0,
	}}, slices.Collect(s.All()))
}

func TestStore_DeleteByNameRemovesAllMatches(t *testing.T) {
	s := newTestStore()
	for _, name := range []string{"Kim", "Lee", "Kim", "Park", "Kim"} {
		s.Insert(request(name))
	}

	n, err := s.DeleteByName("Kim")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var left []string
	var ids []model.ReservationID
	for r := range s.All() {
		left = append(left, r.Name)
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"Lee", "Park"}, left)
	assert.Equal(t, []model.ReservationID{2, 4}, ids)
}

func TestStore_DeleteByNameExactMatch(t *testing.T) {
	s := newTestStore()
	s.Insert(request("Kim"))

	n, err := s.DeleteByName("kim")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, n)

	_, err = s.DeleteByName("Kim ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestStore_DeleteOnEmptyStore(t *testing.T) {
	n, err := newTestStore().DeleteByName("Kim")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, n)
}

func TestStore_IDsNotReusedAfterDelete(t *testing.T) {
	s := newTestStore()
	s.Insert(request("Kim"))
	s.Insert(request("Lee"))

	_, err := s.DeleteByName("Lee")
	require.NoError(t, err)
	_, err = s.DeleteByName("Kim")
	require.NoError(t, err)
	require.Zero(t, s.Len())

	assert.Equal(t, model.ReservationID(3), s.Insert(request("Park")))
}

func TestStore_FindByName(t *testing.T) {
	s := newTestStore()
	s.Insert(request("Kim"))
	second := request("Lee")
	second.Subject = "Science"
	s.Insert(second)
	s.Insert(request("Lee"))

	r, err := s.FindByName("Lee")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationID(2), r.ID)
	assert.Equal(t, "Science", r.Subject)
}

func TestStore_FindByNameNotFound(t *testing.T) {
	s := newTestStore()
	s.Insert(request("Kim"))

	_, err := s.FindByName("Choi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_AllEmpty(t *testing.T) {
	assert.Empty(t, slices.Collect(newTestStore().All()))
}

func TestStore_AllIsRestartable(t *testing.T) {
	s := newTestStore()
	s.Insert(request("Kim"))
	s.Insert(request("Lee"))

	seq := s.All()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestStore_AllStopsOnBreak(t *testing.T) {
	s := newTestStore()
	for _, name := range []string{"Kim", "Lee", "Park"} {
		s.Insert(request(name))
	}

	visited := 0
	for range s.All() {
		visited++
		break
	}
	assert.Equal(t, 1, visited)
	assert.Equal(t, 3, s.Len())
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := newTestStore()
	s.Insert(request("Kim"))

	r, err := s.FindByName("Kim")
	require.NoError(t, err)
	r.Subject = "changed"

	again, err := s.FindByName("Kim")
	require.NoError(t, err)
	assert.Equal(t, "Math", again.Subject)
}
