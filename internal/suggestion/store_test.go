package suggestion_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/storage"
	"github.com/gyegi/calendar/internal/suggestion"
)

// MockBlobStore simulates storage failures.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Load(key string) ([]byte, error) {
	args := m.Called(key)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlobStore) Save(key string, value []byte) error {
	return m.Called(key, value).Error(0)
}

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func entry(id string, minutes int) suggestion.Entry {
	return suggestion.Entry{
		ID:        id,
		Contact:   id + "@example.com",
		Message:   "message " + id,
		CreatedAt: base.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestStore_RoundTripNewestFirst(t *testing.T) {
	s := suggestion.NewStore(make(storage.Memory), nil)

	for _, e := range []suggestion.Entry{entry("b", 10), entry("a", 0), entry("d", 30), entry("c", 20)} {
		require.NoError(t, s.Append(e))
	}

	list, err := s.ListAll()
	require.NoError(t, err)

	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids)

	count := 0
	for _, e := range list {
		if e.ID == "c" {
			count++
			assert.True(t, e.CreatedAt.Equal(entry("c", 20).CreatedAt))
			assert.Equal(t, "message c", e.Message)
		}
	}
	assert.Equal(t, 1, count, "an appended entry is listed exactly once")
}

func TestStore_EmptyStorage(t *testing.T) {
	s := suggestion.NewStore(make(storage.Memory), nil)

	list, err := s.ListAll()
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStore_PersistsJSONArray(t *testing.T) {
	mem := make(storage.Memory)
	s := suggestion.NewStore(mem, nil)
	require.NoError(t, s.Append(entry("a", 0)))

	raw, err := mem.Load("suggestions")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","email":"a@example.com","message":"message a","createdAt":"2026-03-01T09:00:00Z"}]`, string(raw))
}

func TestStore_ReadsBrowserLayout(t *testing.T) {
	mem := make(storage.Memory)
	require.NoError(t, mem.Save("suggestions", []byte(
		`[{"id":"x","email":"익명","message":"old","createdAt":"2025-12-01T10:00:00.000Z"}]`)))

	list, err := suggestion.NewStore(mem, nil).ListAll()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Anonymous())
	assert.Equal(t, 2025, list[0].CreatedAt.Year())
}

func TestStore_CorruptBlob(t *testing.T) {
	mem := make(storage.Memory)
	require.NoError(t, mem.Save("suggestions", []byte("{broken")))
	s := suggestion.NewStore(mem, nil)

	list, err := s.ListAll()
	assert.ErrorIs(t, err, suggestion.ErrPersistence)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	err = s.Append(entry("a", 0))
	assert.ErrorIs(t, err, suggestion.ErrPersistence)

	raw, _ := mem.Load("suggestions")
	assert.Equal(t, "{broken", string(raw), "unreadable data is left untouched")
}

func TestStore_BackendFailures(t *testing.T) {
	b := new(MockBlobStore)
	b.On("Load", "suggestions").Return(nil, nil)
	b.On("Save", "suggestions", mock.Anything).Return(errors.New("quota exceeded"))

	err := suggestion.NewStore(b, nil).Append(entry("a", 0))
	assert.ErrorIs(t, err, suggestion.ErrPersistence)
	assert.Contains(t, err.Error(), "quota exceeded")

	failing := new(MockBlobStore)
	failing.On("Load", "suggestions").Return(nil, errors.New("disk"))
	list, err := suggestion.NewStore(failing, nil).ListAll()
	assert.ErrorIs(t, err, suggestion.ErrPersistence)
	assert.Empty(t, list)
	failing.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubmit(t *testing.T) {
	clock := calendar.FixedClock(base)
	s := suggestion.NewStore(make(storage.Memory), clock)

	e, err := s.Submit("  ", "  더 많은 자료가 필요해요  ")
	require.NoError(t, err)
	assert.Equal(t, "익명", e.Contact)
	assert.Equal(t, "더 많은 자료가 필요해요", e.Message)
	assert.Equal(t, base, e.CreatedAt)
	assert.NotEmpty(t, e.ID)

	_, err = s.Submit("teacher@example.com", " ")
	assert.ErrorIs(t, err, suggestion.ErrEmptyMessage)

	list, err := s.ListAll()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	a, err := suggestion.NewEntry("", "x", base)
	require.NoError(t, err)
	b, err := suggestion.NewEntry("", "x", base)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
