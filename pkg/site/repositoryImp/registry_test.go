package repositoryImp

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BorromeoLara/INVE/entities"
)

func site(t *testing.T, id string) *entities.Site {
	t.Helper()
	s, err := entities.NewSite(entities.RawSite{
		ID:          id,
		Name:        "Site " + id,
		Coordinates: entities.RawCoordinates{Lat: json.Number("19.04"), Lon: json.Number("-98.2")},
		SowingDate:  "2024-03-15",
	})
	require.NoError(t, err)
	return s
}

func TestRegistry_ListAllKeepsRegistrationOrder(t *testing.T) {
	r := New()
	for _, id := range []string{"puebla-001", "atlixco-002", "cholula-003"} {
		require.NoError(t, r.Register(site(t, id)))
	}

	all := r.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "puebla-001", all[0].ID())
	assert.Equal(t, "atlixco-002", all[1].ID())
	assert.Equal(t, "cholula-003", all[2].ID())
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_FindRoundTripsListAll(t *testing.T) {
	r := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, r.Register(site(t, id)))
	}
	for i, s := range r.ListAll() {
		got, ok := r.Find(s.ID())
		require.True(t, ok, "index %d", i)
		assert.Same(t, s, got)
	}
}

func TestRegistry_FindMissingIsNotAnError(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(site(t, "puebla-001")))

	s, ok := r.Find("unknown-id")
	assert.False(t, ok)
	assert.Nil(t, s)
}

func TestRegistry_DuplicateIdentifier(t *testing.T) {
	r := New()
	first := site(t, "puebla-001")
	require.NoError(t, r.Register(first))

	err := r.Register(site(t, "puebla-001"))
	var dup *DuplicateIdentifierError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "puebla-001", dup.ID)

	assert.Equal(t, 1, r.Len())
	got, _ := r.Find("puebla-001")
	assert.Same(t, first, got)
}

func TestRegistry_ListAllIsACopy(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(site(t, "a")))
	all := r.ListAll()
	all[0] = nil
	assert.NotNil(t, r.ListAll()[0])
}
