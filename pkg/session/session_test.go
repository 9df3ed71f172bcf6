package session

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BorromeoLara/INVE/entities"
	"github.com/BorromeoLara/INVE/pkg/navigation"
	"github.com/BorromeoLara/INVE/pkg/site/repositoryImp"
)

func roster(t *testing.T, ids ...string) *repositoryImp.Registry {
	t.Helper()
	r := repositoryImp.New()
	for _, id := range ids {
		s, err := entities.NewSite(entities.RawSite{
			ID:          id,
			Coordinates: entities.RawCoordinates{Lat: "19.0414", Lon: "-98.2063"},
			SowingDate:  "2024-03-15",
		})
		require.NoError(t, err)
		require.NoError(t, r.Register(s))
	}
	return r
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	want := navigation.State{SiteID: "puebla-001", View: navigation.Map}
	require.NoError(t, s.Save(ctx, "a", want))
	got, ok, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, s.Delete(ctx, "a"))
	assert.Zero(t, s.Len())
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	m := NewManager(roster(t, "puebla-001", "atlixco-002"), NewMemoryStore())

	st, err := m.Do(ctx, "alice", func(mc *navigation.Machine) error { return mc.SelectSite("puebla-001") })
	require.NoError(t, err)
	assert.Equal(t, navigation.State{SiteID: "puebla-001", View: navigation.General}, st)

	st, err = m.Do(ctx, "alice", func(mc *navigation.Machine) error { return mc.SelectView(navigation.Irrigation) })
	require.NoError(t, err)
	assert.Equal(t, navigation.Irrigation, st.View)

	bob, err := m.Current(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, navigation.Initial(), bob)

	alice, err := m.Current(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, navigation.State{SiteID: "puebla-001", View: navigation.Irrigation}, alice)
}

func TestManager_FailedOperationKeepsState(t *testing.T) {
	ctx := context.Background()
	m := NewManager(roster(t, "puebla-001"), NewMemoryStore())
	_, err := m.Do(ctx, "s", func(mc *navigation.Machine) error { return mc.SelectSite("puebla-001") })
	require.NoError(t, err)

	st, err := m.Do(ctx, "s", func(mc *navigation.Machine) error { return mc.SelectSite("unknown-id") })
	var nf *navigation.SiteNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, navigation.State{SiteID: "puebla-001", View: navigation.General}, st)
}

func TestManager_StaleStateFallsBack(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, "s", navigation.State{SiteID: "deleted-009", View: navigation.Harvest}))

	m := NewManager(roster(t, "puebla-001"), store)
	st, err := m.Current(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, navigation.Initial(), st)

	saved, _, _ := store.Load(ctx, "s")
	assert.Equal(t, navigation.Initial(), saved)
}

func TestManager_SerializesPerSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(roster(t, "puebla-001"), NewMemoryStore())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = m.Do(ctx, "shared", func(mc *navigation.Machine) error {
				if i%2 == 0 {
					return mc.SelectSite("puebla-001")
				}
				mc.ReturnToRoster()
				return nil
			})
		}(i)
	}
	wg.Wait()

	st, err := m.Current(ctx, "shared")
	require.NoError(t, err)
	assert.Contains(t, []navigation.State{
		navigation.Initial(),
		{SiteID: "puebla-001", View: navigation.General},
	}, st)

	m.mu.Lock()
	assert.Empty(t, m.locks)
	m.mu.Unlock()
}

func TestRedisKeyAndDecode(t *testing.T) {
	assert.Equal(t, "inve:nav:abc", key("abc"))

	st, err := decodeState([]byte(`{"site_id":"puebla-001","view":"map"}`))
	require.NoError(t, err)
	assert.Equal(t, navigation.State{SiteID: "puebla-001", View: navigation.Map}, st)

	_, err = decodeState([]byte(`{"view":"weather"}`))
	assert.Error(t, err)
}

// Runs against a real server only when INVE_TEST_REDIS is set, e.g.
// INVE_TEST_REDIS=localhost:6379.
func TestRedisStore_Live(t *testing.T) {
	addr := os.Getenv("INVE_TEST_REDIS")
	if addr == "" {
		t.Skip("INVE_TEST_REDIS not set")
	}
	client, err := NewRedisClient(addr, 0)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	s := NewRedisStore(client, time.Minute)
	sid := uuid.NewString()
	defer s.Delete(ctx, sid)

	_, ok, err := s.Load(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)

	want := navigation.State{SiteID: "puebla-001", View: navigation.Climate}
	require.NoError(t, s.Save(ctx, sid, want))
	got, ok, err := s.Load(ctx, sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	ttl, err := client.TTL(ctx, key(sid)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
