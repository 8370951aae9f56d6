package remote

import (
	"testing"
	"time"

	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	m.Run()
}

func TestCacheGetOnlyFresh(t *testing.T) {
	c := NewCache()
	key := ListKey("employees")

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Put(key, []byte(`[{"id":"e1"}]`))
	body, ok := c.Get(key)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"e1"}]`, string(body))

	// Age the entry past the freshness window; it must stop serving.
	c.mu.Lock()
	entry := c.entries[key.String()]
	entry.fetchedAt = time.Now().Add(-DefaultFreshFor - time.Second)
	c.entries[key.String()] = entry
	c.mu.Unlock()

	_, ok = c.Get(key)
	assert.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache()
	c.Put(ListKey("employees"), []byte(`[]`))
	c.Put(DetailKey("employees", "e1"), []byte(`{}`))

	c.Invalidate(ListKey("employees"))

	_, ok := c.Get(ListKey("employees"))
	assert.False(t, ok)
	_, ok = c.Get(DetailKey("employees", "e1"))
	assert.True(t, ok)
}

func TestSweepEvictsOnlyExpired(t *testing.T) {
	c := NewCache()
	c.Put(ListKey("employees"), []byte(`[]`))
	c.Put(ListKey("payslips"), []byte(`[]`))

	// One entry is stale but retained, one is past retention.
	c.mu.Lock()
	stale := c.entries[ListKey("employees").String()]
	stale.fetchedAt = time.Now().Add(-DefaultFreshFor - time.Minute)
	c.entries[ListKey("employees").String()] = stale

	old := c.entries[ListKey("payslips").String()]
	old.fetchedAt = time.Now().Add(-DefaultRetainFor - time.Minute)
	c.entries[ListKey("payslips").String()] = old
	c.mu.Unlock()

	evicted := c.Sweep(time.Now())
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, c.len())
}

func TestStopIsIdempotent(t *testing.T) {
	c := NewCache()
	c.StartJanitor(time.Hour)
	c.Stop()
	c.Stop()
}
