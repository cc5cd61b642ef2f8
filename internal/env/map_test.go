package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_SetLookupUnset(t *testing.T) {
	t.Parallel()

	m := Empty()
	_, found := m.Lookup("TASKHOST_APP_NAME")
	assert.False(t, found)

	m.Set("TASKHOST_APP_NAME", "orders")
	value, found := m.Lookup("TASKHOST_APP_NAME")
	assert.True(t, found)
	assert.Equal(t, "orders", value)
	assert.Equal(t, "orders", m.Get("TASKHOST_APP_NAME"))

	m.Unset("TASKHOST_APP_NAME")
	_, found = m.Lookup("TASKHOST_APP_NAME")
	assert.False(t, found)
	assert.Empty(t, m.Get("TASKHOST_APP_NAME"))
}

func TestMap_Clone(t *testing.T) {
	t.Parallel()

	original := FromMap(map[string]string{"A": "1"})
	clone := original.Clone()
	clone.Set("A", "2")
	clone.Set("B", "3")

	assert.Equal(t, "1", original.Get("A"))
	_, found := original.Lookup("B")
	assert.False(t, found)
}

func TestMap_Merge(t *testing.T) {
	t.Parallel()

	t.Run("existing keys kept without overwrite", func(t *testing.T) {
		base := FromMap(map[string]string{"A": "base"})
		other := FromMap(map[string]string{"A": "other", "B": "new"})

		base.Merge(other, false)
		assert.Equal(t, "base", base.Get("A"))
		assert.Equal(t, "new", base.Get("B"))
	})

	t.Run("overwrite replaces existing keys", func(t *testing.T) {
		base := FromMap(map[string]string{"A": "base"})
		other := FromMap(map[string]string{"A": "other"})

		base.Merge(other, true)
		assert.Equal(t, "other", base.Get("A"))
	})
}

func TestMap_ToSlice(t *testing.T) {
	t.Parallel()

	m := FromMap(map[string]string{"B": "2", "A": "1"})
	assert.Equal(t, []string{"A=1", "B=2"}, m.ToSlice())
}

func TestFromOS(t *testing.T) {
	t.Setenv("TASKHOST_TEST_FROMOS", "present")

	m := FromOS()
	value, found := m.Lookup("TASKHOST_TEST_FROMOS")
	require.True(t, found)
	assert.Equal(t, "present", value)
}

func TestFromOS_IsSnapshot(t *testing.T) {
	t.Setenv("TASKHOST_TEST_SNAPSHOT", "before")

	m := FromOS()
	t.Setenv("TASKHOST_TEST_SNAPSHOT", "after")

	assert.Equal(t, "before", m.Get("TASKHOST_TEST_SNAPSHOT"))
}
