package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("inventario_completo", []string{"harina", "azucar"})

	v, ok := c.Get("inventario_completo")
	assert.True(t, ok)
	assert.Equal(t, []string{"harina", "azucar"}, v)

	_, ok = c.Get("otra_clave")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := New(time.Minute)
	c.SetTTL("efimera", 42, 10*time.Millisecond)

	_, ok := c.Get("efimera")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get("efimera")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestInvalidatePattern(t *testing.T) {
	c := New(time.Minute)
	c.Set("producto_harina", 1)
	c.Set("producto_azucar", 2)
	c.Set("inventario_completo", 3)

	c.InvalidatePattern("producto_")

	_, ok := c.Get("producto_harina")
	assert.False(t, ok)
	_, ok = c.Get("producto_azucar")
	assert.False(t, ok)
	_, ok = c.Get("inventario_completo")
	assert.True(t, ok)
}

func TestStats(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", 1)
	c.Get("k")
	c.Get("k")
	c.Get("miss")
	c.Invalidate("k")

	s := c.GetStats()
	assert.Equal(t, int64(2), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, int64(1), s.Sets)
	assert.Equal(t, int64(1), s.Deletes)
	assert.Equal(t, 0, s.Entries)
}

func TestClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}
