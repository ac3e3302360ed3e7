package cache_test

import (
	"testing"
	"time"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/cache"

	"github.com/stretchr/testify/assert"
)

func TestGetSet(t *testing.T) {
	s := cache.NewService(5*time.Minute, time.Minute)
	_, found := s.Get("report:statuses")
	assert.False(t, found)

	s.Set("report:statuses", 42, time.Minute)
	v, found := s.Get("report:statuses")
	assert.True(t, found)
	assert.Equal(t, 42, v)
}

func TestExpiration(t *testing.T) {
	s := cache.NewService(5*time.Minute, time.Minute)
	s.Set("overview:counter", "x", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	_, found := s.Get("overview:counter")
	assert.False(t, found)
}

func TestInvalidateByPrefix(t *testing.T) {
	s := cache.NewService(5*time.Minute, time.Minute)
	s.Set("report:statuses", 1, time.Minute)
	s.Set("report:categories", 2, time.Minute)
	s.Set("overview:counter", 3, time.Minute)

	n := s.InvalidateByPrefix("report:")
	assert.Equal(t, 2, n)

	_, found := s.Get("report:statuses")
	assert.False(t, found)
	_, found = s.Get("report:categories")
	assert.False(t, found)
	_, found = s.Get("overview:counter")
	assert.True(t, found)
}
