package repository

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Port 1 is reserved and refuses connections, so every call fails fast.
const unreachableRedis = "127.0.0.1:1"

func TestRedisCache_UnreachableIsAMiss(t *testing.T) {
	var logs bytes.Buffer
	c := NewRedisCache(unreachableRedis, time.Minute, zerolog.New(&logs))
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, c.Ping(ctx))

	_, ok := c.Get("calc:mortgage:abc")
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "cache lookup failed")

	assert.Error(t, c.Set("calc:mortgage:abc", "v"))
}
