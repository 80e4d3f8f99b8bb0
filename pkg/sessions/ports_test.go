package sessions

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortPoolAcquireRelease(t *testing.T) {
	const lo, hi = 28000, 28010
	pool := NewPortPool(lo, hi)

	inUse := make(map[uint16]bool)
	for i := 0; i < 4; i++ {
		port, err := pool.Acquire()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, port, uint16(lo))
		assert.Less(t, port, uint16(hi))
		assert.False(t, inUse[port], "port %d handed out twice", port)
		inUse[port] = true
	}

	// In-use and free are disjoint and together cover the range.
	free := pool.Free()
	assert.Len(t, free, hi-lo-len(inUse))
	seen := make(map[uint16]bool)
	for p := range inUse {
		seen[p] = true
	}
	for _, p := range free {
		assert.False(t, seen[p], "port %d both in use and free", p)
		seen[p] = true
	}
	assert.Len(t, seen, hi-lo)

	for p := range inUse {
		pool.Release(p)
	}
	assert.Len(t, pool.Free(), hi-lo)
}

func TestPortPoolSkipsOccupiedPort(t *testing.T) {
	const lo, hi = 28100, 28110
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", lo))
	require.NoError(t, err)
	defer l.Close()

	pool := NewPortPool(lo, hi)
	port, err := pool.Acquire()
	require.NoError(t, err)
	assert.Equal(t, uint16(lo+1), port)

	// The occupied port was rotated to the tail, not lost.
	free := pool.Free()
	require.NotEmpty(t, free)
	assert.Equal(t, uint16(lo), free[len(free)-1])
}

func TestPortPoolExhausted(t *testing.T) {
	const lo, hi = 28200, 28201
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", lo))
	require.NoError(t, err)
	defer l.Close()

	pool := NewPortPool(lo, hi)
	_, err = pool.Acquire()
	assert.ErrorIs(t, err, ErrPortExhausted)
	assert.Len(t, pool.Free(), 1)
}
