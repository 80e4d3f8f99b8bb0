package sessions

import (
	"errors"
	"fmt"
	"net"
)

// ErrPortExhausted means a full pass over the free list found no bindable
// port.
var ErrPortExhausted = errors.New("port pool exhausted")

// PortPool hands out TCP ports from a fixed range. List membership alone is
// not authoritative because the range is shared with the host, so Acquire
// probes each candidate with an actual bind. Not safe for concurrent use;
// the Manager serializes access under its mutex.
type PortPool struct {
	free []uint16
}

func NewPortPool(lo, hi uint16) *PortPool {
	free := make([]uint16, 0, hi-lo)
	for p := lo; p < hi; p++ {
		free = append(free, p)
	}
	return &PortPool{free: free}
}

// Acquire returns the first port in the free list that binds. A port that
// fails to bind is rotated to the tail so the next pass retries it last. The
// probe listener is closed right away; the window until the backend binds the
// port is racy in principle, and a collision surfaces as backend startup
// failure.
func (p *PortPool) Acquire() (uint16, error) {
	n := len(p.free)
	for i := 0; i < n; i++ {
		port := p.free[0]
		p.free = p.free[1:]
		l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			p.free = append(p.free, port)
			continue
		}
		_ = l.Close()
		return port, nil
	}
	return 0, ErrPortExhausted
}

// Release appends port to the tail of the free list.
func (p *PortPool) Release(port uint16) {
	p.free = append(p.free, port)
}

// Free returns a copy of the free list.
func (p *PortPool) Free() []uint16 {
	out := make([]uint16, len(p.free))
	copy(out, p.free)
	return out
}
