package random

import (
	crand "crypto/rand"
	"io"
	"log"
	"math/big"
	"math/rand"
	"sync"
)

// Source draws uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Secure draws from crypto/rand. If the system source fails it falls back to
// math/rand for that draw. The fallback keeps the game playable; it is not a
// cryptographic guarantee.
type Secure struct {
	// Reader defaults to crypto/rand.Reader
	Reader io.Reader

	warnOnce sync.Once
}

// NewSecure returns a Source reading from crypto/rand
func NewSecure() *Secure {
	return &Secure{}
}

// Intn returns a uniform value in [0, n). crand.Int rejects out-of-range draws,
// so there is no modulo bias. Panics if n <= 0, like math/rand.
func (s *Secure) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	r := s.Reader
	if r == nil {
		r = crand.Reader
	}
	v, err := crand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		// fallback to math/rand if crypto fails
		s.warnOnce.Do(func() {
			log.Printf("WARN: secure random source failed, falling back to math/rand: %v", err)
		})
		return rand.Intn(n)
	}
	return int(v.Int64())
}

// Scripted replays a fixed sequence of draws, each reduced modulo n. Used to
// make shuffles reproducible in tests.
type Scripted struct {
	Values []int
	pos    int
}

func (s *Scripted) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
