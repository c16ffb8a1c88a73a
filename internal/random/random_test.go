package random

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestSecureIntnInRange(t *testing.T) {
	s := NewSecure()
	for n := 1; n <= 20; n++ {
		for i := 0; i < 50; i++ {
			v := s.Intn(n)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, n)
		}
	}
}

func TestSecureFallsBackWhenReaderFails(t *testing.T) {
	s := &Secure{Reader: failingReader{}}
	for i := 0; i < 100; i++ {
		v := s.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestSecurePanicsOnInvalidBound(t *testing.T) {
	assert.Panics(t, func() { NewSecure().Intn(0) })
}

func TestScripted(t *testing.T) {
	s := &Scripted{Values: []int{5, 1, 12}}
	assert.Equal(t, 2, s.Intn(3))
	assert.Equal(t, 1, s.Intn(3))
	assert.Equal(t, 2, s.Intn(10))
	assert.Equal(t, 1, s.Intn(4)) // wraps around
}
