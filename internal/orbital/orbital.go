package orbital

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantumNumbers indicates an (n, l, m) triple that does not
// describe a hydrogen-like orbital.
var ErrInvalidQuantumNumbers = errors.New("orbital: invalid quantum numbers")

// Orbital is the quantum state (n, l, m) of a hydrogen-like electron.
// Construct values through New so the invariants n >= 1, 0 <= l < n and
// |m| <= l always hold.
type Orbital struct {
	N int // principal quantum number
	L int // azimuthal quantum number
	M int // magnetic quantum number
}

// New validates the quantum numbers and returns the orbital. Callers that
// take user input must clamp before calling; New rejects instead of fixing.
func New(n, l, m int) (Orbital, error) {
	if n < 1 {
		return Orbital{}, fmt.Errorf("%w: n must be >= 1, got %d", ErrInvalidQuantumNumbers, n)
	}
	if l < 0 || l >= n {
		return Orbital{}, fmt.Errorf("%w: l must satisfy 0 <= l < n, got l=%d n=%d", ErrInvalidQuantumNumbers, l, n)
	}
	if m < -l || m > l {
		return Orbital{}, fmt.Errorf("%w: |m| must be <= l, got m=%d l=%d", ErrInvalidQuantumNumbers, m, l)
	}
	return Orbital{N: n, L: l, M: m}, nil
}

// MustNew is New for statically known quantum numbers; it panics on invalid
// input.
func MustNew(n, l, m int) Orbital {
	o, err := New(n, l, m)
	if err != nil {
		panic(err)
	}
	return o
}

// GroundState returns the 1s orbital.
func GroundState() Orbital {
	return Orbital{N: 1, L: 0, M: 0}
}

// IsGround reports whether the orbital is the 1s ground state.
func (o Orbital) IsGround() bool {
	return o.N == 1 && o.L == 0 && o.M == 0
}

var subshellLetters = "spdfghik"

// String renders the orbital in spectroscopic notation, e.g. "2p(m=-1)".
func (o Orbital) String() string {
	letter := byte('?')
	if o.L >= 0 && o.L < len(subshellLetters) {
		letter = subshellLetters[o.L]
	}
	return fmt.Sprintf("%d%c(m=%d)", o.N, letter, o.M)
}
