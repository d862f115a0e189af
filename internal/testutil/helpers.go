// Package testutil provides shared test helpers for netmsg packages.
package testutil

import (
	"math/rand"
	"testing"
)

// Rand returns a deterministic source for the test. The seed is logged so a
// failing run can be reproduced.
func Rand(t testing.TB, seed int64) *rand.Rand {
	t.Helper()
	t.Logf("rand seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

// RandomBytes returns n random bytes.
func RandomBytes(r *rand.Rand, n int) []byte {
	p := make([]byte, n)
	r.Read(p)
	return p
}

// SkewedBytes returns n bytes drawn mostly from a small alphabet, the shape of
// typical packet payloads.
func SkewedBytes(r *rand.Rand, n int) []byte {
	p := make([]byte, n)
	for i := range p {
		if r.Intn(8) == 0 {
			p[i] = byte(r.Intn(256))
		} else {
			p[i] = "\x00\x01\x02\xffabc"[r.Intn(7)]
		}
	}
	return p
}
