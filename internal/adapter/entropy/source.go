package entropy

import "math/rand"

// Source is the production random source behind the domain's Rand port.
// math/rand's global generator is auto-seeded and safe for concurrent use.
type Source struct{}

func (Source) Intn(n int) int {
	return rand.Intn(n)
}
