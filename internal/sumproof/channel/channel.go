// Package channel implements a byte-oriented Fiat-Shamir absorb/squeeze
// primitive, adapted from the project's sha3-backed transcript channel to
// back the transcript package's reference Transcript implementation.
package channel

import "golang.org/x/crypto/sha3"

// Channel holds a running absorbed state and produces pseudorandom bytes
// from it on demand. It has no notion of field elements; transcript builds
// that layer on top.
type Channel struct {
	state []byte
}

// New creates a channel seeded deterministically from label.
func New(label string) *Channel {
	c := &Channel{}
	c.Reset(label)
	return c
}

// Reset reseeds the channel to its deterministic initial state.
func (c *Channel) Reset(label string) {
	c.state = hash([]byte(label))
}

// Absorb folds data into the channel state.
func (c *Channel) Absorb(data []byte) {
	buf := append(append([]byte(nil), c.state...), data...)
	c.state = hash(buf)
}

// Squeeze derives pseudorandom output bytes from the current state and
// ratchets the state forward so repeated squeezes are independent.
func (c *Channel) Squeeze() []byte {
	out := hash(append(append([]byte(nil), c.state...), 0x01))
	c.state = hash(append(append([]byte(nil), c.state...), 0x02))
	return out
}

func hash(data []byte) []byte {
	h := sha3.Sum256(data)
	return h[:]
}
