package indirection

import "fmt"

// Value is what the demo stores in a.
const Value = 3

// Chain is a value, a pointer to it, and a pointer to that pointer.
type Chain struct {
	A int
	B *int
	C **int
}

func NewChain(v int) *Chain {
	ch := &Chain{A: v}
	ch.B = &ch.A
	ch.C = &ch.B
	return ch
}

// Observation is a formatted snapshot of a Chain. Addresses use %p, so
// they look like 0xc000012345 and are only meaningful within one run.
type Observation struct {
	AddrA string
	AddrB string
	AddrC string

	ValA int
	ValB string
	ValC string

	DerefB      int
	DerefC      string
	DerefDerefC int
}

func Observe(ch *Chain) Observation {
	return Observation{
		AddrA: addr(&ch.A),
		AddrB: addr(&ch.B),
		AddrC: addr(&ch.C),

		ValA: ch.A,
		ValB: addr(ch.B),
		ValC: addr(ch.C),

		DerefB:      *ch.B,
		DerefC:      addr(*ch.C),
		DerefDerefC: **ch.C,
	}
}

func addr(p interface{}) string {
	return fmt.Sprintf("%p", p)
}
