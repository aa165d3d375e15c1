package indirection

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Options struct {
	Lang  Lang
	Color bool
}

// Report writes obs as six lines of text: addresses, values, single
// dereference, double dereference and the two notes.
func Report(w io.Writer, obs Observation, opts Options) error {
	cat, ok := catalogs[opts.Lang]
	if !ok {
		cat = catalogs[English]
	}

	label := color.New(color.FgCyan, color.Bold)
	if opts.Color {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	lines := []string{
		fmt.Sprintf("%s-> &a: %s, &b: %s, &c: %s", label.Sprint(cat.addresses), obs.AddrA, obs.AddrB, obs.AddrC),
		fmt.Sprintf("%s-> a: %d, b: %s, c: %s", label.Sprint(cat.values), obs.ValA, obs.ValB, obs.ValC),
		fmt.Sprintf("%s-> *b: %d, *c: %s", label.Sprint(cat.deref), obs.DerefB, obs.DerefC),
		fmt.Sprintf("%s-> **c: %d", label.Sprint(cat.derefDeref), obs.DerefDerefC),
		cat.notes[0],
		cat.notes[1],
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	return nil
}

// Run builds the demo chain and reports it to w.
func Run(w io.Writer, opts Options) error {
	return Report(w, Observe(NewChain(Value)), opts)
}
