package main

import (
	"bytes"
	"strings"
	"testing"
)

// The demo must drive every section to completion on the simulated
// board: a register name that misses the descriptor table panics, and a
// constructor failure aborts the walkthrough early.
func TestRunCompletesOnSimulatedBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&out{w: &buf}, newBoard()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"button PF0 armed, irq 30 prio 7",
		"led PF1 on, reads back 1",
		"poll 0: led=0",
		"poll 1: led=1",
		"timer callback ran 2 times",
		"alarm armed, irq 94",
		"probe 0x38: no_ack",
		"register state:",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}
