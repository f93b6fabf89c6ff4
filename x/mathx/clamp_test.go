package mathx

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatal("Clamp failed")
	}
	// Swapped bounds.
	if Clamp(5, 3, 0) != 3 {
		t.Fatal("Clamp with swapped bounds failed")
	}
}

func TestBetween(t *testing.T) {
	if !Between(uint32(7), 0, 10) || Between(uint32(11), 0, 10) {
		t.Fatal("Between failed")
	}
	if !Between(5, 10, 0) {
		t.Fatal("Between with swapped bounds failed")
	}
}
