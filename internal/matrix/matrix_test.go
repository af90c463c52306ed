package matrix

import "testing"

func TestEmptyBits(t *testing.T) {
	for x := 0; x < 13; x++ {
		occ := Empty&(1<<uint(x)) != 0
		want := x >= Cols
		if occ != want {
			t.Errorf("bit %d: occ=%v want=%v", x, occ, want)
		}
	}
}

func TestGetEmptyBuffer(t *testing.T) {
	b := NewBuffer()
	if got := b.Get(0); got != Empty {
		t.Errorf("Get(0) = %x, want Empty", got)
	}
	if got := b.Get(1); got != Empty {
		t.Errorf("Get(1) = %x, want Empty", got)
	}
	if got := b.Get(-1); got != Full {
		t.Errorf("Get(-1) = %x, want Full", got)
	}
}

func TestSet(t *testing.T) {
	b := NewBuffer()
	b.Set(0, 0b1)
	if got := b.Get(0); got != Empty|0b1 {
		t.Errorf("Get(0) = %b, want %b", got, Empty|0b1)
	}
	if got := b.Get(1); got != Empty {
		t.Errorf("Get(1) = %b, want Empty", got)
	}
	b.Set(2, 0b100)
	if got := b.Get(0); got != Empty|0b1 {
		t.Errorf("Get(0) after Set(2,..) = %b", got)
	}
	if got := b.Get(2); got != Empty|0b100 {
		t.Errorf("Get(2) = %b, want %b", got, Empty|0b100)
	}
	if got := b.Get(3); got != Empty {
		t.Errorf("Get(3) = %b, want Empty", got)
	}
	b.Set(0, 0b110000)
	if got := b.Get(0); got != Empty|0b110001 {
		t.Errorf("Get(0) = %b, want %b", got, Empty|0b110001)
	}
}

// TestClearLines mirrors end-to-end scenario S5 from the spec.
func TestClearLines(t *testing.T) {
	b := NewBuffer()
	if n := b.ClearLines(0); n != 0 {
		t.Fatalf("ClearLines on empty buffer = %d, want 0", n)
	}
	if b.Len() != 0 {
		t.Fatalf("Len = %d, want 0", b.Len())
	}

	b.Set(0, Full)
	b.Set(1, Full)
	b.Set(2, 0b100)
	b.Set(3, Full)
	b.Set(4, Full)

	if n := b.ClearLines(1); n != 3 {
		t.Fatalf("ClearLines(1) = %d, want 3", n)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if got := b.Get(0); got != Full {
		t.Errorf("Get(0) = %b, want Full", got)
	}
	if got := b.Get(1); got != Empty|0b100 {
		t.Errorf("Get(1) = %b, want %b", got, Empty|0b100)
	}

	if n := b.ClearLines(1); n != 0 {
		t.Fatalf("second ClearLines(1) = %d, want 0", n)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}

	if n := b.ClearLines(0); n != 1 {
		t.Fatalf("ClearLines(0) = %d, want 1", n)
	}
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if got := b.Get(0); got != Empty|0b100 {
		t.Errorf("Get(0) = %b, want %b", got, Empty|0b100)
	}
}

func TestCopyFromAndReset(t *testing.T) {
	src := NewBuffer()
	src.Set(0, 0b101)
	src.Set(1, 0b010)

	dst := NewBuffer()
	dst.CopyFrom(src.View())
	if dst.Len() != 2 {
		t.Fatalf("Len = %d, want 2", dst.Len())
	}
	if got := dst.Get(0); got != Empty|0b101 {
		t.Errorf("Get(0) = %b", got)
	}

	dst.Reset()
	if dst.Len() != 0 {
		t.Fatalf("Len after Reset = %d, want 0", dst.Len())
	}
}

func TestViewOutOfRange(t *testing.T) {
	rows := []uint16{Empty | 0b1, Empty | 0b10}
	v := View(rows)
	if got := v.Get(-1); got != Full {
		t.Errorf("Get(-1) = %x, want Full", got)
	}
	if got := v.Get(2); got != Empty {
		t.Errorf("Get(2) = %x, want Empty", got)
	}
	if got := v.Get(0); got != Empty|0b1 {
		t.Errorf("Get(0) = %b, want %b", got, Empty|0b1)
	}
}
