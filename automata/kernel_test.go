package automata

import (
	"errors"
	"testing"
)

func TestMooreKernel(t *testing.T) {
	k := Moore(1)
	if k.Width() != 3 || k.Height() != 3 {
		t.Fatalf("Moore(1) size = %dx%d, want 3x3", k.Width(), k.Height())
	}
	ax, ay := k.Anchor()
	if k.Weight(ax, ay) != 0 {
		t.Fatal("Moore anchor must be excluded from the sum")
	}
	if k.Sum() != 8 {
		t.Fatalf("Moore(1) sum = %d, want 8", k.Sum())
	}
	if Moore(2).Sum() != 24 {
		t.Fatalf("Moore(2) sum = %d, want 24", Moore(2).Sum())
	}
}

func TestVonNeumannKernel(t *testing.T) {
	k := VonNeumann(1)
	if k.Sum() != 4 {
		t.Fatalf("VonNeumann(1) sum = %d, want 4", k.Sum())
	}
	if k.Weight(0, 0) != 0 {
		t.Fatal("corner weight should be zero")
	}
	if k.Weight(1, 0) != 1 {
		t.Fatal("orthogonal weight should be one")
	}
	if VonNeumann(2).Sum() != 12 {
		t.Fatalf("VonNeumann(2) sum = %d, want 12", VonNeumann(2).Sum())
	}
}

func TestExtendedVonNeumannKernel(t *testing.T) {
	k := ExtendedVonNeumann()
	if k.Width() != 5 || k.Height() != 5 {
		t.Fatal("extended neighborhood must be 5x5")
	}
	if k.Sum() != 8 {
		t.Fatalf("extended sum = %d, want 8", k.Sum())
	}
	if k.Weight(2, 2) != 0 {
		t.Fatal("anchor must be excluded")
	}
	if k.Weight(0, 2) != 1 || k.Weight(2, 4) != 1 {
		t.Fatal("arm cells must be weighted")
	}
	if k.Weight(1, 1) != 0 {
		t.Fatal("diagonal cells must not be weighted")
	}
}

func TestWolframKernel(t *testing.T) {
	k := Wolfram()
	if k.Width() != 3 || k.Height() != 1 {
		t.Fatal("Wolfram kernel must be 1x3")
	}
	if k.Weight(0, 0) != 4 || k.Weight(1, 0) != 2 || k.Weight(2, 0) != 1 {
		t.Fatal("Wolfram taps must pack left/center/right as a 3-bit index")
	}
}

func TestParseKernel(t *testing.T) {
	k, err := ParseKernel("vonneumann", 2)
	if err != nil {
		t.Fatal(err)
	}
	if k.Sum() != 12 {
		t.Fatalf("parsed vonneumann radius 2 sum = %d, want 12", k.Sum())
	}
	k, err = ParseKernel("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if k.Sum() != 8 {
		t.Fatalf("empty description should default to Moore(1), sum = %d", k.Sum())
	}

	k, err = ParseKernel("1,1,1;1,0,1;1,1,1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if k.Width() != 3 || k.Height() != 3 || k.Sum() != 8 {
		t.Fatalf("custom matrix parsed as %dx%d sum %d", k.Width(), k.Height(), k.Sum())
	}
	ax, ay := k.Anchor()
	if ax != 1 || ay != 1 {
		t.Fatalf("custom matrix anchor = (%d,%d), want center", ax, ay)
	}

	var ke *KernelError
	if _, err := ParseKernel("1,1;1", 0); !errors.As(err, &ke) {
		t.Fatalf("ragged rows: expected KernelError, got %v", err)
	}
	if _, err := ParseKernel("1,x,1", 0); !errors.As(err, &ke) {
		t.Fatalf("non-integer weight: expected KernelError, got %v", err)
	}
}

func TestNewKernelValidation(t *testing.T) {
	if _, err := NewKernel([]int{1, 1}, 2, 2, 0, 0); err == nil {
		t.Fatal("expected error for mismatched weight count")
	}
	_, err := NewKernel([]int{1, 1, 1, 1}, 2, 2, 2, 0)
	if err == nil {
		t.Fatal("expected error for anchor outside bounds")
	}
	var ke *KernelError
	if !errors.As(err, &ke) {
		t.Fatalf("expected KernelError, got %v", err)
	}

	k, err := NewKernel([]int{1, 2, 3, 4, 5, 6}, 3, 2, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if k.Sum() != 21 {
		t.Fatalf("custom kernel sum = %d, want 21", k.Sum())
	}
	if k.Weight(2, 1) != 6 {
		t.Fatal("weights must be stored row-major")
	}
}
