package automata

import (
	"errors"
	"slices"
	"testing"
)

func newLifeSim(t *testing.T, w, h int, opts ...Option) *Simulation {
	t.Helper()
	g, err := NewGrid(w, h, nil, 2, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	k := Moore(1)
	r, err := NewLifeRule([]int{3}, []int{2, 3}, k)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := NewSimulation(g, k, r, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestBlinkerOscillation(t *testing.T) {
	sim := newLifeSim(t, 5, 5)
	if err := Stamp(sim.Grid(), Blinker(), 2, 1); err != nil {
		t.Fatal(err)
	}

	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	state := sim.State()
	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := state[y*5+x] == 1
			if alive != horizontal[[2]int{x, y}] {
				t.Fatalf("after one step cell (%d,%d) alive=%v, expected %v", x, y, alive, horizontal[[2]int{x, y}])
			}
		}
	}

	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	state = sim.State()
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := state[y*5+x] == 1
			if alive != vertical[[2]int{x, y}] {
				t.Fatalf("after two steps cell (%d,%d) alive=%v, expected %v", x, y, alive, vertical[[2]int{x, y}])
			}
		}
	}
}

func TestGliderTranslation(t *testing.T) {
	const n = 16
	sim := newLifeSim(t, n, n)
	if err := Stamp(sim.Grid(), Glider(), 1, 1); err != nil {
		t.Fatal(err)
	}
	initial := sim.State()

	if err := sim.StepN(4); err != nil {
		t.Fatal(err)
	}
	got := sim.State()

	// Four generations translate the glider one cell down and right.
	want := make([]uint8, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			want[((y+1)%n)*n+(x+1)%n] = initial[y*n+x]
		}
	}
	if !slices.Equal(got, want) {
		t.Fatal("glider did not reappear shifted by (1,1) after four generations")
	}
	if sim.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", sim.Generation())
	}
}

func TestGliderTranslationFFT(t *testing.T) {
	const n = 16
	g, err := NewGrid(n, n, nil, 2, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	k := Moore(1)
	r, err := NewLifeRule([]int{3}, []int{2, 3}, k)
	if err != nil {
		t.Fatal(err)
	}
	fft, err := NewFFTAggregator(g, k)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := NewSimulation(g, k, r, WithAggregator(fft))
	if err != nil {
		t.Fatal(err)
	}
	if err := Stamp(g, Glider(), 1, 1); err != nil {
		t.Fatal(err)
	}
	initial := sim.State()

	if err := sim.StepN(4); err != nil {
		t.Fatal(err)
	}
	got := sim.State()
	want := make([]uint8, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			want[((y+1)%n)*n+(x+1)%n] = initial[y*n+x]
		}
	}
	if !slices.Equal(got, want) {
		t.Fatal("FFT backend must move the glider exactly like the direct backend")
	}
}

func TestLocality(t *testing.T) {
	// Flipping one cell may only change the next generation within that
	// cell's kernel footprint.
	const n = 12
	base := newLifeSim(t, n, n)
	FillDensity(NewRNG(3), base.Grid().Cells(), 0.4)

	perturbed := newLifeSim(t, n, n)
	copy(perturbed.Grid().Cells(), base.Grid().Cells())
	const px, py = 5, 7
	cells := perturbed.Grid().Cells()
	cells[py*n+px] ^= 1

	if err := base.Step(); err != nil {
		t.Fatal(err)
	}
	if err := perturbed.Step(); err != nil {
		t.Fatal(err)
	}
	a, b := base.State(), perturbed.State()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if a[y*n+x] == b[y*n+x] {
				continue
			}
			dx := min((x-px+n)%n, (px-x+n)%n)
			dy := min((y-py+n)%n, (py-y+n)%n)
			if dx > 1 || dy > 1 {
				t.Fatalf("perturbing (%d,%d) changed cell (%d,%d) outside its neighborhood", px, py, x, y)
			}
		}
	}
}

func TestEmptyGridStable(t *testing.T) {
	sim := newLifeSim(t, 8, 8)
	if err := sim.StepN(25); err != nil {
		t.Fatal(err)
	}
	for i, v := range sim.State() {
		if v != 0 {
			t.Fatalf("cell %d became %d on an empty grid", i, v)
		}
	}
	if sim.Generation() != 25 {
		t.Fatalf("generation = %d, want 25", sim.Generation())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []uint8 {
		sim := newLifeSim(t, 20, 20)
		FillDensity(NewRNG(99), sim.Grid().Cells(), 0.4)
		if err := sim.StepN(10); err != nil {
			t.Fatal(err)
		}
		return sim.State()
	}
	if !slices.Equal(run(), run()) {
		t.Fatal("identical seeds must produce identical trajectories")
	}
}

func TestStepNBounds(t *testing.T) {
	sim := newLifeSim(t, 4, 4)
	if err := sim.StepN(-1); err == nil {
		t.Fatal("negative step counts must be rejected")
	}
	if err := sim.StepN(0); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 0 {
		t.Fatal("StepN(0) must not advance the generation counter")
	}
}

func TestRuleOutputValidatedEagerly(t *testing.T) {
	g, err := NewGrid(4, 4, nil, 2, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	bad := NewFuncRule(2, WeightedSum, func(uint8, int, []int) uint8 { return 7 })
	sim, err := NewSimulation(g, Moore(1), bad)
	if err != nil {
		t.Fatal(err)
	}
	before := sim.State()

	err = sim.Step()
	var se *SymbolError
	if !errors.As(err, &se) {
		t.Fatalf("out-of-alphabet rule output must fail with SymbolError, got %v", err)
	}
	if !slices.Equal(sim.State(), before) {
		t.Fatal("a failed step must not corrupt the grid")
	}
	if sim.Generation() != 0 {
		t.Fatal("a failed step must not advance the generation counter")
	}
}

func TestPerSymbolStep(t *testing.T) {
	// A dead cell surrounded by exactly two firing cells starts firing,
	// firing cells decay, dying cells clear: one Brian's Brain step.
	g, err := NewGrid(3, 3, []uint8{
		0, 1, 0,
		0, 0, 1,
		0, 2, 0,
	}, 3, ZeroFill)
	if err != nil {
		t.Fatal(err)
	}
	rule := NewFuncRule(3, PerSymbolCounts, func(current uint8, _ int, counts []int) uint8 {
		switch current {
		case 1:
			return 2
		case 2:
			return 0
		}
		if counts[1] == 2 {
			return 1
		}
		return 0
	})
	sim, err := NewSimulation(g, Moore(1), rule)
	if err != nil {
		t.Fatal(err)
	}
	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	state := sim.State()
	if state[g.Index(1, 0)] != 2 || state[g.Index(2, 1)] != 2 {
		t.Fatal("firing cells must decay to dying")
	}
	if state[g.Index(1, 2)] != 0 {
		t.Fatal("dying cells must clear")
	}
	if state[g.Index(1, 1)] != 1 {
		t.Fatal("a dead cell with two firing neighbors must fire")
	}
}

func TestAlphabetMismatch(t *testing.T) {
	g, err := NewGrid(4, 4, nil, 2, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	three := NewFuncRule(3, WeightedSum, func(current uint8, _ int, _ []int) uint8 { return current })
	if _, err := NewSimulation(g, Moore(1), three); err == nil {
		t.Fatal("rule and grid alphabets must agree")
	}
}

func TestSharedRuleAcrossSimulations(t *testing.T) {
	k := Moore(1)
	r, err := NewLifeRule([]int{3}, []int{2, 3}, k)
	if err != nil {
		t.Fatal(err)
	}
	states := make([][]uint8, 2)
	for i := range states {
		g, err := NewGrid(12, 12, nil, 2, Wrap)
		if err != nil {
			t.Fatal(err)
		}
		FillDensity(NewRNG(7), g.Cells(), 0.5)
		sim, err := NewSimulation(g, k, r)
		if err != nil {
			t.Fatal(err)
		}
		if err := sim.StepN(6); err != nil {
			t.Fatal(err)
		}
		states[i] = sim.State()
	}
	if !slices.Equal(states[0], states[1]) {
		t.Fatal("sharing an immutable kernel and rule must not couple simulations")
	}
}
