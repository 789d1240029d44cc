package automata

import "sync"

// Mode describes which aggregate form a rule consumes.
type Mode int

const (
	// WeightedSum rules consume a single weighted neighbor sum per cell.
	WeightedSum Mode = iota
	// PerSymbolCounts rules consume one neighbor count per alphabet symbol,
	// computed by convolving a binary indicator of each symbol.
	PerSymbolCounts
)

// Aggregator computes neighborhood aggregates for every cell of a grid at
// once. Implementations are pure: they read the grid and write dst, nothing
// else, so they may parallelize freely within one call.
type Aggregator interface {
	// Aggregate writes the weighted neighbor sum of each cell into dst,
	// which must have one entry per grid cell.
	Aggregate(g *Grid, k *Kernel, dst []int) error
	// AggregatePerSymbol writes, for each alphabet symbol s, the weighted
	// count of neighbors holding s into dst[s]. dst must have one slice per
	// symbol, each with one entry per grid cell.
	AggregatePerSymbol(g *Grid, k *Kernel, dst [][]int) error
}

// DirectAggregator evaluates the kernel taps cell by cell. Workers > 1
// splits the grid into horizontal bands processed concurrently; results are
// identical regardless of worker count.
type DirectAggregator struct {
	Workers int
}

// Aggregate implements Aggregator.
func (a DirectAggregator) Aggregate(g *Grid, k *Kernel, dst []int) error {
	if len(dst) != g.w*g.h {
		return &ShapeError{WantW: g.w, WantH: g.h, Got: len(dst)}
	}
	a.bands(g, func(y0, y1 int) {
		sumRows(g, k, dst, y0, y1)
	})
	return nil
}

// AggregatePerSymbol implements Aggregator.
func (a DirectAggregator) AggregatePerSymbol(g *Grid, k *Kernel, dst [][]int) error {
	if len(dst) != g.states {
		return &SymbolError{Index: -1, Value: uint8(len(dst)), States: g.states}
	}
	for _, d := range dst {
		if len(d) != g.w*g.h {
			return &ShapeError{WantW: g.w, WantH: g.h, Got: len(d)}
		}
	}
	a.bands(g, func(y0, y1 int) {
		countRows(g, k, dst, y0, y1)
	})
	return nil
}

// bands runs fn over horizontal slices of the grid, concurrently when more
// than one worker is configured.
func (a DirectAggregator) bands(g *Grid, fn func(y0, y1 int)) {
	workers := a.Workers
	if workers > g.h {
		workers = g.h
	}
	if workers <= 1 {
		fn(0, g.h)
		return
	}
	band := (g.h + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < g.h; y0 += band {
		y1 := y0 + band
		if y1 > g.h {
			y1 = g.h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func sumRows(g *Grid, k *Kernel, dst []int, y0, y1 int) {
	ax, ay := k.ax, k.ay
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			sum := 0
			for ky := 0; ky < k.h; ky++ {
				for kx := 0; kx < k.w; kx++ {
					w := k.weights[ky*k.w+kx]
					if w == 0 {
						continue
					}
					sum += w * int(g.At(x+kx-ax, y+ky-ay))
				}
			}
			dst[y*g.w+x] = sum
		}
	}
}

func countRows(g *Grid, k *Kernel, dst [][]int, y0, y1 int) {
	ax, ay := k.ax, k.ay
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			for s := range dst {
				dst[s][idx] = 0
			}
			for ky := 0; ky < k.h; ky++ {
				for kx := 0; kx < k.w; kx++ {
					w := k.weights[ky*k.w+kx]
					if w == 0 {
						continue
					}
					dst[g.At(x+kx-ax, y+ky-ay)][idx] += w
				}
			}
		}
	}
}

// NewPerSymbolBuffer allocates one count slice per alphabet symbol, shaped
// for the given grid.
func NewPerSymbolBuffer(g *Grid) [][]int {
	dst := make([][]int, g.states)
	for i := range dst {
		dst[i] = make([]int, g.w*g.h)
	}
	return dst
}
