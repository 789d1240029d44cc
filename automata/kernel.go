package automata

import (
	"strconv"
	"strings"
)

// Kernel is a small immutable weighting template describing which relative
// offsets count as neighbors and with what weight. The anchor marks the
// "self" position; every tap is read at an offset relative to it.
type Kernel struct {
	w, h    int
	ax, ay  int
	weights []int
}

// NewKernel builds a kernel from row-major weights with the anchor at
// (ax, ay). The anchor must lie inside the weight bounds.
func NewKernel(weights []int, w, h, ax, ay int) (*Kernel, error) {
	if w <= 0 || h <= 0 {
		return nil, &KernelError{Reason: "non-positive dimensions"}
	}
	if len(weights) != w*h {
		return nil, &KernelError{Reason: "weight count does not match dimensions"}
	}
	if ax < 0 || ax >= w || ay < 0 || ay >= h {
		return nil, &KernelError{Reason: "anchor outside weight bounds"}
	}
	return &Kernel{w: w, h: h, ax: ax, ay: ay, weights: append([]int(nil), weights...)}, nil
}

// Moore returns the Moore neighborhood of the given radius: uniform weight 1
// on every cell of the (2r+1)² square except the anchor, which is excluded.
func Moore(radius int) *Kernel {
	if radius < 1 {
		radius = 1
	}
	size := 2*radius + 1
	weights := make([]int, size*size)
	for i := range weights {
		weights[i] = 1
	}
	weights[radius*size+radius] = 0
	return &Kernel{w: size, h: size, ax: radius, ay: radius, weights: weights}
}

// VonNeumann returns the von Neumann neighborhood of the given radius: weight
// 1 on cells within Manhattan distance r of the anchor, anchor excluded.
func VonNeumann(radius int) *Kernel {
	if radius < 1 {
		radius = 1
	}
	size := 2*radius + 1
	weights := make([]int, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-radius, y-radius
			if dx == 0 && dy == 0 {
				continue
			}
			if abs(dx)+abs(dy) <= radius {
				weights[y*size+x] = 1
			}
		}
	}
	return &Kernel{w: size, h: size, ax: radius, ay: radius, weights: weights}
}

// ExtendedVonNeumann returns the 5x5 plus-shaped neighborhood: the four
// orthogonal arms out to distance 2, anchor excluded.
func ExtendedVonNeumann() *Kernel {
	weights := make([]int, 25)
	for d := 1; d <= 2; d++ {
		weights[2*5+(2+d)] = 1
		weights[2*5+(2-d)] = 1
		weights[(2+d)*5+2] = 1
		weights[(2-d)*5+2] = 1
	}
	return &Kernel{w: 5, h: 5, ax: 2, ay: 2, weights: weights}
}

// Wolfram returns the 1x3 kernel whose taps 4, 2, 1 pack a cell and its two
// horizontal neighbors into the standard elementary-rule index.
func Wolfram() *Kernel {
	return &Kernel{w: 3, h: 1, ax: 1, ay: 0, weights: []int{4, 2, 1}}
}

// Member cells of the named neighborhoods in digit order: digit p of a
// positional base-b aggregate is the cell at offset [p]. Moore runs row-major
// and includes the center; the plus shapes run top arm, middle row left to
// right, bottom arm.
var (
	mooreOffsets = [][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {0, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	vonNeumannOffsets = [][2]int{
		{0, -1},
		{-1, 0}, {0, 0}, {1, 0},
		{0, 1},
	}
	extendedOffsets = [][2]int{
		{0, -2},
		{0, -1},
		{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
		{0, 1},
		{0, 2},
	}
)

func neighborhoodOffsets(name string) ([][2]int, bool) {
	switch strings.ToLower(name) {
	case "moore":
		return mooreOffsets, true
	case "vonneumann", "von neumann", "von-neumann":
		return vonNeumannOffsets, true
	case "extended":
		return extendedOffsets, true
	}
	return nil, false
}

// aggregateSpan returns base^size. The full non-totalistic table holds
// base*span entries, so combinations past that bound are rejected before
// anything is allocated.
func aggregateSpan(base, size int) (int, error) {
	const maxEntries = 1 << 24
	span := 1
	for i := 0; i < size; i++ {
		if span > maxEntries/(base*base) {
			return 0, &KernelError{Reason: "alphabet too large to precompute this neighborhood"}
		}
		span *= base
	}
	return span, nil
}

// NonTotalisticKernel returns the positional weighting that packs a whole
// named neighborhood into a single base-b aggregate: member cell p
// contributes its state times base^p, so distinct configurations always
// yield distinct sums. Pair it with NewNonTotalisticRule over the same base
// and neighborhood.
func NonTotalisticKernel(base int, neighborhood string) (*Kernel, error) {
	offsets, ok := neighborhoodOffsets(neighborhood)
	if !ok {
		return nil, &KernelError{Reason: "unknown neighborhood " + strconv.Quote(neighborhood)}
	}
	if base < 2 {
		return nil, &KernelError{Reason: "positional base must be at least 2"}
	}
	if _, err := aggregateSpan(base, len(offsets)); err != nil {
		return nil, err
	}
	radius := 0
	for _, off := range offsets {
		radius = max(radius, max(abs(off[0]), abs(off[1])))
	}
	size := 2*radius + 1
	weights := make([]int, size*size)
	weight := 1
	for _, off := range offsets {
		weights[(off[1]+radius)*size+(off[0]+radius)] = weight
		weight *= base
	}
	return &Kernel{w: size, h: size, ax: radius, ay: radius, weights: weights}, nil
}

// ParseKernel resolves a kernel description: a named neighborhood ("moore",
// "vonneumann", "extended", "wolfram"), sized by radius where that applies,
// or a custom weight matrix written as semicolon-separated rows of
// comma-separated integers ("1,1,1;1,0,1;1,1,1"), anchored at its center.
func ParseKernel(desc string, radius int) (*Kernel, error) {
	switch strings.ToLower(desc) {
	case "", "moore":
		return Moore(radius), nil
	case "vonneumann", "von-neumann":
		return VonNeumann(radius), nil
	case "extended":
		return ExtendedVonNeumann(), nil
	case "wolfram":
		return Wolfram(), nil
	}
	rows := strings.Split(desc, ";")
	h := len(rows)
	var (
		w       int
		weights []int
	)
	for i, row := range rows {
		cols := strings.Split(row, ",")
		if i == 0 {
			w = len(cols)
		} else if len(cols) != w {
			return nil, &KernelError{Reason: "ragged weight rows"}
		}
		for _, c := range cols {
			n, err := strconv.Atoi(strings.TrimSpace(c))
			if err != nil {
				return nil, &KernelError{Reason: "weight " + strconv.Quote(c) + " is not an integer"}
			}
			weights = append(weights, n)
		}
	}
	return NewKernel(weights, w, h, w/2, h/2)
}

// Width returns the kernel's horizontal extent.
func (k *Kernel) Width() int { return k.w }

// Height returns the kernel's vertical extent.
func (k *Kernel) Height() int { return k.h }

// Anchor returns the anchor coordinates within the weight bounds.
func (k *Kernel) Anchor() (int, int) { return k.ax, k.ay }

// Weight returns the weight at kernel coordinates (kx, ky).
func (k *Kernel) Weight(kx, ky int) int { return k.weights[ky*k.w+kx] }

// Sum returns the sum of all weights, which bounds the aggregate of a binary
// grid.
func (k *Kernel) Sum() int {
	total := 0
	for _, w := range k.weights {
		total += w
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
