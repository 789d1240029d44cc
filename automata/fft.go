package automata

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTAggregator computes aggregates by pointwise multiplication in the
// frequency domain: a real FFT across rows, a complex FFT down columns, with
// the kernel spectrum transformed once and reused across steps. The cyclic
// transform matches the Wrap boundary exactly, so other policies are
// rejected up front. Results are rounded back to integers and match
// DirectAggregator cell for cell.
//
// An FFTAggregator owns scratch buffers and must not be shared between
// concurrently stepping simulations.
type FFTAggregator struct {
	w, h   int
	halfW  int
	rowFFT *fourier.FFT
	colFFT *fourier.CmplxFFT
	norm   float64

	kernel     *Kernel
	kernelFreq []complex128
	freq       []complex128
	col        []complex128
	row        []float64
}

// NewFFTAggregator prepares an FFT backend for grids of g's shape with the
// given kernel. Passing a different kernel to Aggregate later recomputes the
// kernel spectrum.
func NewFFTAggregator(g *Grid, k *Kernel) (*FFTAggregator, error) {
	if g.boundary != Wrap {
		return nil, fmt.Errorf("automata: FFT aggregation requires the wrap boundary, have %s", g.boundary)
	}
	a := &FFTAggregator{
		w:      g.w,
		h:      g.h,
		halfW:  g.w/2 + 1,
		rowFFT: fourier.NewFFT(g.w),
		colFFT: fourier.NewCmplxFFT(g.h),
		norm:   1 / float64(g.w*g.h),
	}
	a.freq = make([]complex128, a.h*a.halfW)
	a.col = make([]complex128, a.h)
	a.row = make([]float64, a.w)
	a.setKernel(k)
	return a, nil
}

// Aggregate implements Aggregator.
func (a *FFTAggregator) Aggregate(g *Grid, k *Kernel, dst []int) error {
	if err := a.check(g, dst); err != nil {
		return err
	}
	if k != a.kernel {
		a.setKernel(k)
	}
	a.convolve(g, func(v uint8) float64 { return float64(v) }, dst)
	return nil
}

// AggregatePerSymbol implements Aggregator.
func (a *FFTAggregator) AggregatePerSymbol(g *Grid, k *Kernel, dst [][]int) error {
	if len(dst) != g.states {
		return &SymbolError{Index: -1, Value: uint8(len(dst)), States: g.states}
	}
	for _, d := range dst {
		if err := a.check(g, d); err != nil {
			return err
		}
	}
	if k != a.kernel {
		a.setKernel(k)
	}
	for s := range dst {
		sym := uint8(s)
		a.convolve(g, func(v uint8) float64 {
			if v == sym {
				return 1
			}
			return 0
		}, dst[s])
	}
	return nil
}

func (a *FFTAggregator) check(g *Grid, dst []int) error {
	if g.boundary != Wrap {
		return fmt.Errorf("automata: FFT aggregation requires the wrap boundary, have %s", g.boundary)
	}
	if g.w != a.w || g.h != a.h || len(dst) != a.w*a.h {
		return &ShapeError{WantW: a.w, WantH: a.h, Got: len(dst)}
	}
	return nil
}

// setKernel places the taps reflected about the anchor so the cyclic
// convolution theorem yields the same correlation DirectAggregator computes,
// then transforms the result.
func (a *FFTAggregator) setKernel(k *Kernel) {
	spatial := make([]float64, a.w*a.h)
	for ky := 0; ky < k.h; ky++ {
		for kx := 0; kx < k.w; kx++ {
			w := k.weights[ky*k.w+kx]
			if w == 0 {
				continue
			}
			dx, dy := kx-k.ax, ky-k.ay
			fx := ((-dx)%a.w + a.w) % a.w
			fy := ((-dy)%a.h + a.h) % a.h
			spatial[fy*a.w+fx] += float64(w)
		}
	}
	if a.kernelFreq == nil {
		a.kernelFreq = make([]complex128, a.h*a.halfW)
	}
	for y := 0; y < a.h; y++ {
		a.rowFFT.Coefficients(a.kernelFreq[y*a.halfW:(y+1)*a.halfW], spatial[y*a.w:(y+1)*a.w])
	}
	for x := 0; x < a.halfW; x++ {
		for y := 0; y < a.h; y++ {
			a.col[y] = a.kernelFreq[y*a.halfW+x]
		}
		a.colFFT.Coefficients(a.col, a.col)
		for y := 0; y < a.h; y++ {
			a.kernelFreq[y*a.halfW+x] = a.col[y]
		}
	}
	a.kernel = k
}

// convolve runs a full forward transform of the grid (through value),
// multiplies by the kernel spectrum, inverts, and writes rounded integer
// sums into dst.
func (a *FFTAggregator) convolve(g *Grid, value func(uint8) float64, dst []int) {
	for y := 0; y < a.h; y++ {
		for x := 0; x < a.w; x++ {
			a.row[x] = value(g.cells[y*a.w+x])
		}
		a.rowFFT.Coefficients(a.freq[y*a.halfW:(y+1)*a.halfW], a.row)
	}
	for x := 0; x < a.halfW; x++ {
		for y := 0; y < a.h; y++ {
			a.col[y] = a.freq[y*a.halfW+x]
		}
		a.colFFT.Coefficients(a.col, a.col)
		for y := 0; y < a.h; y++ {
			a.col[y] *= a.kernelFreq[y*a.halfW+x]
		}
		a.colFFT.Sequence(a.col, a.col)
		for y := 0; y < a.h; y++ {
			a.freq[y*a.halfW+x] = a.col[y]
		}
	}
	for y := 0; y < a.h; y++ {
		a.rowFFT.Sequence(a.row, a.freq[y*a.halfW:(y+1)*a.halfW])
		for x := 0; x < a.w; x++ {
			dst[y*a.w+x] = int(math.Round(a.row[x] * a.norm))
		}
	}
}
