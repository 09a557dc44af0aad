package independence

import (
	"fmt"
	"math"
)

const (
	// Fs is the safety factor applied to the fine grid convergence index
	// for studies over three or more grids.
	Fs = 1.25

	orderIterTol = 1.e-12
	orderIterMax = 200
)

// Grid pairs a representative cell length with the value of the reported
// scalar (e.g. thrust, pressure drop) computed on that grid.
type Grid struct {
	H   float64 // representative cell length
	Phi float64 // reported solution scalar
}

// Study holds the three-grid discretization uncertainty estimate. Grids
// are ordered fine (1), medium (2), coarse (3).
type Study struct {
	Grids [3]Grid

	R21, R32       float64 // refinement factors h2/h1, h3/h2
	ApparentOrder  float64
	PhiExt         float64 // Richardson extrapolated value from grids 1,2
	RelativeError  float64 // e_a21, approximate relative error
	ExtrapolatedRE float64 // e_ext21
	FineGCI        float64 // GCI_fine_21
}

// NewStudy evaluates the Celik procedure for three systematically refined
// grids. The fine grid must come first.
func NewStudy(fine, medium, coarse Grid) (s *Study, err error) {
	s = &Study{Grids: [3]Grid{fine, medium, coarse}}
	if !(fine.H < medium.H && medium.H < coarse.H) {
		return nil, fmt.Errorf("cell lengths must increase fine to coarse, got %g, %g, %g",
			fine.H, medium.H, coarse.H)
	}
	s.R21 = medium.H / fine.H
	s.R32 = coarse.H / medium.H
	eps21 := medium.Phi - fine.Phi
	eps32 := coarse.Phi - medium.Phi
	if eps21 == 0 || eps32 == 0 {
		return nil, fmt.Errorf("solutions on adjacent grids are identical, apparent order is undefined")
	}
	if s.ApparentOrder, err = apparentOrder(s.R21, s.R32, eps21, eps32); err != nil {
		return nil, err
	}
	rp := math.Pow(s.R21, s.ApparentOrder)
	s.PhiExt = (rp*fine.Phi - medium.Phi) / (rp - 1)
	s.RelativeError = math.Abs(eps21 / fine.Phi)
	s.ExtrapolatedRE = math.Abs((s.PhiExt - fine.Phi) / s.PhiExt)
	s.FineGCI = Fs * s.RelativeError / (rp - 1)
	return s, nil
}

// apparentOrder solves p = |ln|eps32/eps21| + q(p)| / ln(r21) with
// q(p) = ln((r21^p - sgn)/(r32^p - sgn)) by fixed point iteration, starting
// from the constant-refinement estimate q = 0.
func apparentOrder(r21, r32, eps21, eps32 float64) (p float64, err error) {
	if r21 <= 1 || r32 <= 1 {
		return 0, fmt.Errorf("refinement factors must exceed 1, got r21=%g r32=%g", r21, r32)
	}
	var (
		ratio = eps32 / eps21
		sgn   = 1.
	)
	if ratio < 0 {
		// Oscillatory convergence
		sgn = -1.
	}
	p = math.Abs(math.Log(math.Abs(ratio))) / math.Log(r21)
	for i := 0; i < orderIterMax; i++ {
		q := math.Log((math.Pow(r21, p) - sgn) / (math.Pow(r32, p) - sgn))
		pNew := math.Abs(math.Log(math.Abs(ratio))+q) / math.Log(r21)
		if math.IsNaN(pNew) || math.IsInf(pNew, 0) {
			return 0, fmt.Errorf("apparent order iteration diverged")
		}
		if math.Abs(pNew-p) < orderIterTol {
			return pNew, nil
		}
		p = pNew
	}
	return 0, fmt.Errorf("apparent order iteration failed to converge after %d iterations", orderIterMax)
}

// Print reports the study in the tabular form recommended by Celik et al.
func (s *Study) Print() {
	fmt.Printf("%12.6g\t= h1 (fine)\n", s.Grids[0].H)
	fmt.Printf("%12.6g\t= h2 (medium)\n", s.Grids[1].H)
	fmt.Printf("%12.6g\t= h3 (coarse)\n", s.Grids[2].H)
	fmt.Printf("%12.6g\t= r21\n", s.R21)
	fmt.Printf("%12.6g\t= r32\n", s.R32)
	fmt.Printf("%12.6g\t= apparent order p\n", s.ApparentOrder)
	fmt.Printf("%12.6g\t= extrapolated value phi_ext21\n", s.PhiExt)
	fmt.Printf("%11.4f%%\t= approximate relative error e_a21\n", 100*s.RelativeError)
	fmt.Printf("%11.4f%%\t= extrapolated relative error e_ext21\n", 100*s.ExtrapolatedRE)
	fmt.Printf("%11.4f%%\t= fine grid convergence index GCI_fine21\n", 100*s.FineGCI)
}
