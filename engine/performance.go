package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gonozzle/gas"
	"github.com/notargets/gonozzle/types"
	"github.com/notargets/gonozzle/utils"
)

/*
Flow separation criterion (Summerfield type, from the bell nozzle literature): the boundary layer
separates where p_wall/p_amb < SeparationCoefficient * (p_amb/p0)^SeparationExponent
*/
const (
	SeparationCoefficient = 0.583
	SeparationExponent    = 0.195
)

func (e *Engine) separationRatio(pAmb float64) float64 {
	return SeparationCoefficient * math.Pow(pAmb/e.Chamber.P0, SeparationExponent)
}

/*
CheckSeparation reports whether the flow separates inside the nozzle at ambient pressure pAmb and
where. The exit has the lowest wall pressure so it is checked first, the separation point is then
found between the throat and the exit. There is no separation into a vacuum.
*/
func (e *Engine) CheckSeparation(pAmb float64) (x float64, separated bool, err error) {
	if pAmb == 0 {
		return
	}
	if pAmb < 0 {
		err = fmt.Errorf("%w: ambient pressure must not be negative, have %g Pa", types.ErrDomain, pAmb)
		return
	}
	var (
		ratio = e.separationRatio(pAmb)
		L     = e.Nozzle.Length
		pe    float64
	)
	if pe, err = e.P(L); err != nil {
		return
	}
	if pe/pAmb >= ratio {
		return
	}
	var fErr error
	f := func(x float64) float64 {
		p, err := e.P(x)
		if err != nil && fErr == nil {
			fErr = err
		}
		return p/pAmb - ratio
	}
	x, err = utils.BrentRoot(f, 0, L)
	switch {
	case fErr != nil:
		return math.NaN(), false, fErr
	case errors.Is(err, utils.ErrNotBracketed):
		// The wall pressure is below the criterion everywhere downstream of the throat
		return 0, true, nil
	case err != nil:
		return math.NaN(), false, err
	}
	separated = true
	return
}

// SeparationPAmb is the ambient pressure at which separation first appears, at the nozzle exit
func (e *Engine) SeparationPAmb() (pAmb float64, err error) {
	var pe float64
	if pe, err = e.P(e.Nozzle.Length); err != nil {
		return
	}
	pAmb = math.Pow(pe*math.Pow(e.Chamber.P0, SeparationExponent)/SeparationCoefficient, 1/(1+SeparationExponent))
	return
}

// SeparationAe is the exit area at which the flow would just separate at the exit for ambient pressure pAmb
func (e *Engine) SeparationAe(pAmb float64) (Ae float64, err error) {
	pWall := pAmb * e.separationRatio(pAmb)
	return gas.ExitArea(e.Gas, e.Chamber, pWall)
}

/*
Thrust at ambient pressure pAmb, mdot*ve + (pe - pAmb)*Ae. Flow separation inside the nozzle
returns a *types.SeparationError.
*/
func (e *Engine) Thrust(pAmb float64) (F float64, err error) {
	var (
		xSep      float64
		separated bool
		exit      FlowState
	)
	if xSep, separated, err = e.CheckSeparation(pAmb); err != nil {
		return
	}
	if separated {
		return math.NaN(), &types.SeparationError{PAmb: pAmb, Position: xSep}
	}
	if exit, err = e.State(e.Nozzle.Length); err != nil {
		return
	}
	ve := exit.M * math.Sqrt(e.Gas.Gamma*e.Gas.R*exit.T)
	F = e.Chamber.Mdot*ve + (exit.P-pAmb)*e.Nozzle.Ae
	return
}

// Isp is the specific impulse in seconds at ambient pressure pAmb
func (e *Engine) Isp(pAmb float64) (isp float64, err error) {
	var F float64
	if F, err = e.Thrust(pAmb); err != nil {
		return math.NaN(), err
	}
	return F / (gas.G0 * e.Chamber.Mdot), nil
}
