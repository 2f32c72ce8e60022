/*
Package isentropic holds the 1D isentropic perfect gas relations between Mach number, static and
stagnation conditions and the non-dimensional mass flow rate. All units SI.

Subscripts: 0 is the stagnation condition.
*/
package isentropic

import (
	"fmt"
	"math"

	"github.com/notargets/gonozzle/types"
	"github.com/notargets/gonozzle/utils"
)

/*
MBar is the non-dimensional mass flow rate mdot*sqrt(cp*T0)/(A*p0), where A is the local cross
sectional area the flow is passing through
*/
func MBar(M, gamma float64) float64 {
	var (
		gm1 = gamma - 1
	)
	return gamma / math.Sqrt(gm1) * M * math.Pow(1+M*M*gm1/2, -0.5*(gamma+1)/gm1)
}

// P0 is the stagnation pressure from the static pressure and Mach number
func P0(p, M, gamma float64) float64 {
	return p * math.Pow(1+M*M*(gamma-1)/2, gamma/(gamma-1))
}

// T0 is the stagnation temperature from the static temperature and Mach number
func T0(T, M, gamma float64) float64 {
	return T * (1 + M*M*(gamma-1)/2)
}

// P is the static pressure from the stagnation pressure and Mach number
func P(p0, M, gamma float64) float64 {
	return p0 * math.Pow(1+(gamma-1)/2*M*M, -gamma/(gamma-1))
}

// T is the static temperature from the stagnation temperature and Mach number
func T(T0, M, gamma float64) float64 {
	return T0 / (1 + (gamma-1)/2*M*M)
}

// MachFromP is the Mach number from static and stagnation pressure, p must not exceed p0
func MachFromP(p, p0, gamma float64) (M float64, err error) {
	if p > p0 {
		err = fmt.Errorf("%w: static pressure %g Pa is above the stagnation pressure %g Pa",
			types.ErrDomain, p, p0)
		return math.NaN(), err
	}
	M = math.Sqrt((2 / (gamma - 1)) * (math.Pow(p/p0, (gamma-1)/(-gamma)) - 1))
	return
}

/*
MachFromMBar inverts MBar for the requested branch, supersonic searches M in [1, 300] and subsonic
searches M in [0, 1]
*/
func MachFromMBar(mBar, gamma float64, supersonic bool) (M float64, err error) {
	var (
		lo, hi = 0., 1.
	)
	if supersonic {
		lo, hi = 1., 300.
	}
	f := func(Mach float64) float64 {
		return mBar - MBar(Mach, gamma)
	}
	if M, err = utils.BrentRoot(f, lo, hi); err != nil {
		err = fmt.Errorf("%w: no Mach number in [%g, %g] gives a mass flow parameter of %g: %v",
			types.ErrDomain, lo, hi, mBar, err)
	}
	return
}

// MachFromAreaRatio returns the Mach number at A/A* = areaRatio for the chosen branch
func MachFromAreaRatio(areaRatio, gamma float64, supersonic bool) (M float64, err error) {
	return MachFromMBar(MBar(1, gamma)/areaRatio, gamma, supersonic)
}
