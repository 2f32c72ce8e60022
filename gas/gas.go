/*
Package gas holds the perfect gas model for the exhaust and the combustion chamber boundary condition.
Assumes a perfect gas (ideal gas with constant cp, cv and gamma).
*/
package gas

import (
	"fmt"
	"math"

	"github.com/notargets/gonozzle/isentropic"
	"github.com/notargets/gonozzle/types"
)

const (
	R_BAR = 8314.4621 // Universal gas constant (J/K/kmol)
	G0    = 9.80665   // Standard gravitational acceleration (m/s^2)
)

type property uint8

const (
	propGamma property = iota
	propCp
	propMolecularWeight
)

var propertyNames = []string{"gamma", "cp", "molecular_weight"}

// Option supplies one of the independent properties of a PerfectGas
type Option func(in map[property]float64)

// Gamma is the ratio of specific heats cp/cv
func Gamma(v float64) Option {
	return func(in map[property]float64) { in[propGamma] = v }
}

// Cp is the specific heat capacity at constant pressure (J/kg/K)
func Cp(v float64) Option {
	return func(in map[property]float64) { in[propCp] = v }
}

// MolecularWeight of the gas (kg/kmol)
func MolecularWeight(v float64) Option {
	return func(in map[property]float64) { in[propMolecularWeight] = v }
}

type PerfectGas struct {
	Gamma           float64 // Ratio of specific heats cp/cv
	Cp              float64 // Specific heat capacity at constant pressure (J/kg/K)
	R               float64 // Specific gas constant (J/kg/K)
	MolecularWeight float64 // kg/kmol
}

/*
NewPerfectGas builds the gas from exactly two of Gamma, Cp and MolecularWeight, the third property
and R are derived from them
*/
func NewPerfectGas(opts ...Option) (pg PerfectGas, err error) {
	var (
		in = make(map[property]float64, 3)
	)
	for _, opt := range opts {
		opt(in)
	}
	switch {
	case len(opts) > 2 || len(in) > 2:
		err = fmt.Errorf("%w: gas is overdefined, you mustn't provide more than 2 inputs, you provided %d",
			types.ErrConfiguration, len(opts))
		return
	case len(in) < 2 || len(opts) != 2:
		err = fmt.Errorf("%w: not enough inputs provided to fully define the gas, "+
			"you must provide exactly 2 different properties, you provided %d", types.ErrConfiguration, len(in))
		return
	}
	for p, v := range in {
		if v <= 0 || math.IsNaN(v) {
			err = fmt.Errorf("%w: %s must be positive, have %g", types.ErrConfiguration, propertyNames[p], v)
			return
		}
	}
	gamma, haveGamma := in[propGamma]
	cp, haveCp := in[propCp]
	mw, haveMW := in[propMolecularWeight]
	switch {
	case haveGamma && haveMW:
		pg.Gamma, pg.MolecularWeight = gamma, mw
		pg.R = R_BAR / mw
		pg.Cp = gamma * pg.R / (gamma - 1)
	case haveGamma && haveCp:
		pg.Gamma, pg.Cp = gamma, cp
		pg.R = cp * (gamma - 1) / gamma
		pg.MolecularWeight = R_BAR / pg.R
	case haveCp && haveMW:
		pg.Cp, pg.MolecularWeight = cp, mw
		pg.R = R_BAR / mw
		if cp <= pg.R {
			err = fmt.Errorf("%w: cp = %g J/kg/K must exceed R = %g J/kg/K", types.ErrConfiguration, cp, pg.R)
			return
		}
		pg.Gamma = cp / (cp - pg.R)
	}
	if pg.Gamma <= 1 {
		err = fmt.Errorf("%w: gamma must be greater than 1, have %g", types.ErrConfiguration, pg.Gamma)
	}
	return
}

func (pg PerfectGas) String() string {
	return fmt.Sprintf("perfect gas with: gamma = %g, cp = %g J/kg/K, molecular_weight = %g kg/kmol, R = %g J/kg/K",
		pg.Gamma, pg.Cp, pg.MolecularWeight, pg.R)
}

// ChamberConditions are the combustion chamber stagnation conditions that drive the engine
type ChamberConditions struct {
	P0   float64 // Gas stagnation pressure (Pa)
	T0   float64 // Gas stagnation temperature (K)
	Mdot float64 // Propellant mass flow rate (kg/s)
}

func NewChamberConditions(p0, T0, mdot float64) (cc ChamberConditions, err error) {
	if p0 <= 0 || T0 <= 0 || mdot <= 0 {
		err = fmt.Errorf("%w: chamber conditions must be positive, have p0 = %g, T0 = %g, mdot = %g",
			types.ErrConfiguration, p0, T0, mdot)
		return
	}
	cc = ChamberConditions{P0: p0, T0: T0, Mdot: mdot}
	return
}

// MassFlowParameter is mdot*sqrt(cp*T0)/p0, the area times MBar at any station
func MassFlowParameter(pg PerfectGas, cc ChamberConditions) float64 {
	return cc.Mdot * math.Sqrt(pg.Cp*cc.T0) / cc.P0
}

/*
ThroatArea is the sonic throat area for the gas and chamber conditions. A larger throat can not be
choked, so this is also the maximum throat area.
*/
func ThroatArea(pg PerfectGas, cc ChamberConditions) float64 {
	return MassFlowParameter(pg, cc) / isentropic.MBar(1, pg.Gamma)
}

// ExitArea is the nozzle exit area that expands the flow to pAmb
func ExitArea(pg PerfectGas, cc ChamberConditions, pAmb float64) (Ae float64, err error) {
	var Me float64
	if Me, err = isentropic.MachFromP(pAmb, cc.P0, pg.Gamma); err != nil {
		return
	}
	Ae = MassFlowParameter(pg, cc) / isentropic.MBar(Me, pg.Gamma)
	return
}
