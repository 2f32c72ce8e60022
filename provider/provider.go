/*
Package provider holds the property sources the engine models depend on: exhaust and coolant
transport properties, wall materials and the ambient atmosphere. Real property libraries sit
behind these interfaces; the implementations here are constant and tabulated stand-ins.
*/
package provider

import (
	"fmt"
	"math"

	"github.com/notargets/gonozzle/types"
)

// ExhaustTransport gives exhaust gas transport properties at static temperature T (K) and pressure p (Pa)
type ExhaustTransport interface {
	Mu(T, p float64) float64 // Dynamic viscosity (Pa s)
	K(T, p float64) float64  // Thermal conductivity (W/m/K)
	Pr(T, p float64) float64 // Prandtl number
}

// CoolantTransport gives coolant properties at temperature T (K) and pressure p (Pa)
type CoolantTransport interface {
	Mu(T, p float64) float64  // Dynamic viscosity (Pa s)
	K(T, p float64) float64   // Thermal conductivity (W/m/K)
	Cp(T, p float64) float64  // Isobaric specific heat (J/kg/K)
	Rho(T, p float64) float64 // Density (kg/m^3)
	IsLiquid(T, p float64) bool
}

// WallMaterial is the liner between the exhaust and the coolant
type WallMaterial interface {
	K() float64 // Thermal conductivity (W/m/K)
}

// ConstantExhaust returns the same properties everywhere
type ConstantExhaust struct {
	MuValue, KValue, PrValue float64
}

func NewConstantExhaust(mu, k, Pr float64) (ce *ConstantExhaust, err error) {
	if mu <= 0 || k <= 0 || Pr <= 0 {
		return nil, fmt.Errorf("%w: exhaust transport properties must be positive, have mu = %g, k = %g, Pr = %g",
			types.ErrConfiguration, mu, k, Pr)
	}
	return &ConstantExhaust{MuValue: mu, KValue: k, PrValue: Pr}, nil
}

func (ce *ConstantExhaust) Mu(T, p float64) float64 { return ce.MuValue }
func (ce *ConstantExhaust) K(T, p float64) float64  { return ce.KValue }
func (ce *ConstantExhaust) Pr(T, p float64) float64 { return ce.PrValue }

/*
ConstantCoolant has fixed properties. With a positive BoilingTemperature the coolant is liquid
strictly below it, otherwise it is always liquid.
*/
type ConstantCoolant struct {
	MuValue, KValue, CpValue, RhoValue float64
	BoilingTemperature                 float64
}

func NewConstantCoolant(mu, k, cp, rho, boilingTemperature float64) (cc *ConstantCoolant, err error) {
	if mu <= 0 || k <= 0 || cp <= 0 || rho <= 0 {
		return nil, fmt.Errorf("%w: coolant properties must be positive, have mu = %g, k = %g, cp = %g, rho = %g",
			types.ErrConfiguration, mu, k, cp, rho)
	}
	return &ConstantCoolant{MuValue: mu, KValue: k, CpValue: cp, RhoValue: rho,
		BoilingTemperature: boilingTemperature}, nil
}

func (cc *ConstantCoolant) Mu(T, p float64) float64  { return cc.MuValue }
func (cc *ConstantCoolant) K(T, p float64) float64   { return cc.KValue }
func (cc *ConstantCoolant) Cp(T, p float64) float64  { return cc.CpValue }
func (cc *ConstantCoolant) Rho(T, p float64) float64 { return cc.RhoValue }
func (cc *ConstantCoolant) IsLiquid(T, p float64) bool {
	if cc.BoilingTemperature <= 0 {
		return true
	}
	return T < cc.BoilingTemperature
}

// Material is a liner material, the mechanical data is carried for thermal stress estimates
type Material struct {
	Name         string
	E            float64 // Young's modulus (Pa)
	Poisson      float64
	Alpha        float64 // Thermal expansion coefficient (1/K)
	Conductivity float64 // W/m/K
}

func NewMaterial(name string, E, poisson, alpha, k float64) (m Material, err error) {
	if k <= 0 {
		err = fmt.Errorf("%w: material %q needs a positive thermal conductivity, have %g",
			types.ErrConfiguration, name, k)
		return
	}
	m = Material{Name: name, E: E, Poisson: poisson, Alpha: alpha, Conductivity: k}
	return
}

func (m Material) K() float64 { return m.Conductivity }

/*
PerfTherm is the thermal performance parameter (1-ν)k/(αE), the temperature difference a wall can
carry per unit heat flux before thermal stress becomes the limit grows with it.
*/
func (m Material) PerfTherm() float64 {
	if m.Alpha == 0 || m.E == 0 {
		return math.Inf(1)
	}
	return (1 - m.Poisson) * m.Conductivity / (m.Alpha * m.E)
}

// Room temperature handbook values
var (
	CopperC106        = Material{Name: "copper-c106", E: 117.e9, Poisson: 0.34, Alpha: 17.7e-6, Conductivity: 391}
	StainlessSteel304 = Material{Name: "stainless-304", E: 193.e9, Poisson: 0.29, Alpha: 17.3e-6, Conductivity: 16.2}
	Graphite          = Material{Name: "graphite", E: 11.e9, Poisson: 0.2, Alpha: 4.e-6, Conductivity: 100}
	Inconel718        = Material{Name: "inconel-718", E: 200.e9, Poisson: 0.29, Alpha: 13.e-6, Conductivity: 11.4}

	MaterialNameMap = map[string]Material{
		CopperC106.Name:        CopperC106,
		StainlessSteel304.Name: StainlessSteel304,
		Graphite.Name:          Graphite,
		Inconel718.Name:        Inconel718,
	}
)

func LookupMaterial(name string) (m Material, err error) {
	var ok bool
	if m, ok = MaterialNameMap[name]; !ok {
		err = fmt.Errorf("%w: unknown wall material %q", types.ErrConfiguration, name)
	}
	return
}
