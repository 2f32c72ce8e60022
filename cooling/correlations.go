package cooling

import (
	"fmt"
	"math"

	"github.com/notargets/gonozzle/provider"
	"github.com/notargets/gonozzle/types"
)

/*
GasStation is the exhaust state at one axial station, everything a gas side correlation may need.
Transport is queried by the correlations that need properties away from the freestream state.
*/
type GasStation struct {
	D         float64 // Flow diameter, 2y (m)
	A         float64 // Flow area (m^2)
	M         float64 // Freestream Mach number
	T, P, Rho float64 // Freestream static state
	Gamma     float64
	R, Cp     float64 // J/kg/K
	P0, T0    float64 // Chamber stagnation state
	At        float64 // Throat area (m^2)
	CStar     float64 // Characteristic velocity (m/s)
	TWall     float64 // Current estimate of the gas side wall temperature (K)
	Transport provider.ExhaustTransport
}

// Velocity is the freestream gas speed
func (gs GasStation) Velocity() float64 { return gs.M * math.Sqrt(gs.Gamma*gs.R*gs.T) }

// GasSideCorrelation gives the exhaust side convective heat transfer coefficient (W/m^2/K)
type GasSideCorrelation interface {
	Coefficient(gs GasStation) float64
}

func NewGasSideCorrelation(model types.GasSideModel) (gc GasSideCorrelation, err error) {
	switch model {
	case types.HGas1:
		return HGasModel1{}, nil
	case types.HGas2:
		return HGasModel2{}, nil
	case types.HGas3:
		return HGasModel3{}, nil
	}
	return nil, fmt.Errorf("%w: could not find the h_gas model %q", types.ErrConfiguration, model.String())
}

// HGasModel1 is RPE Eqn (8-22) with freestream properties
type HGasModel1 struct{}

func (HGasModel1) Coefficient(gs GasStation) float64 {
	var (
		mu = gs.Transport.Mu(gs.T, gs.P)
		k  = gs.Transport.K(gs.T, gs.P)
		Pr = gs.Transport.Pr(gs.T, gs.P)
	)
	return 0.026 * math.Pow(gs.Rho*gs.Velocity(), 0.8) / math.Pow(gs.D, 0.2) *
		math.Pow(Pr, 0.4) * k / math.Pow(mu, 0.8)
}

/*
HGasModel2 is the Bartz equation with the film properties taken at the arithmetic mean of the wall
and freestream temperatures. Pressure is taken as uniform across the boundary layer.
*/
type HGasModel2 struct{}

func (HGasModel2) Coefficient(gs GasStation) float64 {
	var (
		mu    = gs.Transport.Mu(gs.T, gs.P)
		Pr    = gs.Transport.Pr(gs.T, gs.P)
		TAm   = 0.5 * (gs.T + gs.TWall)
		muAm  = gs.Transport.Mu(TAm, gs.P)
		rhoAm = gs.P / (gs.R * TAm)
		mu0   = gs.Transport.Mu(gs.T0, gs.P0)
	)
	return 0.026 * gs.Cp * math.Pow(mu, 0.2) / math.Pow(Pr, 0.6) *
		math.Pow(gs.Rho*gs.Velocity(), 0.8) / math.Pow(gs.D, 0.2) *
		math.Pow(rhoAm/gs.Rho, 0.8) * math.Pow(muAm/mu0, 0.2)
}

// HGasModel3 is RPE Eqn (8-23), Bartz with the sigma correction for property variation
type HGasModel3 struct{}

func (HGasModel3) Coefficient(gs GasStation) float64 {
	var (
		mu    = gs.Transport.Mu(gs.T, gs.P)
		Pr    = gs.Transport.Pr(gs.T, gs.P)
		Dt    = math.Sqrt(4 * gs.At / math.Pi)
		stag  = 1 + 0.5*(gs.Gamma-1)*gs.M*gs.M
		sigma = math.Pow(0.5*(gs.TWall/gs.T0)*stag+0.5, -0.68) * math.Pow(stag, -0.12)
	)
	return 0.026 / math.Pow(Dt, 0.2) * (math.Pow(mu, 0.2) * gs.Cp / math.Pow(Pr, 0.6)) *
		math.Pow(gs.P0/gs.CStar, 0.8) * math.Pow(gs.At/gs.A, 0.9) * sigma
}

// CoolantStation is the coolant state and channel at one axial station
type CoolantStation struct {
	A, D           float64 // Channel flow area (m^2) and hydraulic diameter (m)
	Mdot           float64 // kg/s
	Mu, K, Cp, Rho float64
}

type CoolantSideCorrelation interface {
	Coefficient(cs CoolantStation) float64
}

func NewCoolantSideCorrelation(model types.CoolantSideModel) (cc CoolantSideCorrelation, err error) {
	if model == types.HCoolant1 {
		return HCoolantModel1{}, nil
	}
	return nil, fmt.Errorf("%w: could not find the h_coolant model %q", types.ErrConfiguration, model.String())
}

// HCoolantModel1 is the Dittus-Boelter form of RPE p317
type HCoolantModel1 struct{}

func (HCoolantModel1) Coefficient(cs CoolantStation) float64 {
	var (
		v  = cs.Mdot / (cs.Rho * cs.A)
		Re = cs.Rho * v * cs.D / cs.Mu
		Pr = cs.Mu * cs.Cp / cs.K
	)
	return 0.023 * cs.Cp * (cs.Mdot / cs.A) * math.Pow(Re, -0.2) * math.Pow(Pr, -2./3)
}
