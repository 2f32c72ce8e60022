package engine

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/gonozzle/cooling"
	"github.com/notargets/gonozzle/types"
	"github.com/notargets/gonozzle/utils"
)

const DefaultNumberOfPoints = 1000

type HeatingOptions struct {
	NumberOfPoints   int // Axial stations, 0 means DefaultNumberOfPoints
	GasSideModel     types.GasSideModel
	CoolantSideModel types.CoolantSideModel
	ParallelDegree   int // Threads used for the Mach number pass, 0 uses every CPU
}

func DefaultHeatingOptions() HeatingOptions {
	return HeatingOptions{
		NumberOfPoints:   DefaultNumberOfPoints,
		GasSideModel:     types.HGas1,
		CoolantSideModel: types.HCoolant1,
	}
}

// StationResult is the steady thermal state at one axial station
type StationResult struct {
	X                      float64 // m
	GasTemperature         float64 // Freestream exhaust temperature (K)
	WallTemperatureInner   float64 // Gas side wall temperature (K)
	WallTemperatureOuter   float64 // Coolant side wall temperature (K)
	CoolantTemperature     float64 // K
	HeatFluxPerLength      float64 // W/m, positive into the coolant
	HeatFluxPerArea        float64 // W/m^2 on the gas side wall
	GasSideCoefficient     float64 // W/m^2/K
	CoolantSideCoefficient float64 // W/m^2/K
}

// Field names of a StationResult in persisted results, in column order
var StationFields = []string{
	"x",
	"gas_temperature",
	"wall_temperature_inner",
	"wall_temperature_outer",
	"coolant_temperature",
	"heat_flux_per_length",
	"heat_flux_per_area",
	"gas_side_coefficient",
	"coolant_side_coefficient",
}

func (sr StationResult) Field(name string) (v float64, err error) {
	switch name {
	case "x":
		v = sr.X
	case "gas_temperature":
		v = sr.GasTemperature
	case "wall_temperature_inner":
		v = sr.WallTemperatureInner
	case "wall_temperature_outer":
		v = sr.WallTemperatureOuter
	case "coolant_temperature":
		v = sr.CoolantTemperature
	case "heat_flux_per_length":
		v = sr.HeatFluxPerLength
	case "heat_flux_per_area":
		v = sr.HeatFluxPerArea
	case "gas_side_coefficient":
		v = sr.GasSideCoefficient
	case "coolant_side_coefficient":
		v = sr.CoolantSideCoefficient
	default:
		err = fmt.Errorf("%w: unknown station field %q", types.ErrConfiguration, name)
	}
	return
}

/*
HeatingResult holds the stations in marching order, from the nozzle exit to the injector face.
BoilOffPosition is the first station at which the coolant is no longer liquid, nil if it never boils.
*/
type HeatingResult struct {
	Stations        []StationResult
	BoilOffPosition *float64
}

func (hr *HeatingResult) Boiled() bool { return hr.BoilOffPosition != nil }

// Column gathers one field over all stations
func (hr *HeatingResult) Column(name string) (col []float64, err error) {
	col = make([]float64, len(hr.Stations))
	for i, sr := range hr.Stations {
		if col[i], err = sr.Field(name); err != nil {
			return nil, err
		}
	}
	return
}

// The state carried from one station to the next
type marchState struct {
	prevQDot       float64 // W/m
	prevTCoolant   float64 // K
	prevCp         float64 // Coolant cp at the previous station (J/kg/K)
	prevTWallInner float64 // K
}

/*
RunHeatingAnalysis marches from the nozzle exit to the injector face, the direction the coolant
flows in, and solves the series thermal circuit through the liner at each station. The heat picked
up over the previous step sets the coolant temperature at the next, so the stations are solved
strictly in order. Coolant boil-off is flagged and logged, the march carries on past it.
*/
func (e *Engine) RunHeatingAnalysis(opts HeatingOptions) (hr *HeatingResult, err error) {
	switch {
	case e.Geometry == nil:
		return nil, fmt.Errorf("%w: a heating analysis needs the chamber geometry, add it with AddGeometry",
			types.ErrMissingComponent)
	case e.CoolingJacket == nil:
		return nil, fmt.Errorf("%w: a heating analysis needs a cooling jacket, add it with AddCoolingJacket",
			types.ErrMissingComponent)
	case e.ExhaustTransport == nil:
		return nil, fmt.Errorf("%w: a heating analysis needs an exhaust transport model, add it with AddExhaustTransport",
			types.ErrMissingComponent)
	}
	var (
		N         = opts.NumberOfPoints
		gasModel  = opts.GasSideModel
		coolModel = opts.CoolantSideModel
		hGas      cooling.GasSideCorrelation
		hCoolant  cooling.CoolantSideCorrelation
		states    []FlowState
	)
	if N == 0 {
		N = DefaultNumberOfPoints
	}
	if N < 2 {
		return nil, fmt.Errorf("%w: a heating analysis needs at least 2 stations, have %d", types.ErrConfiguration, N)
	}
	if gasModel == 0 {
		gasModel = types.HGas1
	}
	if coolModel == 0 {
		coolModel = types.HCoolant1
	}
	if hGas, err = cooling.NewGasSideCorrelation(gasModel); err != nil {
		return
	}
	if hCoolant, err = cooling.NewCoolantSideCorrelation(coolModel); err != nil {
		return
	}
	var (
		X     = utils.Linspace(e.Geometry.XMax, e.Geometry.XMin, N)
		dx    = X[0] - X[1]
		liner = e.Geometry.LinerProfile(X)
		cj    = e.CoolingJacket
		ms    = marchState{prevTCoolant: cj.InletT, prevTWallInner: cj.InletT}
	)
	if states, err = e.flowStates(X, opts.ParallelDegree); err != nil {
		return
	}
	hr = &HeatingResult{Stations: make([]StationResult, N)}
	for i, x := range X {
		if hr.Stations[i], err = e.heatStation(i, dx, states[i], liner[i], hGas, hCoolant, &ms); err != nil {
			return nil, err
		}
		Tc := hr.Stations[i].CoolantTemperature
		if hr.BoilOffPosition == nil && !cj.Coolant.IsLiquid(Tc, cj.P0(x)) {
			pos := x
			hr.BoilOffPosition = &pos
			log.WithFields(log.Fields{
				"x":                   x,
				"coolant_temperature": Tc,
				"coolant_pressure":    cj.P0(x),
			}).Warn("coolant boiled off")
		}
	}
	log.WithFields(log.Fields{
		"stations":  N,
		"h_gas":     gasModel.String(),
		"h_coolant": coolModel.String(),
		"boiled":    hr.Boiled(),
	}).Debug("heating analysis complete")
	return
}

// flowStates solves the freestream state at every station, the stations are independent so this runs in parallel
func (e *Engine) flowStates(X []float64, parallelDegree int) (states []FlowState, err error) {
	var (
		pm   = utils.NewPartitionMap(parallelDegree, len(X))
		errs = make([]error, pm.ParallelDegree)
	)
	states = make([]FlowState, len(X))
	pm.Parallel(func(np, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			if states[k], errs[np] = e.State(X[k]); errs[np] != nil {
				return
			}
		}
	})
	for _, err = range errs {
		if err != nil {
			return nil, err
		}
	}
	return
}

func (e *Engine) heatStation(i int, dx float64, fs FlowState, thickness float64,
	hGas cooling.GasSideCorrelation, hCoolant cooling.CoolantSideCorrelation, ms *marchState) (sr StationResult, err error) {
	var (
		cj      = e.CoolingJacket
		coolant = cj.Coolant
		pc      = cj.P0(fs.X)
		Tc      = cj.InletT
		circuit cooling.Circuit
	)
	if i > 0 {
		// Heat picked up over the previous step, q*dx = mdot*cp*dT
		Tc = ms.prevTCoolant + ms.prevQDot*dx/(cj.MdotCoolant*ms.prevCp)
	}
	cp := coolant.Cp(Tc, pc)

	gs := cooling.GasStation{
		D:         2 * fs.Y,
		A:         fs.A,
		M:         fs.M,
		T:         fs.T,
		P:         fs.P,
		Rho:       fs.Rho,
		Gamma:     e.Gas.Gamma,
		R:         e.Gas.R,
		Cp:        e.Gas.Cp,
		P0:        e.Chamber.P0,
		T0:        e.Chamber.T0,
		At:        e.Nozzle.At,
		CStar:     e.CStar,
		TWall:     ms.prevTWallInner,
		Transport: e.ExhaustTransport,
	}
	area, diameter := cj.FlowGeometry(fs.Y)
	cs := cooling.CoolantStation{
		A:    area,
		D:    diameter,
		Mdot: cj.MdotCoolant,
		Mu:   coolant.Mu(Tc, pc),
		K:    coolant.K(Tc, pc),
		Cp:   cp,
		Rho:  coolant.Rho(Tc, pc),
	}
	sr = StationResult{
		X:                      fs.X,
		GasTemperature:         fs.T,
		CoolantTemperature:     Tc,
		GasSideCoefficient:     hGas.Coefficient(gs),
		CoolantSideCoefficient: hCoolant.Coefficient(cs),
	}
	if circuit, err = cooling.ThermalCircuit(fs.Y, thickness, sr.GasSideCoefficient, sr.CoolantSideCoefficient,
		cj.InnerWall.K(), sr.GasTemperature, Tc); err != nil {
		return sr, fmt.Errorf("at x = %g m: %w", fs.X, err)
	}
	sr.HeatFluxPerLength = circuit.QDot
	sr.HeatFluxPerArea = circuit.QADot
	sr.WallTemperatureInner, sr.WallTemperatureOuter = circuit.WallTemperatures(fs.T)

	*ms = marchState{
		prevQDot:       circuit.QDot,
		prevTCoolant:   Tc,
		prevCp:         cp,
		prevTWallInner: sr.WallTemperatureInner,
	}
	return
}
