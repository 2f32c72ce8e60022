package engine

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/notargets/gonozzle/gas"
	"github.com/notargets/gonozzle/nozzle"
	"github.com/notargets/gonozzle/provider"
	"github.com/notargets/gonozzle/types"
)

// Objective scores an engine, larger is better. Infeasible engines return an error.
type Objective interface {
	Evaluate(e *Engine) (score float64, err error)
}

// AltitudeAveragedIsp is the mean specific impulse over a set of altitudes
type AltitudeAveragedIsp struct {
	Atmosphere provider.Atmosphere
	Altitudes  []float64 // m
}

func (ai AltitudeAveragedIsp) Evaluate(e *Engine) (score float64, err error) {
	if len(ai.Altitudes) == 0 {
		return math.NaN(), fmt.Errorf("%w: no altitudes to average the specific impulse over", types.ErrConfiguration)
	}
	isp := make([]float64, len(ai.Altitudes))
	for i, h := range ai.Altitudes {
		if isp[i], err = e.Isp(ai.Atmosphere.Pressure(h)); err != nil {
			return math.NaN(), fmt.Errorf("at an altitude of %g m: %w", h, err)
		}
	}
	return floats.Sum(isp) / float64(len(isp)), nil
}

/*
Apogee flies a vertical 1D trajectory and scores the engine by the apogee reached. Drag uses a
constant drag coefficient, the vehicle mass falls linearly while the engine burns.
*/
type Apogee struct {
	Atmosphere         provider.Atmosphere
	DryMass            float64 // kg
	PropellantMass     float64 // kg
	CrossSectionalArea float64 // m^2
	DragCoefficient    float64 // 0.75 when left at zero
	Dt                 float64 // Integration step, 0.2 s when left at zero
	MaxSteps           int     // 10^6 when left at zero
}

func (ap Apogee) Evaluate(e *Engine) (score float64, err error) {
	return EstimateApogee(e, ap)
}

// EstimateApogee integrates altitude and velocity with RK4 until the vehicle starts to descend
func EstimateApogee(e *Engine, ap Apogee) (apogee float64, err error) {
	var (
		Cd       = ap.DragCoefficient
		dt       = ap.Dt
		maxSteps = ap.MaxSteps
		mdot     = e.Chamber.Mdot
		m0       = ap.DryMass + ap.PropellantMass
		burnTime = ap.PropellantMass / mdot
		fErr     error
	)
	if Cd == 0 {
		Cd = 0.75
	}
	if dt == 0 {
		dt = 0.2
	}
	if maxSteps == 0 {
		maxSteps = 1000000
	}
	if ap.DryMass <= 0 || ap.PropellantMass < 0 || ap.CrossSectionalArea < 0 || dt < 0 {
		return math.NaN(), fmt.Errorf("%w: vehicle needs a positive dry mass and time step, "+
			"have dry mass = %g kg, propellant = %g kg, area = %g m^2, dt = %g s",
			types.ErrConfiguration, ap.DryMass, ap.PropellantMass, ap.CrossSectionalArea, dt)
	}
	// Rate of change of [altitude, velocity], positive upwards
	fdot := func(f [2]float64, t float64) (df [2]float64) {
		var (
			h, v = f[0], f[1]
			rho  = ap.Atmosphere.Density(h)
			pAmb = ap.Atmosphere.Pressure(h)
			drag = 0.5 * rho * v * math.Abs(v) * Cd * ap.CrossSectionalArea
		)
		if t < burnTime {
			mass := m0 - mdot*t
			F, err := e.Thrust(pAmb)
			if err != nil && fErr == nil {
				fErr = fmt.Errorf("at an altitude of %g m: %w", h, err)
			}
			return [2]float64{v, (F-drag)/mass - gas.G0}
		}
		return [2]float64{v, -drag/ap.DryMass - gas.G0}
	}
	var (
		f = [2]float64{0, 0}
		t = 0.
	)
	for step := 0; step < maxSteps; step++ {
		k1 := fdot(f, t)
		k2 := fdot(axpy(f, k1, dt/2), t+dt/2)
		k3 := fdot(axpy(f, k2, dt/2), t+dt/2)
		k4 := fdot(axpy(f, k3, dt), t+dt)
		if fErr != nil {
			return math.NaN(), fErr
		}
		var next [2]float64
		for n := range next {
			next[n] = f[n] + dt/6*(k1[n]+2*k2[n]+2*k3[n]+k4[n])
		}
		if next[0] < f[0] {
			return next[0], nil
		}
		f, t = next, t+dt
	}
	return math.NaN(), fmt.Errorf("%w: no apogee reached after %d steps", types.ErrInfeasible, maxSteps)
}

func axpy(f, df [2]float64, a float64) [2]float64 {
	return [2]float64{f[0] + a*df[0], f[1] + a*df[1]}
}

type SweepOptions struct {
	MinAreaRatio, MaxAreaRatio float64 // 1 and 100 when left at zero
	// The upper bound is also capped by the exit area that separates at this ambient pressure,
	// sea level when left at zero
	SeparationPAmb float64
	MaxEvaluations int // 200 when left at zero
}

/*
OptimiseExitArea searches the nozzle area ratio for the best objective with the throat held fixed.
Each trial is a new engine from WithNozzle, the receiver is never modified. Returns the best engine
and its score.
*/
func (e *Engine) OptimiseExitArea(obj Objective, opts SweepOptions) (best *Engine, score float64, err error) {
	var (
		At      = e.Nozzle.At
		lo, hi  = opts.MinAreaRatio, opts.MaxAreaRatio
		pSep    = opts.SeparationPAmb
		maxEval = opts.MaxEvaluations
		AeSep   float64
	)
	if lo == 0 {
		lo = 1
	}
	if hi == 0 {
		hi = 100
	}
	if pSep == 0 {
		pSep = provider.SeaLevelPressure
	}
	if maxEval == 0 {
		maxEval = 200
	}
	if AeSep, err = e.SeparationAe(pSep); err != nil {
		return
	}
	hi = math.Min(hi, AeSep/At)
	if hi < lo {
		return nil, math.NaN(), fmt.Errorf("%w: every area ratio above %g separates at %g Pa",
			types.ErrInfeasible, hi, pSep)
	}
	log.WithFields(log.Fields{"min_area_ratio": lo, "max_area_ratio": hi}).Info("starting exit area optimisation")

	// Bounded transform, every u maps into [lo, hi]
	ratio := func(u float64) float64 { return lo + (hi-lo)*0.5*(1+math.Sin(u)) }
	trial := func(areaRatio float64) (te *Engine, s float64, err error) {
		var nz *nozzle.Nozzle
		if nz, err = nozzle.New(At, areaRatio*At, e.Nozzle.Type, e.Nozzle.LengthFraction); err != nil {
			return
		}
		if te, err = e.WithNozzle(nz); err != nil {
			return
		}
		if s, err = obj.Evaluate(te); err != nil {
			return
		}
		log.WithFields(log.Fields{"area_ratio": areaRatio, "score": s}).Debug("exit area trial")
		return
	}
	problem := optimize.Problem{
		Func: func(u []float64) float64 {
			_, s, err := trial(ratio(u[0]))
			if err != nil {
				if !errors.Is(err, types.ErrInfeasible) {
					log.WithError(err).Debug("exit area trial failed")
				}
				return math.Inf(1)
			}
			return -s
		},
	}
	var (
		// Start from the current area ratio where it is inside the bounds
		r0     = math.Max(lo, math.Min(hi, e.Nozzle.Ae/At))
		u0     = math.Asin(math.Max(-1, math.Min(1, 2*(r0-lo)/math.Max(hi-lo, 1.e-12)-1)))
		result *optimize.Result
	)
	settings := &optimize.Settings{
		FuncEvaluations: maxEval,
		Converger:       &optimize.FunctionConverge{Absolute: 1.e-9, Relative: 1.e-9, Iterations: 25},
	}
	result, err = optimize.Minimize(problem, []float64{u0}, settings, &optimize.NelderMead{SimplexSize: 0.5})
	if result == nil {
		return nil, math.NaN(), fmt.Errorf("exit area optimisation failed: %w", err)
	}
	if best, score, err = trial(ratio(result.X[0])); err != nil {
		return nil, math.NaN(), err
	}
	log.WithFields(log.Fields{
		"area_ratio": best.Nozzle.Ae / At,
		"score":      score,
		"status":     result.Status.String(),
	}).Info("exit area optimised")
	return
}
