package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gonozzle/gas"
	"github.com/notargets/gonozzle/isentropic"
	"github.com/notargets/gonozzle/nozzle"
	"github.com/notargets/gonozzle/types"
)

// Ethanol and liquid oxygen at 10 bar
func testGas(t *testing.T) (pg gas.PerfectGas, cc gas.ChamberConditions) {
	var err error
	pg, err = gas.NewPerfectGas(gas.Gamma(1.264), gas.MolecularWeight(21.627))
	require.NoError(t, err)
	cc, err = gas.NewChamberConditions(10.e5, 2458.89, 4.757)
	require.NoError(t, err)
	return
}

func testEngine(t *testing.T, areaRatio float64) *Engine {
	pg, cc := testGas(t)
	At := gas.ThroatArea(pg, cc)
	nz, err := nozzle.New(At, areaRatio*At, types.NozzleRao, 0.8)
	require.NoError(t, err)
	e, err := New(pg, cc, nz)
	require.NoError(t, err)
	return e
}

func TestEngineConstruction(t *testing.T) {
	pg, cc := testGas(t)
	maxAt := gas.ThroatArea(pg, cc)
	{
		e := testEngine(t, 5)
		assert.InDelta(t, cc.P0*maxAt/cc.Mdot, e.CStar, 1.e-9)
		assert.Contains(t, e.String(), "c* =")
	}
	{ // A throat that can not choke
		nz, err := nozzle.New(1.1*maxAt, 5*maxAt, types.NozzleRao, 0.8)
		require.NoError(t, err)
		_, err = New(pg, cc, nz)
		var ue *types.UnchokedError
		require.True(t, errors.As(err, &ue))
		assert.True(t, errors.Is(err, types.ErrInfeasible))
		assert.InDelta(t, maxAt, ue.MaxAt, 1.e-15)
		assert.Equal(t, 1.1*maxAt, ue.At)
	}
	{
		_, err := New(pg, cc, nil)
		assert.True(t, errors.Is(err, types.ErrConfiguration))
	}
}

func TestFlowState(t *testing.T) {
	e := testEngine(t, 5)
	L := e.Nozzle.Length
	{ // Sonic throat, supersonic diverging section
		M, err := e.M(0)
		require.NoError(t, err)
		assert.Equal(t, 1., M)
		Me, err := e.M(L)
		require.NoError(t, err)
		MeExpected, err := isentropic.MachFromAreaRatio(5, e.Gas.Gamma, true)
		require.NoError(t, err)
		assert.InDelta(t, MeExpected, Me, 1.e-8)
		var MPrev = 1.
		for _, x := range []float64{0.1 * L, 0.3 * L, 0.6 * L, L} {
			M, err = e.M(x)
			require.NoError(t, err)
			assert.Greater(t, M, MPrev)
			MPrev = M
		}
	}
	{ // Upstream of the throat needs the chamber geometry
		_, err := e.M(-0.01)
		assert.True(t, errors.Is(err, types.ErrMissingComponent))
		require.NoError(t, e.AddGeometry(0.15, 4*e.Nozzle.At, []float64{2.e-3}, types.GeometryAuto))
		M, err := e.M(e.Geometry.XMin)
		require.NoError(t, err)
		MExpected, err := isentropic.MachFromAreaRatio(4, e.Gas.Gamma, false)
		require.NoError(t, err)
		assert.InDelta(t, MExpected, M, 1.e-8)
		assert.Less(t, M, 1.)
	}
	{ // State agrees with the single property queries
		for _, x := range []float64{e.Geometry.XMin, -0.005, 0, 0.5 * L, L} {
			fs, err := e.State(x)
			require.NoError(t, err)
			T, err := e.T(x)
			require.NoError(t, err)
			p, err := e.P(x)
			require.NoError(t, err)
			rho, err := e.Rho(x)
			require.NoError(t, err)
			A, err := e.A(x)
			require.NoError(t, err)
			assert.Equal(t, T, fs.T)
			assert.Equal(t, p, fs.P)
			assert.Equal(t, rho, fs.Rho)
			assert.Equal(t, A, fs.A)
			assert.InDelta(t, fs.P, fs.Rho*e.Gas.R*fs.T, 1.e-9*fs.P)
			assert.InDelta(t, e.Chamber.P0, isentropic.P0(fs.P, fs.M, e.Gas.Gamma), 1.e-6)
		}
	}
	{ // Outside the engine
		_, err := e.M(e.Geometry.XMin - 1)
		assert.True(t, errors.Is(err, types.ErrDomain))
		_, err = e.P(2 * L)
		assert.True(t, errors.Is(err, types.ErrDomain))
	}
}

func TestPerformance(t *testing.T) {
	pg, cc := testGas(t)
	{ // Perfectly expanded nozzle, the pressure thrust vanishes
		pAmb := 1.01325e5
		nz, err := nozzle.FromEngineComponents(pg, cc, pAmb, types.NozzleRao, 0.8)
		require.NoError(t, err)
		e, err := New(pg, cc, nz)
		require.NoError(t, err)
		exit, err := e.State(nz.Length)
		require.NoError(t, err)
		assert.InDelta(t, pAmb, exit.P, 1.e-6*pAmb)
		F, err := e.Thrust(pAmb)
		require.NoError(t, err)
		ve := exit.M * math.Sqrt(pg.Gamma*pg.R*exit.T)
		assert.InDelta(t, cc.Mdot*ve, F, 1.e-5*F)
		isp, err := e.Isp(pAmb)
		require.NoError(t, err)
		assert.InDelta(t, F/(gas.G0*cc.Mdot), isp, 1.e-9)
		// More thrust in vacuum
		FVac, err := e.Thrust(0)
		require.NoError(t, err)
		assert.InDelta(t, F+pAmb*nz.Ae, FVac, 1.e-6*FVac)
	}
	{ // Over expanded at sea level, the flow separates
		e := testEngine(t, 5)
		pAmb := 1.01325e5
		_, err := e.Thrust(pAmb)
		var se *types.SeparationError
		require.True(t, errors.As(err, &se))
		assert.True(t, errors.Is(err, types.ErrInfeasible))
		assert.Equal(t, pAmb, se.PAmb)
		assert.Greater(t, se.Position, 0.)
		assert.Less(t, se.Position, e.Nozzle.Length)
		// The wall pressure meets the criterion at the separation point
		p, err := e.P(se.Position)
		require.NoError(t, err)
		assert.InDelta(t, SeparationCoefficient*math.Pow(pAmb/cc.P0, SeparationExponent), p/pAmb, 1.e-6)

		_, err = e.Isp(pAmb)
		var seIsp *types.SeparationError
		require.True(t, errors.As(err, &seIsp))
		assert.Equal(t, *se, *seIsp)

		x, separated, err := e.CheckSeparation(0)
		require.NoError(t, err)
		assert.False(t, separated)
		assert.Equal(t, 0., x)
	}
	{ // Separation begins at the exit at SeparationPAmb
		e := testEngine(t, 5)
		pSep, err := e.SeparationPAmb()
		require.NoError(t, err)
		assert.InDelta(t, 78474., pSep, 50)
		_, separated, err := e.CheckSeparation(0.99 * pSep)
		require.NoError(t, err)
		assert.False(t, separated)
		x, separated, err := e.CheckSeparation(1.01 * pSep)
		require.NoError(t, err)
		assert.True(t, separated)
		assert.Greater(t, x, 0.5*e.Nozzle.Length)
	}
	{ // SeparationAe gives a nozzle that separates exactly at the exit
		e := testEngine(t, 5)
		pAmb := 5.e4
		Ae, err := e.SeparationAe(pAmb)
		require.NoError(t, err)
		nz, err := nozzle.New(e.Nozzle.At, Ae, types.NozzleRao, 0.8)
		require.NoError(t, err)
		ne, err := e.WithNozzle(nz)
		require.NoError(t, err)
		pSep, err := ne.SeparationPAmb()
		require.NoError(t, err)
		assert.InDelta(t, pAmb, pSep, 1.e-4*pAmb)
	}
}

func TestWithNozzle(t *testing.T) {
	e := testEngine(t, 5)
	require.NoError(t, e.AddGeometry(0.15, 4*e.Nozzle.At, []float64{1.e-3, 3.e-3}, types.GeometryAuto))
	e.AddExhaustTransport(testExhaust(t))
	original := *e.Nozzle
	originalGeometry := e.Geometry

	nz, err := nozzle.New(e.Nozzle.At, 10*e.Nozzle.At, types.NozzleRao, 0.8)
	require.NoError(t, err)
	ne, err := e.WithNozzle(nz)
	require.NoError(t, err)
	assert.Equal(t, original, *e.Nozzle)
	assert.Same(t, originalGeometry, e.Geometry)
	assert.Same(t, nz, ne.Nozzle)
	assert.Same(t, nz, ne.Geometry.Nozzle)
	assert.Equal(t, nz.Length, ne.Geometry.XMax)
	assert.Equal(t, e.Geometry.ChamberArea, ne.Geometry.ChamberArea)
	assert.Equal(t, e.Geometry.WallThickness, ne.Geometry.WallThickness)
	assert.Equal(t, e.ExhaustTransport, ne.ExhaustTransport)
	assert.Equal(t, e.CStar, ne.CStar)

	// The choked throat check is redone
	big, err := nozzle.New(2*e.Nozzle.At, 10*e.Nozzle.At, types.NozzleRao, 0.8)
	require.NoError(t, err)
	_, err = e.WithNozzle(big)
	assert.True(t, errors.Is(err, types.ErrInfeasible))
}
