package nozzle

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gonozzle/gas"
	"github.com/notargets/gonozzle/types"
)

const deg = math.Pi / 180

func TestRaoAngles(t *testing.T) {
	{ // Area ratio 10 lies between the 9.77 and 10.235 table entries
		thetaN, err := RaoThetaN(10, 0.8)
		require.NoError(t, err)
		thetaE, err := RaoThetaE(10, 0.8)
		require.NoError(t, err)
		f := (10 - 9.77) / (10.235 - 9.77)
		assert.InDelta(t, (26.231+f*(26.441-26.231))*deg, thetaN, 1.e-12)
		assert.InDelta(t, (10.466+f*(10.347-10.466))*deg, thetaE, 1.e-12)
		assert.Greater(t, thetaN, 26.231*deg)
		assert.Less(t, thetaN, 26.441*deg)
		assert.Less(t, thetaE, 10.466*deg)
		assert.Greater(t, thetaE, 10.347*deg)
	}
	{ // Below the data both angles fall back, with the asymmetric pair of values
		thetaN, err := RaoThetaN(2, 0.8)
		require.NoError(t, err)
		thetaE, err := RaoThetaE(2, 0.8)
		require.NoError(t, err)
		assert.Equal(t, 15.0*deg, thetaN)
		assert.Equal(t, 14.999*deg, thetaE)
	}
	{ // The θn table extends to 54.6 but the clamp applies above 47 for both
		thetaN, err := RaoThetaN(50, 0.8)
		require.NoError(t, err)
		assert.Equal(t, 15.0*deg, thetaN)
		thetaN, err = RaoThetaN(3.69, 0.8)
		require.NoError(t, err)
		assert.Equal(t, 15.0*deg, thetaN)
	}
	{ // Only the 0.8 length fraction has data
		_, err := RaoThetaN(10, 0.6)
		assert.True(t, errors.Is(err, types.ErrConfiguration))
		_, err = RaoThetaE(10, 0.9)
		assert.True(t, errors.Is(err, types.ErrConfiguration))
	}
}

func TestNozzleContour(t *testing.T) {
	cases := [][2]float64{
		{0.005, 0.05},    // area ratio 10
		{0.005, 0.01},    // area ratio 2, fallback angles
		{1.e-3, 2.e-2},   // area ratio 20
		{1.86e-3, 9.3e-3}, // area ratio 5
		{1.e-3, 1.e-3},   // unit area ratio
	}
	for _, c := range cases {
		nz, err := New(c[0], c[1], types.NozzleRao, 0.8)
		require.NoError(t, err)
		y0, err := nz.Y(0)
		require.NoError(t, err)
		assert.Equal(t, nz.Rt, y0)
		yL, err := nz.Y(nz.Length)
		require.NoError(t, err)
		assert.InDelta(t, nz.Re, yL, 1.e-9*nz.Re, "At = %v, Ae = %v", c[0], c[1])
		AL, err := nz.Area(nz.Length)
		require.NoError(t, err)
		assert.InDelta(t, nz.Ae, AL, 1.e-8*nz.Ae)

		if nz.Nx < nz.Length {
			// Continuity across the arc to parabola switch
			yMinus, err := nz.Y(nz.Nx * (1 - 1.e-10))
			require.NoError(t, err)
			yPlus, err := nz.Y(nz.Nx)
			require.NoError(t, err)
			assert.InDelta(t, yMinus, yPlus, 1.e-8*nz.Rt)
			assert.InDelta(t, nz.Ny, yPlus, 1.e-9*nz.Rt)
			// Exit tangent dx/dy = cot(θe)
			dxdy := 2*nz.A*nz.Re + nz.B
			assert.InDelta(t, 1/math.Tan(nz.ThetaE), dxdy, 1.e-8)
		}

		// Contour radius grows monotonically towards the exit
		_, Y := nz.Sample(200)
		for i := 1; i < len(Y); i++ {
			assert.GreaterOrEqual(t, Y[i], Y[i-1]-1.e-12)
		}
	}
	{ // Outside the contour
		nz, err := New(0.005, 0.05, types.NozzleRao, 0.8)
		require.NoError(t, err)
		_, err = nz.Y(-1.e-6)
		assert.True(t, errors.Is(err, types.ErrDomain))
		_, err = nz.Y(nz.Length * 1.001)
		assert.True(t, errors.Is(err, types.ErrDomain))
		assert.Contains(t, nz.String(), "Area ratio = 10")
	}
}

func TestNozzleConfiguration(t *testing.T) {
	_, err := New(0.005, 0.05, types.NozzleConical, 0.8)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	_, err = New(0.005, 0.05, types.NozzleRao, 0.7)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	_, err = New(0.05, 0.005, types.NozzleRao, 0.8)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	_, err = New(0, 0.005, types.NozzleRao, 0.8)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestFromEngineComponents(t *testing.T) {
	pg, err := gas.NewPerfectGas(gas.Gamma(1.264), gas.MolecularWeight(21.627))
	require.NoError(t, err)
	cc, err := gas.NewChamberConditions(10.e5, 2458.89, 4.757)
	require.NoError(t, err)
	nz, err := FromEngineComponents(pg, cc, 1.01325e5, types.NozzleRao, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, gas.ThroatArea(pg, cc), nz.At, 1.e-15)
	assert.Greater(t, nz.Ae/nz.At, 1.)
}
