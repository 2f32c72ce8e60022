package cooling

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gonozzle/provider"
	"github.com/notargets/gonozzle/types"
)

func testCoolant(t *testing.T) *provider.ConstantCoolant {
	cc, err := provider.NewConstantCoolant(1.e-3, 0.6, 4200, 1000, 0)
	require.NoError(t, err)
	return cc
}

func TestChannelGeometry(t *testing.T) {
	{ // Rectangle
		cg, err := NewChannelGeometry(types.ChannelSpiral, ChannelSpec{Shape: types.ShapeRectangle, Height: 2.e-3, Width: 4.e-3})
		require.NoError(t, err)
		A, D := cg.FlowGeometry(0.05)
		assert.InDelta(t, 8.e-6, A, 1.e-18)
		assert.InDelta(t, 4*8.e-6/12.e-3, D, 1.e-15)
		// Spiral channels do not depend on the engine radius
		A2, D2 := cg.FlowGeometry(0.5)
		assert.Equal(t, A, A2)
		assert.Equal(t, D, D2)
	}
	{ // Semi-circle
		cg, err := NewChannelGeometry(types.ChannelSpiral, ChannelSpec{Shape: types.ShapeSemiCircle, Diameter: 4.e-3})
		require.NoError(t, err)
		A, D := cg.FlowGeometry(0.05)
		assert.InDelta(t, math.Pi*16.e-6/8, A, 1.e-18)
		assert.InDelta(t, 4*A/(4.e-3+math.Pi*2.e-3), D, 1.e-15)
	}
	{ // Custom
		cg, err := NewChannelGeometry(types.ChannelSpiral, ChannelSpec{Shape: types.ShapeCustom,
			CustomFlowArea: 1.e-5, CustomDiameter: 3.e-3})
		require.NoError(t, err)
		A, D := cg.FlowGeometry(0.05)
		assert.Equal(t, 1.e-5, A)
		assert.Equal(t, 3.e-3, D)
	}
	{ // Vertical annulus, the hydraulic diameter of a thin annulus approaches twice its height
		cg, err := NewChannelGeometry(types.ChannelVertical, ChannelSpec{Height: 1.e-3})
		require.NoError(t, err)
		A, D := cg.FlowGeometry(0.05)
		assert.InDelta(t, 2*math.Pi*0.05*1.e-3, A, 1.e-15)
		assert.InDelta(t, 4*A/(2*math.Pi*0.05+2*math.Pi*0.051), D, 1.e-15)
		assert.InDelta(t, 2.e-3, D, 0.05e-3)
	}
	{ // Missing or unknown settings
		_, err := NewChannelGeometry(types.ChannelVertical, ChannelSpec{})
		assert.True(t, errors.Is(err, types.ErrConfiguration))
		_, err = NewChannelGeometry(types.ChannelSpiral, ChannelSpec{Shape: types.ShapeNone})
		assert.True(t, errors.Is(err, types.ErrConfiguration))
		_, err = NewChannelGeometry(types.ChannelSpiral, ChannelSpec{Shape: types.ShapeRectangle, Height: 1.e-3})
		assert.True(t, errors.Is(err, types.ErrConfiguration))
		_, err = NewChannelGeometry(types.ChannelConfig(9), ChannelSpec{Height: 1.e-3})
		assert.True(t, errors.Is(err, types.ErrConfiguration))
	}
}

func TestCoolingJacket(t *testing.T) {
	cc := testCoolant(t)
	cj, err := NewCoolingJacket(provider.CopperC106, 298, 20.e5, cc, 1.5, DefaultJacketExtent,
		types.ChannelVertical, ChannelSpec{Height: 1.e-3})
	require.NoError(t, err)
	assert.Equal(t, 20.e5, cj.P0(-0.1))
	assert.Equal(t, 20.e5, cj.P0(0.2))
	assert.True(t, cj.Covers(0))
	assert.False(t, cj.Covers(2000))
	assert.InDelta(t, 1.5/(1000*1.e-4), cj.CoolantVelocity(1000, 1.e-4), 1.e-12)
	A, _ := cj.FlowGeometry(0.05)
	assert.InDelta(t, 2*math.Pi*0.05*1.e-3, A, 1.e-15)

	_, err = NewCoolingJacket(nil, 298, 20.e5, cc, 1.5, DefaultJacketExtent, types.ChannelVertical, ChannelSpec{Height: 1.e-3})
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	_, err = NewCoolingJacket(provider.CopperC106, 298, 20.e5, cc, 0, DefaultJacketExtent, types.ChannelVertical,
		ChannelSpec{Height: 1.e-3})
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	_, err = NewCoolingJacket(provider.CopperC106, 298, 20.e5, cc, 1.5, [2]float64{1, -1}, types.ChannelVertical,
		ChannelSpec{Height: 1.e-3})
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func testStation(t *testing.T) GasStation {
	ce, err := provider.NewConstantExhaust(8.e-5, 0.25, 0.75)
	require.NoError(t, err)
	return GasStation{
		D: 0.08, A: math.Pi * 0.04 * 0.04, M: 0.5, T: 2400, P: 8.e5, Rho: 0.9,
		Gamma: 1.2, R: 384, Cp: 2304, P0: 10.e5, T0: 2500, At: 0.002, CStar: 1500, TWall: 600,
		Transport: ce,
	}
}

func TestGasSideCorrelations(t *testing.T) {
	gs := testStation(t)
	v := 0.5 * math.Sqrt(1.2*384*2400)
	assert.InDelta(t, v, gs.Velocity(), 1.e-12)
	{
		gc, err := NewGasSideCorrelation(types.HGas1)
		require.NoError(t, err)
		expected := 0.026 * math.Pow(0.9*v, 0.8) / math.Pow(0.08, 0.2) * math.Pow(0.75, 0.4) * 0.25 / math.Pow(8.e-5, 0.8)
		assert.InDelta(t, expected, gc.Coefficient(gs), 1.e-9*expected)
	}
	{ // With constant viscosity only the film density changes the freestream value
		gc, err := NewGasSideCorrelation(types.HGas2)
		require.NoError(t, err)
		rhoAm := 8.e5 / (384 * 1500.)
		expected := 0.026 * 2304 * math.Pow(8.e-5, 0.2) / math.Pow(0.75, 0.6) * math.Pow(0.9*v, 0.8) /
			math.Pow(0.08, 0.2) * math.Pow(rhoAm/0.9, 0.8)
		assert.InDelta(t, expected, gc.Coefficient(gs), 1.e-9*expected)
		// A hotter wall thins the film and lowers the coefficient
		hot := gs
		hot.TWall = 1500
		assert.Less(t, gc.Coefficient(hot), gc.Coefficient(gs))
	}
	{
		gc, err := NewGasSideCorrelation(types.HGas3)
		require.NoError(t, err)
		var (
			Dt    = math.Sqrt(4 * 0.002 / math.Pi)
			stag  = 1 + 0.1*0.25
			sigma = math.Pow(0.5*(600./2500)*stag+0.5, -0.68) * math.Pow(stag, -0.12)
		)
		expected := 0.026 / math.Pow(Dt, 0.2) * math.Pow(8.e-5, 0.2) * 2304 / math.Pow(0.75, 0.6) *
			math.Pow(10.e5/1500, 0.8) * math.Pow(0.002/gs.A, 0.9) * sigma
		assert.InDelta(t, expected, gc.Coefficient(gs), 1.e-9*expected)
	}
	{
		_, err := NewGasSideCorrelation(types.GasSideModel(0))
		assert.True(t, errors.Is(err, types.ErrConfiguration))
		_, err = NewGasSideCorrelation(types.GasSideModel(4))
		assert.True(t, errors.Is(err, types.ErrConfiguration))
	}
}

func TestCoolantSideCorrelation(t *testing.T) {
	cc, err := NewCoolantSideCorrelation(types.HCoolant1)
	require.NoError(t, err)
	cs := CoolantStation{A: 1.e-4, D: 2.e-3, Mdot: 1.5, Mu: 1.e-3, K: 0.6, Cp: 4200, Rho: 1000}
	var (
		v  = 1.5 / (1000 * 1.e-4)
		Re = 1000 * v * 2.e-3 / 1.e-3
		Pr = 1.e-3 * 4200 / 0.6
	)
	expected := 0.023 * 4200 * (1.5 / 1.e-4) * math.Pow(Re, -0.2) * math.Pow(Pr, -2./3)
	assert.InDelta(t, expected, cc.Coefficient(cs), 1.e-9*expected)

	_, err = NewCoolantSideCorrelation(types.CoolantSideModel(2))
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestThermalCircuit(t *testing.T) {
	var (
		r, th       = 0.05, 2.e-3
		TGas, TCool = 2500., 300.
	)
	c, err := ThermalCircuit(r, th, 1000, 20000, 391, TGas, TCool)
	require.NoError(t, err)
	assert.InDelta(t, 1/(1000*2*math.Pi*r), c.RGas, 1.e-15)
	assert.InDelta(t, math.Log((r+th)/r)/(2*math.Pi*391), c.RWall, 1.e-15)
	assert.InDelta(t, 1/(20000*2*math.Pi*(r+th)), c.RCoolant, 1.e-15)
	assert.InDelta(t, TGas-TCool, c.QDot*c.Total(), 1.e-9)
	assert.InDelta(t, c.QDot/(2*math.Pi*r), c.QADot, 1.e-9)

	inner, outer := c.WallTemperatures(TGas)
	assert.Less(t, outer, inner)
	assert.Less(t, inner, TGas)
	assert.Greater(t, outer, TCool)
	// The coolant side film carries the rest of the temperature drop
	assert.InDelta(t, TCool, outer-c.QDot*c.RCoolant, 1.e-9)

	// Heat flows out of the coolant when it is the hotter side
	c, err = ThermalCircuit(r, th, 1000, 20000, 391, 300, 400)
	require.NoError(t, err)
	assert.Less(t, c.QDot, 0.)

	_, err = ThermalCircuit(r, 0, 1000, 20000, 391, TGas, TCool)
	assert.True(t, errors.Is(err, types.ErrDomain))
}
