package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	{ // Policy names parse into their tags
		gm, err := ParseGasSideModel("2")
		require.NoError(t, err)
		assert.Equal(t, HGas2, gm)
		gm, err = ParseGasSideModel("Bartz-Sigma")
		require.NoError(t, err)
		assert.Equal(t, HGas3, gm)
		assert.Equal(t, "3", gm.String())

		cc, err := ParseChannelConfig("Vertical")
		require.NoError(t, err)
		assert.Equal(t, ChannelVertical, cc)
		assert.Equal(t, "vertical", cc.String())

		cs, err := ParseChannelShape("semi-circle")
		require.NoError(t, err)
		assert.Equal(t, ShapeSemiCircle, cs)

		nt, err := ParseNozzleType("rao")
		require.NoError(t, err)
		assert.Equal(t, NozzleRao, nt)
	}
	{ // Unknown names are configuration errors
		_, err := ParseGasSideModel("4")
		assert.True(t, errors.Is(err, ErrConfiguration))
		_, err = ParseCoolantSideModel("2")
		assert.True(t, errors.Is(err, ErrConfiguration))
		_, err = ParseChannelConfig("helical")
		assert.True(t, errors.Is(err, ErrConfiguration))
		_, err = ParseGeometryStyle("manual")
		assert.True(t, errors.Is(err, ErrConfiguration))
		assert.Equal(t, "GasSideModel(9)", GasSideModel(9).String())
		assert.Equal(t, "ChannelConfig(7)", ChannelConfig(7).String())
	}
	{ // Typed errors unwrap to the infeasible class
		var err error = &UnchokedError{At: 2, MaxAt: 1}
		assert.True(t, errors.Is(err, ErrInfeasible))
		assert.Contains(t, err.Error(), "1 m^2")

		err = &SeparationError{PAmb: 101325, Position: 0.05}
		assert.True(t, errors.Is(err, ErrInfeasible))
		var se *SeparationError
		assert.True(t, errors.As(err, &se))
		assert.Equal(t, 101325., se.PAmb)
		assert.Contains(t, err.Error(), "101325")
	}
}
