/*
Package cooling models a regenerative cooling jacket: the coolant channels, the convective heat
transfer correlations on either side of the liner and the series thermal circuit through it.
References:
  - Rocket Propulsion Elements, 7th edition, Sutton and Biblarz (RPE)
*/
package cooling

import (
	"fmt"
	"math"

	"github.com/notargets/gonozzle/provider"
	"github.com/notargets/gonozzle/types"
)

// Jacket extent used when none is given, wide enough to cover any engine
var DefaultJacketExtent = [2]float64{-1000, 1000}

// ChannelSpec holds the channel dimensions, which ones are needed depends on the shape and configuration
type ChannelSpec struct {
	Shape          types.ChannelShape
	Height         float64 // Vertical channels and rectangular spirals (m)
	Width          float64 // Rectangular spirals (m)
	Diameter       float64 // Semi-circular spirals (m)
	CustomFlowArea float64 // m^2
	CustomDiameter float64 // Effective hydraulic diameter (m)
}

type CoolingJacket struct {
	InnerWall     provider.WallMaterial
	InletT        float64 // K
	InletP0       float64 // Pa
	Coolant       provider.CoolantTransport
	MdotCoolant   float64 // kg/s
	Xs            [2]float64
	Configuration types.ChannelConfig
	Channel       ChannelSpec

	geometry ChannelGeometry
}

func NewCoolingJacket(innerWall provider.WallMaterial, inletT, inletP0 float64, coolant provider.CoolantTransport,
	mdotCoolant float64, xs [2]float64, configuration types.ChannelConfig, channel ChannelSpec) (cj *CoolingJacket, err error) {
	switch {
	case innerWall == nil:
		return nil, fmt.Errorf("%w: the cooling jacket needs an inner wall material", types.ErrConfiguration)
	case coolant == nil:
		return nil, fmt.Errorf("%w: the cooling jacket needs a coolant transport model", types.ErrConfiguration)
	case inletT <= 0 || inletP0 <= 0 || mdotCoolant <= 0:
		return nil, fmt.Errorf("%w: coolant inlet temperature, pressure and mass flow must be positive, "+
			"have T = %g K, p0 = %g Pa, mdot = %g kg/s", types.ErrConfiguration, inletT, inletP0, mdotCoolant)
	case xs[1] < xs[0]:
		return nil, fmt.Errorf("%w: the cooling jacket ends (%g m) before it starts (%g m)",
			types.ErrConfiguration, xs[1], xs[0])
	}
	cj = &CoolingJacket{
		InnerWall:     innerWall,
		InletT:        inletT,
		InletP0:       inletP0,
		Coolant:       coolant,
		MdotCoolant:   mdotCoolant,
		Xs:            xs,
		Configuration: configuration,
		Channel:       channel,
	}
	if cj.geometry, err = NewChannelGeometry(configuration, channel); err != nil {
		return nil, err
	}
	return
}

// P0 is the coolant stagnation pressure at x, pressure losses along the channel are not modelled
func (cj *CoolingJacket) P0(x float64) float64 { return cj.InletP0 }

// Covers reports whether x lies within the axial extent of the jacket
func (cj *CoolingJacket) Covers(x float64) bool { return x >= cj.Xs[0] && x <= cj.Xs[1] }

// CoolantVelocity is the bulk coolant speed in a channel of flow area A
func (cj *CoolingJacket) CoolantVelocity(rho, A float64) float64 { return cj.MdotCoolant / (rho * A) }

// FlowGeometry is the coolant flow area and hydraulic diameter next to a wall of radius r
func (cj *CoolingJacket) FlowGeometry(r float64) (area, diameter float64) {
	return cj.geometry.FlowGeometry(r)
}

// ChannelGeometry gives the coolant flow area (m^2) and hydraulic diameter (m) beside a wall of radius r
type ChannelGeometry interface {
	FlowGeometry(r float64) (area, diameter float64)
}

// Channels wrapped helically around the engine, the flow section does not depend on the engine radius
type spiralChannel struct {
	area, diameter float64
}

func (sc spiralChannel) FlowGeometry(r float64) (area, diameter float64) { return sc.area, sc.diameter }

// An annulus of constant height around the engine
type verticalChannel struct {
	height float64
}

func (vc verticalChannel) FlowGeometry(r float64) (area, diameter float64) {
	area = 2 * math.Pi * r * vc.height
	perimeter := 2*math.Pi*r + 2*math.Pi*(r+vc.height)
	diameter = 4 * area / perimeter
	return
}

func NewChannelGeometry(configuration types.ChannelConfig, ch ChannelSpec) (cg ChannelGeometry, err error) {
	switch configuration {
	case types.ChannelVertical:
		if ch.Height <= 0 {
			return nil, fmt.Errorf("%w: vertical channels need a positive channel height", types.ErrConfiguration)
		}
		return verticalChannel{height: ch.Height}, nil
	case types.ChannelSpiral:
		var sc spiralChannel
		switch ch.Shape {
		case types.ShapeRectangle:
			if ch.Height <= 0 || ch.Width <= 0 {
				return nil, fmt.Errorf("%w: rectangular channels need a positive height and width", types.ErrConfiguration)
			}
			sc.area = ch.Width * ch.Height
			sc.diameter = 4 * sc.area / (2*ch.Width + 2*ch.Height)
		case types.ShapeSemiCircle:
			if ch.Diameter <= 0 {
				return nil, fmt.Errorf("%w: semi-circular channels need a positive diameter", types.ErrConfiguration)
			}
			sc.area = math.Pi * ch.Diameter * ch.Diameter / 8
			sc.diameter = 4 * sc.area / (ch.Diameter + math.Pi*ch.Diameter/2)
		case types.ShapeCustom:
			if ch.CustomFlowArea <= 0 || ch.CustomDiameter <= 0 {
				return nil, fmt.Errorf("%w: custom channels need a positive flow area and effective diameter",
					types.ErrConfiguration)
			}
			sc.area, sc.diameter = ch.CustomFlowArea, ch.CustomDiameter
		default:
			return nil, fmt.Errorf("%w: the channel shape %q is not recognised, try \"rectangle\", "+
				"\"semi-circle\" or \"custom\"", types.ErrConfiguration, ch.Shape.String())
		}
		return sc, nil
	default:
		return nil, fmt.Errorf("%w: the cooling jacket configuration %q is not recognised, try \"spiral\" or \"vertical\"",
			types.ErrConfiguration, configuration.String())
	}
}
