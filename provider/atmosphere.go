package provider

import (
	"math"
	"sort"
)

// Atmosphere gives ambient conditions at geometric altitude h (m)
type Atmosphere interface {
	Density(h float64) float64  // kg/m^3
	Pressure(h float64) float64 // Pa
}

const (
	EarthRadius         = 6356766.  // m, used for geopotential altitude
	AirGasConstant      = 287.05287 // J/kg/K
	gravity             = 9.80665   // m/s^2
	SeaLevelPressure    = 101325.   // Pa
	SeaLevelTemperature = 288.15    // K
	// Above this geometric altitude the ambient is treated as vacuum
	AtmosphereCeiling = 81020.
)

/*
StandardAtmosphere is the 1976 US standard atmosphere up to AtmosphereCeiling, built from
geopotential layers with constant lapse rates.
*/
type StandardAtmosphere struct {
	base []isaLayer
}

type isaLayer struct {
	H, T, P, Lapse float64 // Base geopotential altitude (m), temperature (K), pressure (Pa), lapse rate (K/m)
}

func NewStandardAtmosphere() (sa *StandardAtmosphere) {
	var (
		heights = []float64{0, 11000, 20000, 32000, 47000, 51000, 71000}
		lapses  = []float64{-6.5e-3, 0, 1.e-3, 2.8e-3, 0, -2.8e-3, -2.e-3}
		T       = SeaLevelTemperature
		P       = SeaLevelPressure
	)
	sa = &StandardAtmosphere{}
	for i, h := range heights {
		if i > 0 {
			dH := h - heights[i-1]
			T, P = layerState(T, P, lapses[i-1], dH)
		}
		sa.base = append(sa.base, isaLayer{H: h, T: T, P: P, Lapse: lapses[i]})
	}
	return
}

func layerState(Tb, Pb, lapse, dH float64) (T, P float64) {
	if lapse == 0 {
		return Tb, Pb * math.Exp(-gravity*dH/(AirGasConstant*Tb))
	}
	T = Tb + lapse*dH
	P = Pb * math.Pow(T/Tb, -gravity/(lapse*AirGasConstant))
	return
}

// State returns the ambient temperature and pressure, both zero above the ceiling
func (sa *StandardAtmosphere) State(h float64) (T, P float64) {
	if h >= AtmosphereCeiling {
		return 0, 0
	}
	H := EarthRadius * h / (EarthRadius + h)
	i := sort.Search(len(sa.base), func(i int) bool { return sa.base[i].H > H }) - 1
	if i < 0 {
		i = 0
	}
	b := sa.base[i]
	return layerState(b.T, b.P, b.Lapse, H-b.H)
}

func (sa *StandardAtmosphere) Pressure(h float64) (P float64) {
	_, P = sa.State(h)
	return
}

func (sa *StandardAtmosphere) Density(h float64) float64 {
	T, P := sa.State(h)
	if T == 0 {
		return 0
	}
	return P / (AirGasConstant * T)
}
