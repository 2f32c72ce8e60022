package provider

import (
	"fmt"

	"github.com/notargets/gonozzle/types"
	"github.com/notargets/gonozzle/utils"
)

/*
TabulatedCoolant interpolates liquid properties against temperature and decides the phase from a
saturation curve of boiling temperature against pressure. Pressure dependence of the liquid
properties themselves is neglected.
*/
type TabulatedCoolant struct {
	Name string
	// ForceLiquid keeps the coolant liquid regardless of the saturation curve
	ForceLiquid bool

	mu, k, cp, rho *utils.Table1D
	tSat           *utils.Table1D
}

type CoolantTable struct {
	T, Mu, K, Cp, Rho []float64
	// Saturation curve
	PSat, TSat []float64
}

func NewTabulatedCoolant(name string, tbl CoolantTable) (tc *TabulatedCoolant, err error) {
	tc = &TabulatedCoolant{Name: name}
	for _, f := range []struct {
		dst   **utils.Table1D
		label string
		X, Y  []float64
	}{
		{&tc.mu, "viscosity", tbl.T, tbl.Mu},
		{&tc.k, "conductivity", tbl.T, tbl.K},
		{&tc.cp, "specific heat", tbl.T, tbl.Cp},
		{&tc.rho, "density", tbl.T, tbl.Rho},
		{&tc.tSat, "saturation", tbl.PSat, tbl.TSat},
	} {
		if *f.dst, err = utils.NewTable1D(f.X, f.Y); err != nil {
			return nil, fmt.Errorf("%w: coolant %q %s table: %v", types.ErrConfiguration, name, f.label, err)
		}
	}
	return
}

func (tc *TabulatedCoolant) Mu(T, p float64) float64  { return tc.mu.At(T) }
func (tc *TabulatedCoolant) K(T, p float64) float64   { return tc.k.At(T) }
func (tc *TabulatedCoolant) Cp(T, p float64) float64  { return tc.cp.At(T) }
func (tc *TabulatedCoolant) Rho(T, p float64) float64 { return tc.rho.At(T) }

// SaturationTemperature is the boiling temperature at pressure p, clamped to the table ends
func (tc *TabulatedCoolant) SaturationTemperature(p float64) float64 { return tc.tSat.At(p) }

func (tc *TabulatedCoolant) IsLiquid(T, p float64) bool {
	if tc.ForceLiquid {
		return true
	}
	return T < tc.SaturationTemperature(p)
}

// Water returns saturated liquid water data from 275 K to 600 K (Incropera, table A.6)
func Water() *TabulatedCoolant {
	tc, err := NewTabulatedCoolant("water", CoolantTable{
		T:   []float64{275, 300, 325, 350, 375, 400, 450, 500, 550, 600},
		Mu:  []float64{1652.e-6, 855.e-6, 528.e-6, 365.e-6, 274.e-6, 217.e-6, 152.e-6, 118.e-6, 97.e-6, 81.e-6},
		K:   []float64{0.574, 0.613, 0.645, 0.668, 0.681, 0.688, 0.678, 0.642, 0.580, 0.497},
		Cp:  []float64{4211, 4179, 4182, 4195, 4220, 4256, 4400, 4660, 5240, 7000},
		Rho: []float64{999.9, 996.5, 987.1, 973.7, 956.8, 937.4, 890.3, 831.3, 756.0, 649.4},
		PSat: []float64{1.e3, 5.e3, 1.e4, 5.e4, 1.01325e5, 2.e5, 5.e5, 1.e6, 2.e6, 5.e6, 1.e7,
			2.e7},
		TSat: []float64{280.1, 306.0, 318.96, 354.47, 373.12, 393.36, 424.98, 453.03, 485.53, 537.09,
			584.15, 638.9},
	})
	if err != nil {
		panic(err)
	}
	return tc
}

// Ethanol returns liquid ethanol data from 250 K to 500 K
func Ethanol() *TabulatedCoolant {
	tc, err := NewTabulatedCoolant("ethanol", CoolantTable{
		T:   []float64{250, 275, 300, 325, 350, 375, 400, 450, 500},
		Mu:  []float64{3.26e-3, 1.79e-3, 1.04e-3, 0.72e-3, 0.46e-3, 0.33e-3, 0.24e-3, 0.14e-3, 0.08e-3},
		K:   []float64{0.181, 0.175, 0.167, 0.161, 0.154, 0.148, 0.141, 0.128, 0.114},
		Cp:  []float64{2140, 2280, 2440, 2640, 2880, 3140, 3420, 4130, 5540},
		Rho: []float64{818.6, 798.2, 785.1, 762.0, 735.4, 707.0, 676.4, 602.5, 481.3},
		PSat: []float64{1.e3, 5.e3, 1.e4, 5.e4, 1.01325e5, 2.e5, 5.e5, 1.e6, 2.e6, 5.e6},
		TSat: []float64{256.4, 280.8, 292.3, 325.1, 351.4, 370.3, 400.9, 424.4, 452.1, 496.2},
	})
	if err != nil {
		panic(err)
	}
	return tc
}

var CoolantNameMap = map[string]func() *TabulatedCoolant{
	"water":   Water,
	"ethanol": Ethanol,
}

func LookupCoolant(name string) (tc *TabulatedCoolant, err error) {
	if f, ok := CoolantNameMap[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("%w: unknown coolant %q", types.ErrConfiguration, name)
}
