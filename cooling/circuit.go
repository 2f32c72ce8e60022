package cooling

import (
	"fmt"
	"math"

	"github.com/notargets/gonozzle/types"
)

/*
Circuit is the heat path from the exhaust to the coolant through three resistances in series:
gas side convection, conduction through the liner and coolant side convection. Resistances and
QDot are per unit axial length, QDot is positive when heat flows into the coolant.
*/
type Circuit struct {
	RGas, RWall, RCoolant float64 // K m/W
	QDot                  float64 // W/m
	QADot                 float64 // W/m^2, on the gas side wall
}

func ThermalCircuit(r, thickness, hGas, hCoolant, kWall, TGas, TCoolant float64) (c Circuit, err error) {
	if r <= 0 || thickness <= 0 || hGas <= 0 || hCoolant <= 0 || kWall <= 0 {
		err = fmt.Errorf("%w: thermal circuit needs positive radius, thickness, coefficients and conductivity, "+
			"have r = %g, t = %g, h_gas = %g, h_coolant = %g, k = %g",
			types.ErrDomain, r, thickness, hGas, hCoolant, kWall)
		return
	}
	var (
		rOut   = r + thickness
		AInner = 2 * math.Pi * r    // Gas side circumference
		AOuter = 2 * math.Pi * rOut // Coolant side circumference
	)
	c.RGas = 1 / (hGas * AInner)
	c.RWall = math.Log(rOut/r) / (2 * math.Pi * kWall)
	c.RCoolant = 1 / (hCoolant * AOuter)
	c.QDot = (TGas - TCoolant) / c.Total()
	c.QADot = c.QDot / AInner
	return
}

func (c Circuit) Total() float64 { return c.RGas + c.RWall + c.RCoolant }

// WallTemperatures are the gas side and coolant side liner surface temperatures
func (c Circuit) WallTemperatures(TGas float64) (inner, outer float64) {
	inner = TGas - c.QDot*c.RGas
	outer = inner - c.QDot*c.RWall
	return
}
