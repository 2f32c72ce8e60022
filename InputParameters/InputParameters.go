package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gonozzle/cooling"
	"github.com/notargets/gonozzle/engine"
	"github.com/notargets/gonozzle/gas"
	"github.com/notargets/gonozzle/nozzle"
	"github.com/notargets/gonozzle/provider"
	"github.com/notargets/gonozzle/types"
)

// Parameters obtained from the YAML engine deck
type EngineDeck struct {
	Title    string        `yaml:"Title"`
	Gas      GasDeck       `yaml:"Gas"`
	Chamber  ChamberDeck   `yaml:"Chamber"`
	Nozzle   NozzleDeck    `yaml:"Nozzle"`
	Geometry *GeometryDeck `yaml:"Geometry"`
	Jacket   *JacketDeck   `yaml:"Jacket"`
	Exhaust  *ExhaustDeck  `yaml:"Exhaust"`
	Heating  HeatingDeck   `yaml:"Heating"`
}

// Exactly two of the three properties are given
type GasDeck struct {
	Gamma           float64 `yaml:"Gamma"`
	Cp              float64 `yaml:"Cp"`
	MolecularWeight float64 `yaml:"MolecularWeight"`
}

type ChamberDeck struct {
	P0   float64 `yaml:"P0"`
	T0   float64 `yaml:"T0"`
	Mdot float64 `yaml:"Mdot"`
}

// With AreaRatio left at zero the nozzle is sized to expand to DesignPAmb, sea level when that is zero too
type NozzleDeck struct {
	Type           string  `yaml:"Type"`
	LengthFraction float64 `yaml:"LengthFraction"`
	AreaRatio      float64 `yaml:"AreaRatio"`
	DesignPAmb     float64 `yaml:"DesignPAmb"`
}

type GeometryDeck struct {
	Style            string    `yaml:"Style"`
	ChamberLength    float64   `yaml:"ChamberLength"`
	ContractionRatio float64   `yaml:"ContractionRatio"` // Chamber area over throat area
	WallThickness    []float64 `yaml:"WallThickness"`
}

type JacketDeck struct {
	Material          string       `yaml:"Material"`
	Coolant           string       `yaml:"Coolant"` // A tabulated coolant, or "constant" to use CoolantProperties
	CoolantProperties *CoolantDeck `yaml:"CoolantProperties"`
	InletT            float64      `yaml:"InletT"`
	InletP0           float64      `yaml:"InletP0"`
	Mdot              float64      `yaml:"Mdot"`
	Configuration     string       `yaml:"Configuration"`
	Shape             string       `yaml:"Shape"`
	Height            float64      `yaml:"Height"`
	Width             float64      `yaml:"Width"`
	Diameter          float64      `yaml:"Diameter"`
	FlowArea          float64      `yaml:"FlowArea"`
	HydraulicDiameter float64      `yaml:"HydraulicDiameter"`
	Xs                []float64    `yaml:"Xs"`
}

type CoolantDeck struct {
	Mu                 float64 `yaml:"Mu"`
	K                  float64 `yaml:"K"`
	Cp                 float64 `yaml:"Cp"`
	Rho                float64 `yaml:"Rho"`
	BoilingTemperature float64 `yaml:"BoilingTemperature"`
}

type ExhaustDeck struct {
	Mu float64 `yaml:"Mu"`
	K  float64 `yaml:"K"`
	Pr float64 `yaml:"Pr"`
}

type HeatingDeck struct {
	NumberOfPoints   int    `yaml:"NumberOfPoints"`
	GasSideModel     string `yaml:"GasSideModel"`
	CoolantSideModel string `yaml:"CoolantSideModel"`
}

func (ed *EngineDeck) Parse(data []byte) error {
	return yaml.Unmarshal(data, ed)
}

func (ed *EngineDeck) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ed.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", ed.Gas.Gamma)
	fmt.Printf("%8.5f\t\t= MolecularWeight\n", ed.Gas.MolecularWeight)
	fmt.Printf("%8.5f\t\t= Cp\n", ed.Gas.Cp)
	fmt.Printf("%8.5g\t\t= P0\n", ed.Chamber.P0)
	fmt.Printf("%8.5f\t\t= T0\n", ed.Chamber.T0)
	fmt.Printf("%8.5f\t\t= Mdot\n", ed.Chamber.Mdot)
	fmt.Printf("[%s]\t\t\t= Nozzle Type\n", ed.Nozzle.Type)
	fmt.Printf("%8.5f\t\t= Length Fraction\n", ed.Nozzle.LengthFraction)
	if ed.Nozzle.AreaRatio != 0 {
		fmt.Printf("%8.5f\t\t= Area Ratio\n", ed.Nozzle.AreaRatio)
	} else {
		fmt.Printf("%8.5g\t\t= Design Ambient Pressure\n", ed.Nozzle.DesignPAmb)
	}
	if g := ed.Geometry; g != nil {
		fmt.Printf("%8.5f\t\t= Chamber Length\n", g.ChamberLength)
		fmt.Printf("%8.5f\t\t= Contraction Ratio\n", g.ContractionRatio)
		fmt.Printf("%v\t\t= Wall Thickness\n", g.WallThickness)
	}
	if j := ed.Jacket; j != nil {
		fmt.Printf("[%s]\t\t= Wall Material\n", j.Material)
		fmt.Printf("[%s]\t\t\t= Coolant\n", j.Coolant)
		fmt.Printf("[%s]\t\t= Channel Configuration\n", j.Configuration)
		fmt.Printf("%8.5f\t\t= Coolant Mdot\n", j.Mdot)
	}
	fmt.Printf("[%d]\t\t\t\t= Number of Points\n", ed.Heating.NumberOfPoints)
}

func (ed *EngineDeck) NewGas() (pg gas.PerfectGas, err error) {
	var opts []gas.Option
	if ed.Gas.Gamma != 0 {
		opts = append(opts, gas.Gamma(ed.Gas.Gamma))
	}
	if ed.Gas.Cp != 0 {
		opts = append(opts, gas.Cp(ed.Gas.Cp))
	}
	if ed.Gas.MolecularWeight != 0 {
		opts = append(opts, gas.MolecularWeight(ed.Gas.MolecularWeight))
	}
	return gas.NewPerfectGas(opts...)
}

func (ed *EngineDeck) NewNozzle(pg gas.PerfectGas, cc gas.ChamberConditions) (nz *nozzle.Nozzle, err error) {
	var (
		nd             = ed.Nozzle
		nt             = types.NozzleRao
		lengthFraction = nd.LengthFraction
		pAmb           = nd.DesignPAmb
	)
	if nd.Type != "" {
		if nt, err = types.ParseNozzleType(nd.Type); err != nil {
			return
		}
	}
	if lengthFraction == 0 {
		lengthFraction = 0.8
	}
	if nd.AreaRatio != 0 {
		At := gas.ThroatArea(pg, cc)
		return nozzle.New(At, nd.AreaRatio*At, nt, lengthFraction)
	}
	if pAmb == 0 {
		pAmb = provider.SeaLevelPressure
	}
	return nozzle.FromEngineComponents(pg, cc, pAmb, nt, lengthFraction)
}

func (jd *JacketDeck) NewCoolant() (coolant provider.CoolantTransport, err error) {
	name := strings.ToLower(jd.Coolant)
	if name == "constant" {
		cp := jd.CoolantProperties
		if cp == nil {
			return nil, fmt.Errorf("%w: a constant coolant needs CoolantProperties", types.ErrConfiguration)
		}
		return provider.NewConstantCoolant(cp.Mu, cp.K, cp.Cp, cp.Rho, cp.BoilingTemperature)
	}
	return provider.LookupCoolant(name)
}

func (jd *JacketDeck) NewCoolingJacket() (cj *cooling.CoolingJacket, err error) {
	var (
		material      provider.Material
		coolant       provider.CoolantTransport
		configuration types.ChannelConfig
		shape         types.ChannelShape
		xs            = cooling.DefaultJacketExtent
	)
	if material, err = provider.LookupMaterial(strings.ToLower(jd.Material)); err != nil {
		return
	}
	if coolant, err = jd.NewCoolant(); err != nil {
		return
	}
	if configuration, err = types.ParseChannelConfig(jd.Configuration); err != nil {
		return
	}
	if shape, err = types.ParseChannelShape(jd.Shape); err != nil {
		return
	}
	switch len(jd.Xs) {
	case 0:
	case 2:
		xs = [2]float64{jd.Xs[0], jd.Xs[1]}
	default:
		return nil, fmt.Errorf("%w: the jacket extent Xs needs a start and an end, have %v",
			types.ErrConfiguration, jd.Xs)
	}
	return cooling.NewCoolingJacket(material, jd.InletT, jd.InletP0, coolant, jd.Mdot, xs, configuration,
		cooling.ChannelSpec{
			Shape:          shape,
			Height:         jd.Height,
			Width:          jd.Width,
			Diameter:       jd.Diameter,
			CustomFlowArea: jd.FlowArea,
			CustomDiameter: jd.HydraulicDiameter,
		})
}

/*
NewEngine builds the engine and attaches every optional component present in the deck: the chamber
geometry, the cooling jacket and the exhaust transport properties.
*/
func (ed *EngineDeck) NewEngine() (e *engine.Engine, err error) {
	var (
		pg gas.PerfectGas
		cc gas.ChamberConditions
		nz *nozzle.Nozzle
	)
	if pg, err = ed.NewGas(); err != nil {
		return
	}
	if cc, err = gas.NewChamberConditions(ed.Chamber.P0, ed.Chamber.T0, ed.Chamber.Mdot); err != nil {
		return
	}
	if nz, err = ed.NewNozzle(pg, cc); err != nil {
		return
	}
	if e, err = engine.New(pg, cc, nz); err != nil {
		return
	}
	if g := ed.Geometry; g != nil {
		style := types.GeometryAuto
		if g.Style != "" {
			if style, err = types.ParseGeometryStyle(g.Style); err != nil {
				return nil, err
			}
		}
		if err = e.AddGeometry(g.ChamberLength, g.ContractionRatio*nz.At, g.WallThickness, style); err != nil {
			return nil, err
		}
	}
	if ed.Jacket != nil {
		var cj *cooling.CoolingJacket
		if cj, err = ed.Jacket.NewCoolingJacket(); err != nil {
			return nil, err
		}
		e.AddCoolingJacket(cj)
	}
	if ex := ed.Exhaust; ex != nil {
		var ce *provider.ConstantExhaust
		if ce, err = provider.NewConstantExhaust(ex.Mu, ex.K, ex.Pr); err != nil {
			return nil, err
		}
		e.AddExhaustTransport(ce)
	}
	return
}

func (ed *EngineDeck) HeatingOptions() (opts engine.HeatingOptions, err error) {
	opts = engine.DefaultHeatingOptions()
	if ed.Heating.NumberOfPoints != 0 {
		opts.NumberOfPoints = ed.Heating.NumberOfPoints
	}
	if ed.Heating.GasSideModel != "" {
		if opts.GasSideModel, err = types.ParseGasSideModel(ed.Heating.GasSideModel); err != nil {
			return
		}
	}
	if ed.Heating.CoolantSideModel != "" {
		if opts.CoolantSideModel, err = types.ParseCoolantSideModel(ed.Heating.CoolantSideModel); err != nil {
			return
		}
	}
	return
}

const ExampleDeck = `
########################################
Title: "Ethanol / LOX 10 bar"
Gas:
  Gamma: 1.264
  MolecularWeight: 21.627
Chamber:
  P0: 1000000
  T0: 2458.89
  Mdot: 4.757
Nozzle:
  Type: rao
  LengthFraction: 0.8
  AreaRatio: 5
Geometry:
  ChamberLength: 0.15
  ContractionRatio: 4
  WallThickness: [0.002]
Jacket:
  Material: copper-c106
  Coolant: water
  InletT: 298
  InletP0: 2000000
  Mdot: 5
  Configuration: vertical
  Height: 0.002
Exhaust:
  Mu: 0.00007
  K: 0.2
  Pr: 0.7
Heating:
  NumberOfPoints: 1000
  GasSideModel: bartz-sigma
  CoolantSideModel: dittus-boelter
########################################
`
