package types

import (
	"fmt"
	"strings"
)

type NozzleType uint8

const (
	NozzleRao NozzleType = iota
	NozzleConical
)

var NozzleNameMap = map[string]NozzleType{
	"rao":     NozzleRao,
	"bell":    NozzleRao,
	"conical": NozzleConical,
	"cone":    NozzleConical,
}

func (nt NozzleType) String() string {
	names := [...]string{"rao", "conical"}
	if int(nt) < len(names) {
		return names[nt]
	}
	return fmt.Sprintf("NozzleType(%d)", uint8(nt))
}

type GeometryStyle uint8

const (
	GeometryAuto GeometryStyle = iota
	GeometryCustom
)

var GeometryNameMap = map[string]GeometryStyle{
	"auto":   GeometryAuto,
	"custom": GeometryCustom,
}

func (gs GeometryStyle) String() string {
	names := [...]string{"auto", "custom"}
	if int(gs) < len(names) {
		return names[gs]
	}
	return fmt.Sprintf("GeometryStyle(%d)", uint8(gs))
}

// ChannelConfig is the routing of coolant channels around the liner
type ChannelConfig uint8

const (
	ChannelSpiral ChannelConfig = iota
	ChannelVertical
)

var ChannelNameMap = map[string]ChannelConfig{
	"spiral":   ChannelSpiral,
	"vertical": ChannelVertical,
}

func (cc ChannelConfig) String() string {
	names := [...]string{"spiral", "vertical"}
	if int(cc) < len(names) {
		return names[cc]
	}
	return fmt.Sprintf("ChannelConfig(%d)", uint8(cc))
}

type ChannelShape uint8

const (
	ShapeNone ChannelShape = iota
	ShapeRectangle
	ShapeSemiCircle
	ShapeCustom
)

var ShapeNameMap = map[string]ChannelShape{
	"":            ShapeNone,
	"rectangle":   ShapeRectangle,
	"semi-circle": ShapeSemiCircle,
	"semicircle":  ShapeSemiCircle,
	"custom":      ShapeCustom,
}

func (cs ChannelShape) String() string {
	names := [...]string{"none", "rectangle", "semi-circle", "custom"}
	if int(cs) < len(names) {
		return names[cs]
	}
	return fmt.Sprintf("ChannelShape(%d)", uint8(cs))
}

/*
GasSideModel selects the exhaust side convective heat transfer correlation
	HGas1: Rocket Propulsion Elements Eqn (8-22), freestream properties
	HGas2: Bartz, gas properties at the arithmetic mean of wall and freestream temperatures
	HGas3: Bartz with the sigma correction, stagnation properties
*/
type GasSideModel uint8

const (
	HGas1 GasSideModel = iota + 1
	HGas2
	HGas3
)

var GasSideNameMap = map[string]GasSideModel{
	"1":           HGas1,
	"rpe":         HGas1,
	"2":           HGas2,
	"bartz":       HGas2,
	"3":           HGas3,
	"bartz-sigma": HGas3,
}

func (gm GasSideModel) String() string {
	switch gm {
	case HGas1:
		return "1"
	case HGas2:
		return "2"
	case HGas3:
		return "3"
	}
	return fmt.Sprintf("GasSideModel(%d)", uint8(gm))
}

type CoolantSideModel uint8

const (
	HCoolant1 CoolantSideModel = iota + 1
)

var CoolantSideNameMap = map[string]CoolantSideModel{
	"1":              HCoolant1,
	"dittus-boelter": HCoolant1,
}

func (cm CoolantSideModel) String() string {
	if cm == HCoolant1 {
		return "1"
	}
	return fmt.Sprintf("CoolantSideModel(%d)", uint8(cm))
}

func ParseNozzleType(name string) (nt NozzleType, err error) {
	var ok bool
	if nt, ok = NozzleNameMap[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("%w: nozzle type %q is not recognised, try \"rao\" or \"conical\"",
			ErrConfiguration, name)
	}
	return
}

func ParseGeometryStyle(name string) (gs GeometryStyle, err error) {
	var ok bool
	if gs, ok = GeometryNameMap[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("%w: geometry style %q is not recognised, try \"auto\"",
			ErrConfiguration, name)
	}
	return
}

func ParseChannelConfig(name string) (cc ChannelConfig, err error) {
	var ok bool
	if cc, ok = ChannelNameMap[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("%w: cooling jacket configuration %q is not recognised, try \"spiral\" or \"vertical\"",
			ErrConfiguration, name)
	}
	return
}

func ParseChannelShape(name string) (cs ChannelShape, err error) {
	var ok bool
	if cs, ok = ShapeNameMap[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("%w: channel shape %q is not recognised, try \"rectangle\", \"semi-circle\" or \"custom\"",
			ErrConfiguration, name)
	}
	return
}

func ParseGasSideModel(name string) (gm GasSideModel, err error) {
	var ok bool
	if gm, ok = GasSideNameMap[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("%w: could not find the h_gas model %q", ErrConfiguration, name)
	}
	return
}

func ParseCoolantSideModel(name string) (cm CoolantSideModel, err error) {
	var ok bool
	if cm, ok = CoolantSideNameMap[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("%w: could not find the h_coolant model %q", ErrConfiguration, name)
	}
	return
}
