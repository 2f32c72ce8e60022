package nozzle

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/gonozzle/types"
	"github.com/notargets/gonozzle/utils"
)

/*
Rao bell nozzle angles for a length fraction of 0.8, read off the thrust optimised parabolic nozzle
charts (AspireSpace, "The Thrust Optimised Parabolic nozzle"). Area ratio against angle in degrees.
*/
var (
	raoThetaN08 = utils.MustTable1D(
		[]float64{3.678, 3.854, 4.037, 4.229, 4.431, 4.642, 4.863, 5.094, 5.337, 5.591, 5.857, 6.136, 6.428,
			6.734, 7.055, 7.391, 7.743, 8.111, 8.498, 8.902, 9.326, 9.77, 10.235, 10.723, 11.233, 11.768,
			12.328, 12.915, 13.53, 14.175, 14.85, 15.557, 16.297, 17.074, 17.886, 18.738, 19.63, 20.565,
			21.544, 22.57, 23.645, 24.771, 25.95, 27.186, 28.48, 29.836, 31.257, 32.746, 34.305, 35.938,
			37.649, 39.442, 41.32, 43.288, 45.349, 47.508, 49.77, 52.14, 54.623},
		[]float64{21.067, 21.319, 21.601, 21.908, 22.215, 22.482, 22.734, 22.986, 23.238, 23.489, 23.736,
			23.984, 24.232, 24.48, 24.728, 24.965, 25.176, 25.387, 25.598, 25.809, 26.02, 26.231, 26.441,
			26.617, 26.792, 26.968, 27.143, 27.319, 27.494, 27.67, 27.845, 27.996, 28.134, 28.272, 28.409,
			28.547, 28.684, 28.822, 28.965, 29.119, 29.272, 29.426, 29.58, 29.733, 29.887, 30.04, 30.169,
			30.298, 30.426, 30.554, 30.683, 30.811, 30.94, 31.085, 31.239, 31.393, 31.546, 31.7, 31.853},
	)
	raoThetaE08 = utils.MustTable1D(
		[]float64{3.678, 3.854, 4.037, 4.229, 4.431, 4.642, 4.863, 5.094, 5.337, 5.591, 5.857, 6.136, 6.428,
			6.734, 7.055, 7.391, 7.743, 8.111, 8.498, 8.902, 9.326, 9.77, 10.235, 10.723, 11.233, 11.768,
			12.328, 12.915, 13.53, 14.175, 14.85, 15.557, 16.297, 17.074, 17.886, 18.738, 19.63, 20.565,
			21.544, 22.57, 23.645, 24.771, 25.95, 27.186, 28.48, 29.836, 31.257, 32.746, 34.305, 35.938,
			37.649, 39.442, 41.32, 43.288, 45.349, 47.508},
		[]float64{14.355, 14.097, 13.863, 13.624, 13.372, 13.113, 12.889, 12.684, 12.479, 12.285, 12.096,
			11.907, 11.733, 11.561, 11.393, 11.247, 11.101, 10.966, 10.832, 10.704, 10.585, 10.466, 10.347,
			10.229, 10.111, 10.001, 9.927, 9.854, 9.765, 9.659, 9.553, 9.447, 9.341, 9.235, 9.133, 9.047,
			8.962, 8.877, 8.797, 8.733, 8.67, 8.602, 8.5, 8.398, 8.295, 8.252, 8.219, 8.187, 8.155, 8.068,
			7.96, 7.851, 7.744, 7.68, 7.617, 7.553},
	)
)

const (
	// Both tables are only trusted inside this area ratio range, the θn table extends further
	// but shares the θe limits
	RaoAreaRatioMin = 3.7
	RaoAreaRatioMax = 47.

	// Fallback angles outside the data, which makes the contour close to a 15 degree cone
	RaoThetaNFallback = 15.0   // degrees
	RaoThetaEFallback = 14.999 // degrees
)

func raoTable(lengthFraction float64, tb *utils.Table1D) (*utils.Table1D, error) {
	if lengthFraction != 0.8 {
		return nil, fmt.Errorf("%w: the length fraction given (%g) does not match any of the available data, "+
			"only 0.8 is supported", types.ErrConfiguration, lengthFraction)
	}
	return tb, nil
}

func raoOutOfRange(areaRatio float64) bool {
	return areaRatio < RaoAreaRatioMin || areaRatio > RaoAreaRatioMax
}

// RaoThetaN is the contour angle at the inflection point of the bell nozzle (rad)
func RaoThetaN(areaRatio, lengthFraction float64) (thetaN float64, err error) {
	var tb *utils.Table1D
	if tb, err = raoTable(lengthFraction, raoThetaN08); err != nil {
		return
	}
	if raoOutOfRange(areaRatio) {
		log.WithFields(log.Fields{
			"area_ratio": areaRatio,
			"theta_n":    RaoThetaNFallback,
		}).Warn("area ratio is outside the range of the Rao inflection angle data, using the fallback angle")
		return RaoThetaNFallback * math.Pi / 180, nil
	}
	return tb.At(areaRatio) * math.Pi / 180, nil
}

// RaoThetaE is the contour angle at the exit of the bell nozzle (rad)
func RaoThetaE(areaRatio, lengthFraction float64) (thetaE float64, err error) {
	var tb *utils.Table1D
	if tb, err = raoTable(lengthFraction, raoThetaE08); err != nil {
		return
	}
	if raoOutOfRange(areaRatio) {
		log.WithFields(log.Fields{
			"area_ratio": areaRatio,
			"theta_e":    RaoThetaEFallback,
		}).Warn("area ratio is outside the range of the Rao exit angle data, using the fallback angle")
		return RaoThetaEFallback * math.Pi / 180, nil
	}
	return tb.At(areaRatio) * math.Pi / 180, nil
}
