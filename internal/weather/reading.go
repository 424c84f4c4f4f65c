// Package weather models a single weather observation taken from a Stevenson
// screen, the standard instrument shelter, and derives relative humidity,
// heat index and wind chill from its raw measurements.
package weather

import (
	"fmt"
	"math"
)

// Coefficients of the Rothfusz heat index regression (Celsius form).
const (
	c1 = -8.78469475556
	c2 = 1.61139411
	c3 = 2.33854883889
	c4 = -0.14611605
	c5 = -0.012308094
	c6 = -0.0164248277778
	c7 = 0.002211732
	c8 = 0.00072546
	c9 = -0.000003582
)

// Reading is one immutable observation: air temperature (°C), dew point (°C),
// wind speed (mph) and total rain over the last 24 hours (mm). Inputs are
// validated once by New and stored verbatim; a Reading never changes after
// construction, so sharing it between goroutines needs no synchronization.
//
// Reading is comparable. Two readings are equal exactly when all four stored
// values compare equal as float64s; the rounded accessor values play no part
// in equality. The zero Reading is valid (all measurements zero).
type Reading struct {
	airTemperature float64
	dewPoint       float64
	windSpeed      float64
	totalRain      float64
}

// New returns a Reading for the given measurements, or a *ValidationError if
// the dew point exceeds the air temperature or the wind speed or rain amount
// is negative. No partially valid Reading is ever produced.
func New(airTemperature, dewPoint, windSpeed, totalRain float64) (Reading, error) {
	if dewPoint > airTemperature {
		return Reading{}, &ValidationError{msg: "dew point cannot be greater than air temperature"}
	}
	if windSpeed < 0 || totalRain < 0 {
		return Reading{}, &ValidationError{msg: "wind speed and rain amount cannot be negative"}
	}
	return Reading{
		airTemperature: airTemperature,
		dewPoint:       dewPoint,
		windSpeed:      windSpeed,
		totalRain:      totalRain,
	}, nil
}

// Temperature returns the air temperature in °C, rounded to the nearest
// integer (ties away from zero, as all rounding here).
func (r Reading) Temperature() int {
	return int(math.Round(r.airTemperature))
}

// DewPoint returns the dew point temperature in °C, rounded.
func (r Reading) DewPoint() int {
	return int(math.Round(r.dewPoint))
}

// WindSpeed returns the wind speed in miles per hour, rounded.
func (r Reading) WindSpeed() int {
	return int(math.Round(r.windSpeed))
}

// TotalRain returns the rain received in the last 24 hours in mm, rounded.
func (r Reading) TotalRain() int {
	return int(math.Round(r.totalRain))
}

// vaporPressure is the saturation vapor pressure (hPa) at temperature t °C.
func vaporPressure(t float64) float64 {
	return 6.11 * math.Pow(10, 7.5*t/(237.3+t))
}

// humidity is the relative humidity percentage: the ratio of the actual vapor
// pressure (from the dew point) to the saturated vapor pressure (from the air
// temperature). Unrounded and unbounded; recomputed on every call.
func (r Reading) humidity() float64 {
	return 100 * vaporPressure(r.dewPoint) / vaporPressure(r.airTemperature)
}

// RelativeHumidity returns the relative humidity as a whole percentage.
// It returns a *RangeError when the rounded value falls outside [0, 100],
// which means the dew point and temperature passed construction individually
// but are physically inconsistent together.
func (r Reading) RelativeHumidity() (int, error) {
	// Bounds are checked on the rounded float64 so that extreme inputs are
	// reported instead of overflowing the int conversion.
	h := math.Round(r.humidity())
	if h < 0 || h > 100 {
		return 0, &RangeError{Value: h}
	}
	return int(h), nil
}

// HeatIndex returns the apparent temperature combining heat and humidity,
// rounded to the nearest integer. The regression uses the exact unrounded
// humidity percentage, with no bounds check: rounding it first skews the
// result, so HeatIndex never fails even where RelativeHumidity would report
// a RangeError.
func (r Reading) HeatIndex() int {
	t := r.airTemperature
	h := r.humidity()
	hi := c1 + c2*t + c3*h + c4*t*h + c5*t*t + c6*h*h + c7*t*t*h + c8*t*h*h + c9*t*t*h*h
	return int(math.Round(hi))
}

// WindChill returns the apparent temperature in °C accounting for wind-driven
// heat loss, rounded to the nearest integer. The NWS formula works in
// Fahrenheit, so the stored temperature is converted and the result converted
// back. At zero wind speed 0^0.16 is 0 and the formula stays total.
func (r Reading) WindChill() int {
	tf := r.airTemperature*9/5 + 32
	v := math.Pow(r.windSpeed, 0.16)
	chill := 35.74 + 0.6215*tf - 35.75*v + 0.4275*tf*v
	return int(math.Round((chill - 32) * 5 / 9))
}

// String formats the reading with its rounded values, e.g.
// "Reading: T = 15, D = 10, v = 5, rain = 1".
func (r Reading) String() string {
	return fmt.Sprintf("Reading: T = %d, D = %d, v = %d, rain = %d",
		r.Temperature(), r.DewPoint(), r.WindSpeed(), r.TotalRain())
}
