package cli

import (
	"fmt"
	"io"

	"stevenson/internal/weather"
)

// printReport writes the reading's string form and each derived value. A
// humidity RangeError is printed in place of the percentage; the remaining
// derivations are total and always print.
func printReport(w io.Writer, r weather.Reading) {
	fmt.Fprintln(w, r)
	fmt.Fprintf(w, "  temperature:       %d °C\n", r.Temperature())
	fmt.Fprintf(w, "  dew point:         %d °C\n", r.DewPoint())
	fmt.Fprintf(w, "  wind speed:        %d mph\n", r.WindSpeed())
	fmt.Fprintf(w, "  total rain:        %d mm\n", r.TotalRain())
	if humidity, err := r.RelativeHumidity(); err != nil {
		fmt.Fprintf(w, "  relative humidity: %v\n", err)
	} else {
		fmt.Fprintf(w, "  relative humidity: %d%%\n", humidity)
	}
	fmt.Fprintf(w, "  heat index:        %d\n", r.HeatIndex())
	fmt.Fprintf(w, "  wind chill:        %d\n", r.WindChill())
}
