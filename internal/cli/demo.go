package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"stevenson/internal/weather"
)

// sampleObservations are the canonical demonstration measurements:
// air temperature (°C), dew point (°C), wind speed (mph), rain (mm).
var sampleObservations = [][4]float64{
	{67.468448, 66.326441, 49.811793, 6},
	{8.136959, -2.053103, 19.060520, 81},
	{72.500384, 53.767550, 46.958175, 18},
	{95.912468, 84.870745, 11.962080, 49},
	{94.997928, 85.746917, 35.210145, 71},
	{88.425323, 72.907685, 27.497372, 95},
	{75.696371, 72.185936, 5.817415, 82},
	{95.590494, 86.909615, 14.734458, 24},
	{68.257267, 54.912307, 12.821509, 34},
}

// demoCmd represents the demo command.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print sample readings and their derived values",
	Long: `Constructs a fixed set of sample readings, prints each one with its
derived values, then attempts to construct a deliberately invalid reading and
prints the rejection message.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, m := range sampleObservations {
		r, err := weather.New(m[0], m[1], m[2], m[3])
		if err != nil {
			return fmt.Errorf("sample reading %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "Reading %d:\n", i+1)
		printReport(out, r)
		fmt.Fprintln(out)
	}

	// Deliberately invalid: the dew point exceeds the air temperature (the
	// wind speed is negative too, but the dew point rule is checked first).
	fmt.Fprintln(out, "Attempting to create an invalid reading:")
	_, err := weather.New(15.0, 20.0, -5.0, 3.0)
	var vErr *weather.ValidationError
	if !errors.As(err, &vErr) {
		return fmt.Errorf("invalid reading was accepted (err = %v)", err)
	}
	fmt.Fprintf(out, "Error: %s\n", vErr.Error())
	slog.Debug("rejected invalid reading", "error", vErr)
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
