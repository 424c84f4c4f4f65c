package cli

import (
	"github.com/spf13/cobra"

	"stevenson/internal/weather"
)

var (
	deriveTemperature float64
	deriveDewPoint    float64
	deriveWindSpeed   float64
	deriveRain        float64
)

// deriveCmd represents the derive command.
var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive humidity, heat index and wind chill for one reading",
	Long: `Builds a single reading from the given measurements and prints its
derived values.

Examples:
  stevenson derive --temperature 30 --dew-point 25 --wind-speed 10 --rain 0
  stevenson derive -t 0 -d -5 -w 10 -r 2`,
	Args: cobra.NoArgs,
	RunE: runDerive,
}

func runDerive(cmd *cobra.Command, args []string) error {
	r, err := weather.New(deriveTemperature, deriveDewPoint, deriveWindSpeed, deriveRain)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), r)
	return nil
}

func init() {
	deriveCmd.Flags().Float64VarP(&deriveTemperature, "temperature", "t", 0, "Air temperature in °C")
	deriveCmd.Flags().Float64VarP(&deriveDewPoint, "dew-point", "d", 0, "Dew point in °C")
	deriveCmd.Flags().Float64VarP(&deriveWindSpeed, "wind-speed", "w", 0, "Wind speed in mph")
	deriveCmd.Flags().Float64VarP(&deriveRain, "rain", "r", 0, "Rain over the last 24 hours in mm")
	_ = deriveCmd.MarkFlagRequired("temperature")
	_ = deriveCmd.MarkFlagRequired("dew-point")
	rootCmd.AddCommand(deriveCmd)
}
