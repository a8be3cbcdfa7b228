package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boguszjelinski/kern/stopindex"
)

var (
	distStopsPath string
	distOutPath   string
)

var distancesCmd = &cobra.Command{
	Use:   "distances",
	Short: "Build a full stop-to-stop travel-time matrix from stop coordinates",
	Long: `distances reads a JSON array of stops (id, lat, lon) and writes a
scenario document skeleton (stops plus a dense, row-major distance matrix)
ready to have orders and cabs appended. It replaces the original tool's
point-to-point route segment recomputation with the full all-pairs matrix
the pool search requires, since the core never assumes a linear route.`,
	RunE: runDistances,
}

func init() {
	distancesCmd.Flags().StringVarP(&distStopsPath, "stops", "i", "", "path to a JSON array of {id,lat,lon} stops (required)")
	distancesCmd.Flags().StringVarP(&distOutPath, "out", "o", "", "output path for the scenario skeleton (default: stdout)")
	distancesCmd.MarkFlagRequired("stops")
}

type coordStop struct {
	ID  int     `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type scenarioSkeleton struct {
	Stops    []coordStop `json:"stops"`
	Orders   []any       `json:"orders"`
	Cabs     []any       `json:"cabs"`
	Distance []int16     `json:"distance"`
}

func runDistances(c *cobra.Command, args []string) error {
	raw, err := os.ReadFile(distStopsPath)
	if err != nil {
		return fmt.Errorf("kern: reading stops: %w", err)
	}
	var stops []coordStop
	if err := json.Unmarshal(raw, &stops); err != nil {
		return fmt.Errorf("kern: parsing stops: %w", err)
	}

	n := len(stops)
	dist := make([]int16, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m := stopindex.HaversineMinutes(stops[i].Lat, stops[i].Lon, stops[j].Lat, stops[j].Lon)
			dist[i*n+j] = int16(m)
			dist[j*n+i] = int16(m)
		}
	}

	skeleton := scenarioSkeleton{Stops: stops, Orders: []any{}, Cabs: []any{}, Distance: dist}
	out, err := json.MarshalIndent(skeleton, "", "  ")
	if err != nil {
		return fmt.Errorf("kern: marshaling scenario: %w", err)
	}

	if distOutPath == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(distOutPath, out, 0644); err != nil {
		return fmt.Errorf("kern: writing %s: %w", distOutPath, err)
	}
	fmt.Printf("Wrote %d stops, %d matrix entries to %s\n", n, len(dist), distOutPath)
	return nil
}
