package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warebotics/waresim/core/dispatch"
	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/simulator"
)

var fleetOrders int

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Analyze fleet health and sizing for an order volume",
	RunE:  analyzeFleet,
}

func init() {
	fleetCmd.Flags().IntVarP(&fleetOrders, "orders", "o", 40, "pending order volume to size against")
	rootCmd.AddCommand(fleetCmd)
}

func analyzeFleet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := grid.GenerateLayout(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return err
	}
	fleet := simulator.SeedFleet(cfg.Simulator.FleetSize, g)

	robots := fleet.Robots()
	analysis := dispatch.AnalyzeFleet(robots)
	optimal := dispatch.OptimalFleetSize(fleetOrders)

	fmt.Printf("fleet size: %d, optimal for %d orders: %d\n", len(robots), fleetOrders, optimal)
	fmt.Printf("average battery: %.1f%%, average efficiency: %.3f\n",
		analysis.AverageBattery, analysis.AverageEfficiency)
	fmt.Printf("ranking: %v\n", analysis.Ranking)
	return nil
}
