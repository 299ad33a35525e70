package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/warebotics/waresim/core/demand"
	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/core/layout"
	"github.com/warebotics/waresim/infra/logger"
)

var optimizeIterations int

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize shelf placement against the demand profile",
	RunE:  optimizeLayout,
}

func init() {
	optimizeCmd.Flags().IntVarP(&optimizeIterations, "iterations", "n", 10, "optimizer iterations")
	rootCmd.AddCommand(optimizeCmd)
}

func optimizeLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := cfg.Demand.LoadTable()
	if err != nil {
		return err
	}
	g, err := grid.GenerateLayout(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return err
	}

	l := layoutFromGrid(g, table)
	opt := layout.NewOptimizer(logger.New("optimize-command"))
	res := opt.Optimize(l, table.Weights(), optimizeIterations)

	fmt.Printf("shelves: %d\n", res.Optimized.ShelfCount)
	fmt.Printf("efficiency: %.2f -> %.2f\n", res.Original.Efficiency, res.Optimized.Efficiency)
	fmt.Printf("reward trace: %v\n", res.RewardTrace)
	for _, insight := range res.Insights {
		fmt.Printf("- %s\n", insight)
	}
	return nil
}

// layoutFromGrid projects the generated grid into the optimizer's layout
// shape, spreading the demand table's categories across the shelf registry
// round-robin. Exits double as packing stations.
func layoutFromGrid(g *grid.Grid, table demand.Table) layout.Layout {
	categories := make([]string, 0, len(table.Categories))
	for c := range table.Categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	size := g.Rows()
	if g.Cols() > size {
		size = g.Cols()
	}
	l := layout.Layout{
		EntryPoints:     g.Entrances(),
		PackingStations: g.Exits(),
		GridSize:        size,
	}
	for i, s := range g.Shelves() {
		category := ""
		if len(categories) > 0 {
			category = categories[i%len(categories)]
		}
		l.Shelves = append(l.Shelves, layout.CategoryShelf{Position: s.Position, Category: category})
	}
	return l
}
