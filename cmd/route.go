package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/warebotics/waresim/core/dispatch"
	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/core/model"
	"github.com/warebotics/waresim/infra/logger"
	"github.com/warebotics/waresim/simulator"
)

var routeProducts []string

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Plan a pick route for an ad-hoc order",
	RunE:  planRoute,
}

func init() {
	routeCmd.Flags().StringSliceVarP(&routeProducts, "product", "p", nil, "product name to pick (repeatable)")
	rootCmd.AddCommand(routeCmd)
}

func planRoute(cmd *cobra.Command, args []string) error {
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

	rng := rand.New(rand.NewSource(cfg.Simulator.Seed))
	inv := simulator.SeedInventory(g, table, rng)
	fleet := simulator.SeedFleet(cfg.Simulator.FleetSize, g)

	if len(routeProducts) == 0 {
		items := inv.Items()
		if len(items) == 0 {
			return fmt.Errorf("inventory is empty")
		}
		routeProducts = []string{items[0].Name}
	}
	order := model.Order{ID: "adhoc", Customer: "cli", Status: model.OrderPending, CreatedAt: time.Now()}
	for _, p := range routeProducts {
		order.Lines = append(order.Lines, model.OrderLine{Product: p, Quantity: 1})
	}

	engine := dispatch.NewEngine(logger.New("route-command"))
	res := engine.PlanOrder(order, g, inv, fleet.Robots())
	if res.Outcome != dispatch.OutcomePlanned {
		return fmt.Errorf("no route planned: %s", res.Outcome)
	}

	fmt.Printf("robot %s, %d steps, est. time %.0f, energy %.1f%%, score %.0f\n",
		res.RobotID, res.Metrics.TotalDistance, res.Metrics.EstimatedTime,
		res.Metrics.EnergyConsumption, res.Metrics.OptimizationScore)
	for _, step := range res.Route {
		switch step.Action {
		case model.ActionPickup:
			fmt.Printf("  %s %s x%d at %s\n", step.Action, step.Item, step.Quantity, step.Position)
		case model.ActionMove:
			// Move steps are noise at this verbosity.
		default:
			fmt.Printf("  %s at %s\n", step.Action, step.Position)
		}
	}
	return nil
}
