// Package app wires the configuration into a runnable warehouse
// simulation service.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/warebotics/waresim/config"
	"github.com/warebotics/waresim/core/dispatch"
	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/infra/logger"
	"github.com/warebotics/waresim/internal/eventbus"
	"github.com/warebotics/waresim/metrics"
	"github.com/warebotics/waresim/simulator"
	"github.com/warebotics/waresim/store"
)

// Service orchestrates the simulation driver and its collaborators.
type Service struct {
	Driver    *simulator.Driver
	Grid      *grid.Grid
	Fleet     *store.FleetStore
	Inventory *store.InventoryStore

	bus      eventbus.EventBus
	sink     metrics.Sink
	log      logger.Logger
	promAddr string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	cfg.Logging.Apply()
	logg := logger.New("service")

	g, err := grid.GenerateLayout(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return nil, fmt.Errorf("generate layout: %w", err)
	}
	table, err := cfg.Demand.LoadTable()
	if err != nil {
		return nil, fmt.Errorf("demand table: %w", err)
	}
	sink, err := metrics.NewSink(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	seed := cfg.Simulator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	inventory := simulator.SeedInventory(g, table, rng)
	fleet := simulator.SeedFleet(cfg.Simulator.FleetSize, g)

	bus := eventbus.New()
	engine := dispatch.NewEngine(logger.New("dispatch"))
	driver := simulator.New(cfg.Simulator, g, fleet, inventory, engine, table, bus, sink, logger.New("simulator"))

	promAddr := ""
	if cfg.Metrics.Backend == "prometheus" || cfg.Metrics.Backend == "multi" {
		promAddr = cfg.Metrics.PromAddr
	}
	logg.Infof("warehouse ready: %dx%d grid, %d shelves, %d items, %d robots",
		g.Rows(), g.Cols(), len(g.Shelves()), len(inventory.Items()), cfg.Simulator.FleetSize)
	return &Service{
		Driver:    driver,
		Grid:      g,
		Fleet:     fleet,
		Inventory: inventory,
		bus:       bus,
		sink:      sink,
		log:       logg,
		promAddr:  promAddr,
	}, nil
}

// Run starts the simulation and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	s.Driver.Run(ctx)
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.Driver.Close()
	if s.bus != nil {
		s.bus.Close()
	}
	if closer, ok := s.sink.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}
