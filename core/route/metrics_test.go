package route

import (
	"testing"

	"github.com/warebotics/waresim/core/model"
)

func TestComputeMetricsDerivesFromLength(t *testing.T) {
	r := make(model.Route, 20)
	m := ComputeMetrics(r)
	if m.TotalDistance != 20 {
		t.Errorf("distance %d", m.TotalDistance)
	}
	if m.EstimatedTime != 40 {
		t.Errorf("time %v, want 2 per cell", m.EstimatedTime)
	}
	if m.EnergyConsumption != 10 {
		t.Errorf("energy %v, want 0.5 per cell", m.EnergyConsumption)
	}
	if m.OptimizationScore != 60 {
		t.Errorf("score %v", m.OptimizationScore)
	}
}

func TestComputeMetricsScoreFloorsAtZero(t *testing.T) {
	r := make(model.Route, 60)
	if m := ComputeMetrics(r); m.OptimizationScore != 0 {
		t.Fatalf("score %v, want floor 0", m.OptimizationScore)
	}
}

func TestComputeMetricsEmptyRoute(t *testing.T) {
	m := ComputeMetrics(nil)
	if m.TotalDistance != 0 || m.EstimatedTime != 0 || m.EnergyConsumption != 0 {
		t.Fatalf("empty route metrics %+v", m)
	}
	if m.OptimizationScore != 100 {
		t.Fatalf("empty route score %v, want 100", m.OptimizationScore)
	}
}
