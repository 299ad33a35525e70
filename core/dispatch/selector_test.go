package dispatch

import (
	"math"
	"testing"

	"github.com/warebotics/waresim/core/model"
)

func TestEligible(t *testing.T) {
	s := NewSelector()
	cases := []struct {
		name  string
		robot model.Robot
		want  bool
	}{
		{"idle full battery", model.Robot{Status: model.RobotIdle, Battery: 100}, true},
		{"idle just above threshold", model.Robot{Status: model.RobotIdle, Battery: 20.5}, true},
		{"idle at threshold", model.Robot{Status: model.RobotIdle, Battery: 20}, false},
		{"idle below threshold", model.Robot{Status: model.RobotIdle, Battery: 5}, false},
		{"busy", model.Robot{Status: model.RobotBusy, Battery: 100}, false},
		{"charging", model.Robot{Status: model.RobotCharging, Battery: 100}, false},
		{"maintenance", model.Robot{Status: model.RobotMaintenance, Battery: 100}, false},
	}
	for _, c := range cases {
		if got := s.Eligible(c.robot); got != c.want {
			t.Errorf("%s: eligible = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestScoreWeighting(t *testing.T) {
	s := NewSelector()
	target := model.Position{Row: 0, Col: 2}
	r := model.Robot{
		Position:      model.Position{Row: 0, Col: 0},
		Battery:       90,
		OrdersDone:    4,
		TotalDistance: 80,
	}
	// 0.4/(2+1) + 0.4*0.9 + 0.2*(4/80)
	want := 0.4/3 + 0.36 + 0.01
	if got := s.Score(r, target); math.Abs(got-want) > 1e-9 {
		t.Fatalf("score %v, want %v", got, want)
	}
}

func TestSelectPrefersProximityAndBattery(t *testing.T) {
	s := NewSelector()
	target := model.Position{Row: 0, Col: 2}
	// robA is one cell further away but has far more battery; its combined
	// score (0.4/3 + 0.36 = 0.493) beats robB's (0.4/2 + 0.1 = 0.3).
	robA := model.Robot{ID: "robA", Status: model.RobotIdle, Battery: 90, Position: model.Position{Row: 0, Col: 0}}
	robB := model.Robot{ID: "robB", Status: model.RobotIdle, Battery: 25, Position: model.Position{Row: 0, Col: 1}}
	got, ok := s.Select([]model.Robot{robA, robB}, target)
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.ID != "robA" {
		t.Fatalf("selected %s, want robA", got.ID)
	}
}

func TestSelectSkipsIneligible(t *testing.T) {
	s := NewSelector()
	target := model.Position{Row: 0, Col: 0}
	// The best-scoring robot is busy; selection must fall through to the
	// eligible one.
	busy := model.Robot{ID: "busy", Status: model.RobotBusy, Battery: 100, Position: target}
	idle := model.Robot{ID: "idle", Status: model.RobotIdle, Battery: 50, Position: model.Position{Row: 5, Col: 5}}
	got, ok := s.Select([]model.Robot{busy, idle}, target)
	if !ok || got.ID != "idle" {
		t.Fatalf("got %v ok=%v, want idle", got.ID, ok)
	}

	if _, ok := s.Select([]model.Robot{busy}, target); ok {
		t.Fatal("expected no selection from an all-busy fleet")
	}
	if _, ok := s.Select(nil, target); ok {
		t.Fatal("expected no selection from an empty fleet")
	}
}

func TestSelectTiesGoToFirstCandidate(t *testing.T) {
	s := NewSelector()
	target := model.Position{Row: 0, Col: 0}
	// Identical robots except for ID: the earlier candidate wins, which
	// is ascending ID order when callers use the fleet store snapshot.
	rob1 := model.Robot{ID: "rob001", Status: model.RobotIdle, Battery: 80, Position: model.Position{Row: 1, Col: 0}}
	rob2 := model.Robot{ID: "rob002", Status: model.RobotIdle, Battery: 80, Position: model.Position{Row: 0, Col: 1}}
	for i := 0; i < 5; i++ {
		got, ok := s.Select([]model.Robot{rob1, rob2}, target)
		if !ok || got.ID != "rob001" {
			t.Fatalf("run %d: selected %s, want rob001", i, got.ID)
		}
	}
}
