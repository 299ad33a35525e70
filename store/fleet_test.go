package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warebotics/waresim/core/model"
)

func testRoute() model.Route {
	return model.Route{
		{Position: model.Position{Row: 0, Col: 0}, Action: model.ActionStart},
		{Position: model.Position{Row: 0, Col: 1}, Action: model.ActionMove},
		{Position: model.Position{Row: 0, Col: 2}, Action: model.ActionPickup, Item: "Chips", Quantity: 1},
		{Position: model.Position{Row: 1, Col: 2}, Action: model.ActionMove},
		{Position: model.Position{Row: 2, Col: 2}, Action: model.ActionDeliver},
	}
}

func newTestFleet() *FleetStore {
	return NewFleetStore(
		model.Robot{ID: "rob002", Status: model.RobotIdle, Battery: 100},
		model.Robot{ID: "rob001", Status: model.RobotIdle, Battery: 100},
		model.Robot{ID: "rob003", Status: model.RobotBusy, Battery: 50},
	)
}

func TestRobotsSnapshotSortedByID(t *testing.T) {
	s := newTestFleet()
	robots := s.Robots()
	require.Len(t, robots, 3)
	assert.Equal(t, "rob001", robots[0].ID)
	assert.Equal(t, "rob002", robots[1].ID)
	assert.Equal(t, "rob003", robots[2].ID)

	// Mutating the snapshot must not touch the store.
	robots[0].Battery = 0
	got, ok := s.Get("rob001")
	require.True(t, ok)
	assert.Equal(t, 100.0, got.Battery)
}

func TestClaimIsAtomic(t *testing.T) {
	s := newTestFleet()
	require.NoError(t, s.Claim("rob001", "order-1", testRoute()))

	r, ok := s.Get("rob001")
	require.True(t, ok)
	assert.Equal(t, model.RobotBusy, r.Status)
	assert.Equal(t, "order-1", r.CurrentOrder)
	assert.Len(t, r.Route, 5)

	// Second claim on the same robot loses.
	assert.Error(t, s.Claim("rob001", "order-2", testRoute()))
	// Busy and unknown robots cannot be claimed either.
	assert.Error(t, s.Claim("rob003", "order-2", testRoute()))
	assert.Error(t, s.Claim("ghost", "order-2", testRoute()))
}

func TestClaimRaceHasOneWinner(t *testing.T) {
	s := NewFleetStore(model.Robot{ID: "rob001", Status: model.RobotIdle, Battery: 100})
	const attempts = 32
	var wg sync.WaitGroup
	wins := make(chan int, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if s.Claim("rob001", "order", testRoute()) == nil {
				wins <- n
			}
		}(i)
	}
	wg.Wait()
	close(wins)
	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent claim may win")
}

func TestAdvanceExecutesRoute(t *testing.T) {
	s := NewFleetStore(model.Robot{ID: "rob001", Status: model.RobotIdle, Battery: 100})
	require.NoError(t, s.Claim("rob001", "order-1", testRoute()))

	// Start step: position snaps, no drain, no distance.
	step, done, err := s.Advance("rob001")
	require.NoError(t, err)
	assert.Equal(t, model.ActionStart, step.Action)
	assert.False(t, done)
	r, _ := s.Get("rob001")
	assert.Equal(t, 100.0, r.Battery)
	assert.Equal(t, 0.0, r.TotalDistance)

	// Each further step drains half a percent and adds a cell.
	step, done, err = s.Advance("rob001")
	require.NoError(t, err)
	assert.Equal(t, model.ActionMove, step.Action)
	assert.False(t, done)
	r, _ = s.Get("rob001")
	assert.Equal(t, 99.5, r.Battery)
	assert.Equal(t, 1.0, r.TotalDistance)
	assert.Equal(t, model.Position{Row: 0, Col: 1}, r.Position)

	// Pickup step carries the item data through.
	step, _, err = s.Advance("rob001")
	require.NoError(t, err)
	assert.Equal(t, model.ActionPickup, step.Action)
	assert.Equal(t, "Chips", step.Item)

	_, done, err = s.Advance("rob001")
	require.NoError(t, err)
	assert.False(t, done)

	step, done, err = s.Advance("rob001")
	require.NoError(t, err)
	assert.Equal(t, model.ActionDeliver, step.Action)
	assert.True(t, done)

	r, _ = s.Get("rob001")
	assert.Equal(t, model.RobotIdle, r.Status)
	assert.Equal(t, 1, r.OrdersDone)
	assert.Empty(t, r.CurrentOrder)
	assert.Nil(t, r.Route)
	assert.Equal(t, model.Position{Row: 2, Col: 2}, r.Position)

	// Advancing an idle robot is an error.
	_, _, err = s.Advance("rob001")
	assert.Error(t, err)
	_, _, err = s.Advance("ghost")
	assert.Error(t, err)
}

func TestAdvanceParksDrainedRobotForCharging(t *testing.T) {
	s := NewFleetStore(model.Robot{ID: "rob001", Status: model.RobotIdle, Battery: 22})
	require.NoError(t, s.Claim("rob001", "order-1", testRoute()))
	for i := 0; i < len(testRoute()); i++ {
		_, _, err := s.Advance("rob001")
		require.NoError(t, err)
	}
	r, _ := s.Get("rob001")
	// 22 minus four drained cells leaves 20, at the charge threshold.
	assert.Equal(t, 20.0, r.Battery)
	assert.Equal(t, model.RobotCharging, r.Status)
}

func TestRechargeReturnsRobotToService(t *testing.T) {
	s := NewFleetStore(model.Robot{ID: "rob001", Status: model.RobotCharging, Battery: 20})
	for i := 0; i < 12; i++ {
		s.Recharge("rob001")
	}
	r, _ := s.Get("rob001")
	assert.Equal(t, model.RobotIdle, r.Status)
	assert.Equal(t, 80.0, r.Battery)

	// Recharge is a no-op for robots that are not charging.
	s.Recharge("rob001")
	r, _ = s.Get("rob001")
	assert.Equal(t, 80.0, r.Battery)
}
