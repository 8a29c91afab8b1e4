package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/bough"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiObserver(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiObserver(world) == nil {
		t.Fatal("NewDonburiObserver returned nil")
	}
}

func TestDonburiObserver_Publishes(t *testing.T) {
	world := donburi.NewWorld()
	obs := NewDonburiObserver(world)

	var received []bough.FrameStats
	FrameStatsEventType.Subscribe(world, func(w donburi.World, e bough.FrameStats) {
		received = append(received, e)
	})

	obs.ObserveFrame(bough.FrameStats{Frame: 1, Camera: 0, DrawCalls: 12, BlendChanges: 3, Elapsed: time.Millisecond})
	obs.ObserveFrame(bough.FrameStats{Frame: 1, Camera: 1, DrawCalls: 4})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	FrameStatsEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.DrawCalls != 12 || e.BlendChanges != 3 || e.Camera != 0 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Camera != 1 || e.DrawCalls != 4 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiObserver_ImplementsFrameObserver(t *testing.T) {
	world := donburi.NewWorld()
	var obs bough.FrameObserver = NewDonburiObserver(world)
	_ = obs
}

func TestDonburiObserver_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	obs := NewDonburiObserver(world)

	var count1, count2 int
	FrameStatsEventType.Subscribe(world, func(w donburi.World, e bough.FrameStats) {
		count1++
	})
	FrameStatsEventType.Subscribe(world, func(w donburi.World, e bough.FrameStats) {
		count2++
	})

	obs.ObserveFrame(bough.FrameStats{Frame: 7})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
