package ecs

import (
	"github.com/phanxgames/bough"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FrameStatsEventType is the Donburi event type for per-camera frame stats.
var FrameStatsEventType = events.NewEventType[bough.FrameStats]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates a FrameObserver backed by a Donburi world.
// Stats are queued on FrameStatsEventType and delivered by ProcessEvents.
func NewDonburiObserver(world donburi.World) bough.FrameObserver {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) ObserveFrame(stats bough.FrameStats) {
	FrameStatsEventType.Publish(o.world, stats)
}
