// Package ecs provides ECS adapters for bough's frame stats.
//
// The primary adapter is [NewDonburiObserver], which publishes every
// [bough.FrameStats] into a [Donburi] world as a typed event. Subscribe to
// [FrameStatsEventType] in your ECS systems to receive them.
//
// Usage:
//
//	scene.SetFrameObserver(ecs.NewDonburiObserver(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
