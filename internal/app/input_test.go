package app

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/internal/placement"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolEventsIdleFrameTicks(t *testing.T) {
	events := toolEvents(frameInput{x: 3, y: 4})
	require.Len(t, events, 1)
	assert.Equal(t, placement.EventTimer, events[0].Type)
}

func TestToolEventsOrder(t *testing.T) {
	events := toolEvents(frameInput{x: 10, y: 20, moved: true, leftReleased: true, escape: true})
	require.Len(t, events, 3)
	assert.Equal(t, placement.Move(10, 20), events[0])
	assert.Equal(t, placement.Click(10, 20), events[1])
	assert.Equal(t, placement.Escape(), events[2])
}

func TestToolEventsSecondaryButton(t *testing.T) {
	events := toolEvents(frameInput{x: 1, y: 2, rightPressed: true})
	require.Len(t, events, 1)
	assert.Equal(t, placement.EventPress, events[0].Type)
	assert.Equal(t, placement.ButtonSecondary, events[0].Button)
	assert.Equal(t, 1.0, events[0].X)
}

func TestRaylibConversion(t *testing.T) {
	v := geometry.NewVector3(1, 2, 3)
	r := toRaylib(v)
	assert.Equal(t, rl.Vector3{X: 1, Y: 3, Z: -2}, r)
	assert.Equal(t, v, fromRaylib(r))

	// A ray looking down in raylib looks down -Z in the scene
	ray := toRay(rl.Ray{Position: rl.Vector3{Y: 10}, Direction: rl.Vector3{Y: -1}})
	assert.Equal(t, geometry.NewVector3(0, 0, 10), ray.Origin)
	assert.Equal(t, geometry.NewVector3(0, 0, -1), ray.Direction)
}
