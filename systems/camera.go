package systems

import (
	"math"

	"github.com/automoto/cryptofighters/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera recomputes the shake offset. Arenas fit the screen, so the
// camera never scrolls.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Offset.X, camera.Offset.Y = 0, 0

	updateScreenShake(cameraEntry, camera)
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Offset.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Offset.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}

// cameraOffset is the current shake offset, zero when there is no camera.
func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	c := components.Camera.Get(cameraEntry)
	return c.Offset.X, c.Offset.Y
}
