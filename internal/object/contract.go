package object

import (
	"fmt"
	"math"

	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// verticalVelocity derives vy from a speed and a horizontal velocity so that
// vx² + vy² == speed². |vx| > speed is a caller bug: debug builds panic, release
// builds clamp vx into [-speed, speed].
func verticalVelocity(speed, vx float64) (float64, float64) {
	if math.Abs(vx) > speed {
		if strictContracts {
			panic(fmt.Sprintf("object: |vx| %v exceeds speed %v", vx, speed))
		}
		vx = physics.Clamp(vx, -speed, speed)
	}
	return vx, math.Sqrt(max(0, speed*speed-vx*vx))
}
