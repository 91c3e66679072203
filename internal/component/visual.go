// internal/component/visual.go
package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-swarm-shooter/internal/utils"
)

// Trace — отладочная линия выстрела. Живёт, пока не сработает одноразовый Timer.
type Trace struct {
	From, To mgl64.Vec3
	Timer    *utils.Timer
}
