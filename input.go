package pmove

import "github.com/go-gl/mathgl/mgl32"

// Command is one tick of player input as produced by the input/network layer.
type Command struct {
	Tick uint32

	// ForwardMove and SideMove are movement axes in [-1, 1]. UpMove is the
	// vertical axis used while swimming.
	ForwardMove float32
	SideMove    float32
	UpMove      float32

	Buttons Buttons

	// ViewAngles is pitch, yaw, roll in degrees.
	ViewAngles mgl32.Vec3
}
