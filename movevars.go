package pmove

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/strafesim/pmove/serror"
)

// MoveVars is the table of simulation constants shared by every entity on a
// server. It is loaded once and treated as read-only during simulation; all
// participants simulating the same entity must use identical values.
type MoveVars struct {
	Gravity         float32 `toml:"gravity"`
	StopSpeed       float32 `toml:"stop_speed"`
	MaxSpeed        float32 `toml:"max_speed"`
	Accelerate      float32 `toml:"accelerate"`
	AirAccelerate   float32 `toml:"air_accelerate"`
	WaterAccelerate float32 `toml:"water_accelerate"`
	Friction        float32 `toml:"friction"`
	EdgeFriction    float32 `toml:"edge_friction"`
	WaterFriction   float32 `toml:"water_friction"`
	EntGravity      float32 `toml:"ent_gravity"`
	Bounce          float32 `toml:"bounce"`
	StepSize        float32 `toml:"step_size"`
	MaxVelocity     float32 `toml:"max_velocity"`

	// JumpSpeed is sqrt(2 * gravity * jumpHeight) for a 45 unit jump.
	JumpSpeed float32 `toml:"jump_speed"`
	// AirSpeedCap is the wish speed ceiling applied during air acceleration.
	// This single constant governs how much speed air strafing can gain per
	// tick, which makes it the most gameplay sensitive value in the table.
	AirSpeedCap float32 `toml:"air_speed_cap"`
}

// DefaultMoveVars returns the stock movement table.
func DefaultMoveVars() *MoveVars {
	return &MoveVars{
		Gravity:         800.0,
		StopSpeed:       100.0,
		MaxSpeed:        320.0,
		Accelerate:      10.0,
		AirAccelerate:   10.0,
		WaterAccelerate: 10.0,
		Friction:        4.0,
		EdgeFriction:    2.0,
		WaterFriction:   1.0,
		EntGravity:      1.0,
		Bounce:          1.0,
		StepSize:        18.0,
		MaxVelocity:     2000.0,
		JumpSpeed:       268.3281572999748,
		AirSpeedCap:     30.0,
	}
}

// LoadMoveVars reads a movement table from the TOML file at the given path.
// Fields missing from the file keep their default values.
func LoadMoveVars(path string) (*MoveVars, error) {
	vars := DefaultMoveVars()
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, serror.New("read movevars: %v", err)
	}
	if err := toml.Unmarshal(dat, vars); err != nil {
		return nil, serror.New("decode movevars: %v", err)
	}
	if err := vars.Validate(); err != nil {
		return nil, err
	}
	return vars, nil
}

// Save writes the movement table to the TOML file at the given path.
func (v *MoveVars) Save(path string) error {
	dat, err := toml.Marshal(*v)
	if err != nil {
		return serror.New("encode movevars: %v", err)
	}
	if err := os.WriteFile(path, dat, 0644); err != nil {
		return serror.New("write movevars: %v", err)
	}
	return nil
}

// Validate rejects tables that would make the simulation degenerate.
func (v *MoveVars) Validate() error {
	if v.MaxSpeed <= 0 {
		return serror.New("movevars: max_speed must be positive, got %v", v.MaxSpeed)
	}
	if v.MaxVelocity <= 0 {
		return serror.New("movevars: max_velocity must be positive, got %v", v.MaxVelocity)
	}
	if v.StepSize < 0 {
		return serror.New("movevars: step_size must not be negative, got %v", v.StepSize)
	}
	return nil
}
