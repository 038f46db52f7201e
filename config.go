package birdhouse

import (
	"fmt"

	"github.com/soypat/birdhouse/tab"
)

// Config holds every numeric parameter of the generated birdhouse, in
// millimeters. It is built once at process start and passed by value;
// nothing mutates it afterwards.
type Config struct {
	// WallThickness is the sheet material thickness. Connector depth
	// equals it so tabs end flush with the mating panel's far face.
	WallThickness float64
	Width         float64 // outer width of the house body
	Depth         float64 // outer depth of the house body
	Height        float64 // total height including the gable
	SpaceTop      float64 // clearance above the nesting space
	SpaceBottom   float64 // clearance below the nesting space

	// Connector geometry shared by all tabbed joints.
	ConnectorWidth float64 // connector width along the edge
	ConnectorPitch float64 // spacing used to derive connector count
	ConnectorInset float64 // margin kept clear at edge ends

	RoofOverhang float64 // roof eave past the gable walls
	NotchRadius  float64 // finger notch on the slide-out floor
}

// DefaultConfig returns the parameter set of the original birdhouse.
func DefaultConfig() Config {
	const wall = 4.0
	return Config{
		WallThickness:  wall,
		Width:          60,
		Depth:          60,
		Height:         160,
		SpaceTop:       40,
		SpaceBottom:    35,
		ConnectorWidth: wall,
		ConnectorPitch: 2 * wall,
		ConnectorInset: wall,
		RoofOverhang:   6,
		NotchRadius:    8,
	}
}

func (c Config) validate() error {
	switch {
	case c.WallThickness <= 0:
		return fmt.Errorf("config: wall thickness %g must be positive", c.WallThickness)
	case c.Width <= 0 || c.Depth <= 0 || c.Height <= 0:
		return fmt.Errorf("config: plate dimensions %gx%gx%g must be positive", c.Width, c.Depth, c.Height)
	case c.SpaceBottom < 0 || c.SpaceTop < 0:
		return fmt.Errorf("config: negative nesting clearance")
	case c.Height-c.SpaceBottom <= c.Width/2:
		return fmt.Errorf("config: height %g leaves no wall below the gable", c.Height)
	case c.ConnectorWidth <= 0 || c.ConnectorPitch <= 0 || c.ConnectorInset < 0:
		return fmt.Errorf("config: bad connector geometry w=%g p=%g i=%g",
			c.ConnectorWidth, c.ConnectorPitch, c.ConnectorInset)
	case c.NotchRadius < 0 || c.RoofOverhang < 0:
		return fmt.Errorf("config: negative notch radius or roof overhang")
	}
	return nil
}

// gableHeights returns the front/back plate heights at the sides and at
// the ridge. With the defaults: 95mm walls and a 125mm ridge.
func (c Config) gableHeights() (side, ridge float64) {
	ridge = c.Height - c.SpaceBottom
	side = ridge - c.Width/2
	return side, ridge
}

// wallSpec is the connector spec of the vertical wall joints between the
// gable plates and the side plates.
func (c Config) wallSpec(p tab.Polarity) tab.Spec {
	return tab.Spec{
		Pitch:    c.ConnectorPitch,
		Width:    c.ConnectorWidth,
		Depth:    c.WallThickness,
		Inset:    c.ConnectorInset,
		Polarity: p,
	}
}

// ridgeSpec is the finger joint along the roof ridge.
func (c Config) ridgeSpec(p tab.Polarity) tab.Spec {
	return tab.Spec{
		Count:    3,
		Width:    3 * c.ConnectorWidth,
		Depth:    c.WallThickness,
		Inset:    c.ConnectorInset,
		Polarity: p,
	}
}
