package components

import "image/color"

// LightComponent 光源
type LightComponent struct {
	Radius float64
	Color  color.RGBA
}
