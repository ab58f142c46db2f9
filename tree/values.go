/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tree

import "fmt"

// Vector3 is the value held by a Vector3Value node.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) String() string {
	return fmt.Sprintf("%g, %g, %g", v.X, v.Y, v.Z)
}

// Color3 is the value held by a Color3Value node. Components are in [0, 1].
type Color3 struct {
	R, G, B float64
}

// Color3FromRGB builds a Color3 from 0-255 channel values.
func Color3FromRGB(r, g, b uint8) Color3 {
	return Color3{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func (c Color3) String() string {
	return fmt.Sprintf("%g, %g, %g", c.R, c.G, c.B)
}
