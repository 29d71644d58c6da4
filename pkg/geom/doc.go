// Package geom provides the vector, box and basis types shared by the layout
// and orientation engines.
//
// 3D points and directions are [mgl64.Vec3] values. A [Basis] holds the two
// in-plane axes of a viewport (right and up); projecting onto it turns world
// coordinates into the 2D coordinates every alignment operation works in.
//
// # Projection
//
//	b, err := geom.NewBasis(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
//	if err != nil {
//	    return err
//	}
//	box := geom.Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 1, 0}}
//	iv := box.Project(b.Right) // Interval{Min: 0, Max: 2}
//	p := b.Project(box.Center()) // Vec2{X: 1, Y: 0.5}
//
// All types are plain values; none of them hold references to shared state.
package geom
