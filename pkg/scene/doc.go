// Package scene defines the JSON wire format for layout inputs and plans.
//
// A [Scene] is a snapshot of placed objects exported from a host document:
// ids, bounding boxes, optional orientation sources and tag heads, plus the
// viewport basis they were captured in. A [Plan] is what the engine returns:
// moves, rotations and warnings the caller applies.
//
// # Scene Format
//
//	{
//	  "unit": "mm",
//	  "basis": {"right": [1, 0, 0], "up": [0, 1, 0]},
//	  "objects": [
//	    {"id": "door", "min": [0, 0, 0], "max": [900, 50, 2100]},
//	    {"id": "duct", "min": [0, 0, 0], "max": [10, 2, 0],
//	     "curve": {"type": "line", "start": [0, 1, 0], "end": [10, 1, 0]}}
//	  ],
//	  "tags": [{"id": "t1", "head": [450, 2200, 0]}]
//	}
//
// Objects and tags without an id get a random UUID when read. A missing
// basis means the world XY plane.
//
// # Converting
//
// [Scene.LayoutObjects], [Scene.OrientObjects] and [Scene.Anchors] produce
// the engine's input types. [ApplyPlan] applies a plan to a scene copy,
// either completely or not at all.
package scene
