package scene

import "glint/gui/geom"

// dirtyList keeps the screen regions that need repainting. Overlapping
// regions are merged; once limit regions are held, everything collapses
// into a single bounding box.
type dirtyList struct {
	bounds geom.Area
	limit  int
	areas  []geom.Area
}

func newDirtyList(bounds geom.Area, limit int) dirtyList {
	return dirtyList{bounds: bounds, limit: max(limit, 1), areas: make([]geom.Area, 0, max(limit, 1))}
}

func (d *dirtyList) add(a geom.Area) {
	a, ok := geom.Clip(a, d.bounds)
	if !ok {
		return
	}
	for merged := true; merged; {
		merged = false
		for i, b := range d.areas {
			if geom.Overlaps(a, b) {
				a = geom.Union(a, b)
				d.areas = append(d.areas[:i], d.areas[i+1:]...)
				merged = true
				break
			}
		}
	}
	if len(d.areas) >= d.limit {
		for _, b := range d.areas {
			a = geom.Union(a, b)
		}
		d.areas = d.areas[:0]
	}
	d.areas = append(d.areas, a)
}

func (d *dirtyList) reset() { d.areas = d.areas[:0] }
