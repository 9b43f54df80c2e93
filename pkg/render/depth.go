package render

import (
	"sort"

	"github.com/taigrr/roomcraft/pkg/math3d"
	"github.com/taigrr/roomcraft/pkg/scene"
)

// SortBackToFront returns a copy of items ordered by decreasing distance
// from eye, so nearer boxes are painted over farther ones. Equidistant items
// keep their input order.
func SortBackToFront(items []scene.Item, eye math3d.Vec3) []scene.Item {
	type keyed struct {
		item scene.Item
		dist float64
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		ks[i] = keyed{it, it.Position.Distance(eye)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].dist > ks[j].dist
	})
	sorted := make([]scene.Item, len(ks))
	for i, k := range ks {
		sorted[i] = k.item
	}
	return sorted
}
