package render

import (
	"testing"

	"github.com/taigrr/roomcraft/pkg/math3d"
	"github.com/taigrr/roomcraft/pkg/scene"
)

func itemAt(id string, p math3d.Vec3) scene.Item {
	return scene.Item{ID: id, Position: p}
}

func ids(items []scene.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortBackToFront(t *testing.T) {
	eye := DefaultCameraPosition
	tests := []struct {
		name  string
		items []scene.Item
		want  []string
	}{
		{
			name: "farthest first",
			items: []scene.Item{
				itemAt("d100", math3d.V3(0, 200, 400)),
				itemAt("d200", math3d.V3(0, 200, 300)),
				itemAt("d300", math3d.V3(0, 200, 200)),
			},
			want: []string{"d300", "d200", "d100"},
		},
		{
			name: "equidistant keep order",
			items: []scene.Item{
				itemAt("a", math3d.V3(100, 200, 500)),
				itemAt("b", math3d.V3(-100, 200, 500)),
				itemAt("c", math3d.V3(0, 300, 500)),
			},
			want: []string{"a", "b", "c"},
		},
		{
			name:  "empty",
			items: nil,
			want:  []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(SortBackToFront(tc.items, eye))
			if !equalIDs(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSortBackToFrontLeavesInput(t *testing.T) {
	in := []scene.Item{
		itemAt("near", math3d.V3(0, 200, 450)),
		itemAt("far", math3d.V3(0, 200, -450)),
	}
	out := SortBackToFront(in, DefaultCameraPosition)
	if in[0].ID != "near" || in[1].ID != "far" {
		t.Errorf("input reordered to %v", ids(in))
	}
	if out[0].ID != "far" {
		t.Errorf("got %v, want far first", ids(out))
	}
}
