package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDimensions(t *testing.T) {
	tests := []struct {
		kind Kind
		want Dimensions
	}{
		{KindDiningTable, Dimensions{120, 30, 80}},
		{KindChair, Dimensions{40, 45, 40}},
		{KindSofa, Dimensions{180, 40, 80}},
		{KindCoffeeTable, Dimensions{100, 20, 60}},
		{KindBed, Dimensions{160, 30, 200}},
		{KindWardrobe, Dimensions{100, 200, 60}},
		{KindBookshelf, Dimensions{80, 180, 30}},
		{KindDesk, Dimensions{120, 75, 60}},
		{KindCabinet, Dimensions{80, 100, 40}},
		{KindLamp, Dimensions{30, 100, 30}},
	}
	require.Len(t, Kinds(), len(tests))
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Dimensions())
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"Coffee Table", "coffee-table", "COFFEE_TABLE", " coffeetable "} {
		k, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, KindCoffeeTable, k, name)
	}
	_, err := ParseKind("hammock")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFromPlan(t *testing.T) {
	tests := []struct {
		kind      Kind
		w, h      float64
		wantDepth float64
	}{
		{KindChair, 40, 40, 40},
		{KindSofa, 181, 80, 60},
		{KindBookshelf, 80, 30, 26},
		{KindBed, 160, 201, 50},
		{KindDesk, 121, 60, 60},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			it := FromPlan(tt.kind, 300, 250, tt.w, tt.h, Palette[2])
			assert.Equal(t, 50.0, it.Position.X)
			assert.Equal(t, 0.0, it.Position.Y)
			assert.Equal(t, 50.0, it.Position.Z)
			assert.Equal(t, tt.w, it.Size.Width)
			assert.Equal(t, tt.h, it.Size.Height)
			assert.Equal(t, tt.wantDepth, it.Size.Depth)
			assert.Equal(t, Palette[2], it.Color)
		})
	}
}

func TestNewItemDefaults(t *testing.T) {
	it := NewItem(KindBed, 10, -20)
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, "Bed", it.Name)
	assert.Equal(t, "wood", it.Material)
	assert.Equal(t, 0.2, it.Reflectivity)
	assert.Equal(t, 0.7, it.Roughness)
	assert.Equal(t, DefaultItemColor, it.Color)
	assert.Equal(t, 170.0, it.Max().X)
	assert.Equal(t, 180.0, it.Max().Z)
	assert.NotEqual(t, it.ID, NewItem(KindBed, 0, 0).ID)
}
