package geo

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    orb.Point
		b    orb.Point
		want float64
	}{
		{name: "same point", a: orb.Point{0, 0}, b: orb.Point{0, 0}, want: 0},
		{name: "3-4-5 triangle", a: orb.Point{0, 0}, b: orb.Point{3, 4}, want: 5},
		{name: "axis aligned", a: orb.Point{10, 20}, b: orb.Point{10, 50}, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1e-9)
		})
	}
}

func TestWithinRadius_BoundaryInclusive(t *testing.T) {
	origin := orb.Point{0, 0}

	atBoundary := &entity.Store{ID: 1, Location: orb.Point{StoreVisibilityRadius, 0}}
	justBeyond := &entity.Store{ID: 2, Location: orb.Point{StoreVisibilityRadius + 0.0001, 0}}

	got := WithinRadius(origin, StoreVisibilityRadius, []*entity.Store{atBoundary, justBeyond})

	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestWithinRadius_PreservesInputOrder(t *testing.T) {
	origin := orb.Point{0, 0}

	stores := []*entity.Store{
		{ID: 3, Location: orb.Point{29, 0}},
		{ID: 1, Location: orb.Point{1, 1}},
		{ID: 7, Location: orb.Point{100, 100}},
		{ID: 5, Location: orb.Point{0, 10}},
	}

	got := WithinRadius(origin, StoreVisibilityRadius, stores)

	ids := make([]int64, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{3, 1, 5}, ids)
}

func TestWithinRadius_EmptyInput(t *testing.T) {
	got := WithinRadius(orb.Point{0, 0}, StoreVisibilityRadius, []*entity.Store{})
	assert.Empty(t, got)
}
