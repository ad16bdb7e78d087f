package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	tbl := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want, delta            float64
	}{
		{"same point", -23.5505, -46.6333, -23.5505, -46.6333, 0, 1e-9},
		{"sao paulo to rio", -23.5505, -46.6333, -22.9068, -43.1729, 360.75, 0.5},
		{"one degree of latitude", 0, 0, 1, 0, 111.19, 0.05},
		{"antipodal", 0, 0, 0, 180, math.Pi * EarthRadiusKm, 0.01},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Haversine(tt.lat1, tt.lng1, tt.lat2, tt.lng2), tt.delta)
		})
	}
}

func TestBoundingBox(t *testing.T) {
	t.Run("equator", func(t *testing.T) {
		b := BoundingBox(0, 111000)
		assert.InDelta(t, 1.0, b.LatDelta, 1e-9)
		assert.InDelta(t, 1.0, b.LngDelta, 1e-9)
	})

	t.Run("longitude widens with latitude", func(t *testing.T) {
		b := BoundingBox(60, 5000)
		assert.InDelta(t, 5000.0/111000, b.LatDelta, 1e-12)
		assert.InDelta(t, 2*b.LatDelta, b.LngDelta, 1e-6)
		assert.Greater(t, b.LngDelta, 2*b.LatDelta)
	})

	t.Run("pole", func(t *testing.T) {
		b := BoundingBox(90, 5000)
		assert.Equal(t, 180.0, b.LngDelta)
	})

	t.Run("circle reaching a pole", func(t *testing.T) {
		assert.Equal(t, 180.0, BoundingBox(89.8, 50000).LngDelta)
		assert.Equal(t, 180.0, BoundingBox(-89.8, 50000).LngDelta)
		assert.Less(t, BoundingBox(89.0, 50000).LngDelta, 180.0)
	})

	t.Run("across antimeridian", func(t *testing.T) {
		b := BoundingBox(-16.5, 5000)
		assert.True(t, b.Contains(-16.5, 179.99, -16.5, -179.995))
		assert.True(t, b.Contains(-16.5, -179.99, -16.5, 179.995))
		assert.False(t, b.Contains(-16.5, 179.99, -16.5, -179.0))
	})
}

func TestLngRanges(t *testing.T) {
	tbl := []struct {
		name          string
		center, delta float64
		want          [][2]float64
	}{
		{"inside", -46.6, 0.5, [][2]float64{{-47.1, -46.1}}},
		{"crosses east", 179.9, 0.2, [][2]float64{{179.7, 180}, {-180, -179.9}}},
		{"crosses west", -179.9, 0.2, [][2]float64{{179.9, 180}, {-180, -179.7}}},
		{"full circle", 10, 180, [][2]float64{{-180, 180}}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			res := LngRanges(tt.center, tt.delta)
			assert.Len(t, res, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i][0], res[i][0], 1e-9)
				assert.InDelta(t, tt.want[i][1], res[i][1], 1e-9)
			}
		})
	}
}

// destination returns the point at distance km and bearing deg from (lat, lng)
func destination(lat, lng, km, bearing float64) (float64, float64) {
	d := km / EarthRadiusKm
	br := deg2rad(bearing)
	la := deg2rad(lat)
	lo := deg2rad(lng)
	la2 := math.Asin(math.Sin(la)*math.Cos(d) + math.Cos(la)*math.Sin(d)*math.Cos(br))
	lo2 := lo + math.Atan2(math.Sin(br)*math.Sin(d)*math.Cos(la), math.Cos(d)-math.Sin(la)*math.Sin(la2))
	return la2 * 180 / math.Pi, lo2 * 180 / math.Pi
}

func TestBoundingBox_SupersetOfCircle(t *testing.T) {
	centers := [][2]float64{{-23.5505, -46.6333}, {0, 0}, {-30.0346, -51.2177}, {45, 10},
		{-16.5, 179.99}, {70, -179.9}, {88, -120}, {-87.5, 60}}
	radii := []float64{500, 5000, 25000, 50000}

	for _, c := range centers {
		for _, r := range radii {
			box := BoundingBox(c[0], r)
			for bearing := 0.0; bearing < 360; bearing += 7.5 {
				lat, lng := destination(c[0], c[1], r/1000, bearing)
				assert.True(t, box.Contains(c[0], c[1], lat, lng),
					"center %v radius %v bearing %v point (%v,%v) outside box", c, r, bearing, lat, lng)
			}
		}
	}
}

func TestBoundingBox_HighLatitudeCircle(t *testing.T) {
	const r = 50000.0
	box := BoundingBox(88, r)
	for i := 0; i < 3600; i++ {
		lat, lng := destination(88, 0, 0.999*r/1000, float64(i)/10)
		assert.True(t, box.Contains(88, 0, lat, lng), "bearing %v point (%v,%v) outside box", float64(i)/10, lat, lng)
	}
}
