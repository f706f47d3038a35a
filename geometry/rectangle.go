// Package geometry provides the ring utilities used to normalize a region of
// interest before it is handed to the scene pipeline.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDegenerateRing is returned when a ring has too few distinct vertices to
// enclose any area
var ErrDegenerateRing = errors.New("ring has fewer than 3 distinct vertices")

// IsClosedRing reports whether the ring's first and last points are identical
func IsClosedRing(ring [][]float64) bool {
	if len(ring) < 2 {
		return false
	}
	first, last := ring[0], ring[len(ring)-1]
	return len(first) >= 2 && len(last) >= 2 && first[0] == last[0] && first[1] == last[1]
}

// ValidateRing checks the structural invariants of a closed ring: at least 4
// points (a closed triangle) with first == last
func ValidateRing(ring [][]float64) error {
	if len(ring) < 4 {
		return fmt.Errorf("ring has %d points, need at least 4", len(ring))
	}
	if !IsClosedRing(ring) {
		return errors.New("ring is not closed (first point != last point)")
	}
	return nil
}

// SmallestRectangle computes the minimum-area rotated rectangle enclosing the
// first ring of the given polygon. The input uses GeoJSON polygon nesting (a
// sequence of rings); the result preserves that nesting and contains a single
// closed 5-point ring (4 corners plus the closing point).
func SmallestRectangle(polygon [][][]float64) ([][][]float64, error) {
	if len(polygon) == 0 {
		return nil, errors.New("polygon has no rings")
	}
	ring := polygon[0]
	if err := ValidateRing(ring); err != nil {
		return nil, err
	}

	hull := convexHull(ring)
	if len(hull) < 3 {
		return nil, ErrDegenerateRing
	}

	corners := minAreaRect(hull)
	rect := append(corners, []float64{corners[0][0], corners[0][1]})
	return [][][]float64{rect}, nil
}

// convexHull computes the convex hull of the ring's vertices using Andrew's
// monotone chain, returned in counterclockwise order without a closing point
func convexHull(ring [][]float64) [][]float64 {
	points := make([][]float64, 0, len(ring))
	seen := map[[2]float64]bool{}
	for _, p := range ring {
		key := [2]float64{p[0], p[1]}
		if !seen[key] {
			seen[key] = true
			points = append(points, []float64{p[0], p[1]})
		}
	}
	if len(points) < 3 {
		return points
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i][0] != points[j][0] {
			return points[i][0] < points[j][0]
		}
		return points[i][1] < points[j][1]
	})

	cross := func(o, a, b []float64) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	var lower [][]float64
	for _, p := range points {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper [][]float64
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// minAreaRect finds the minimum-area enclosing rectangle of a convex hull by
// testing each hull edge as a candidate rectangle orientation
func minAreaRect(hull [][]float64) [][]float64 {
	bestArea := math.Inf(1)
	var best [][]float64

	for i := range hull {
		j := (i + 1) % len(hull)
		theta := math.Atan2(hull[j][1]-hull[i][1], hull[j][0]-hull[i][0])
		cos, sin := math.Cos(-theta), math.Sin(-theta)

		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range hull {
			x := p[0]*cos - p[1]*sin
			y := p[0]*sin + p[1]*cos
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}

		area := (maxX - minX) * (maxY - minY)
		if area < bestArea {
			bestArea = area
			// rotate the axis-aligned corners back into the source frame
			rotated := [][]float64{
				{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY},
			}
			best = make([][]float64, 4)
			for k, c := range rotated {
				best[k] = []float64{
					c[0]*cos + c[1]*sin,
					-c[0]*sin + c[1]*cos,
				}
			}
		}
	}

	return best
}
