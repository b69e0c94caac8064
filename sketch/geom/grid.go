package geom

// TileSize returns the square tile size for perRow tiles across region.X.
// perRow must be positive.
func TileSize(region Vector2, perRow int) Vector2 {
	r := region.X / float64(perRow)
	return Vec(r, r)
}

// GridCount returns the number of tiles BuildGrid emits along one axis: the
// count of steps i with i*tile < region - tile/2.
func GridCount(region, tile float64) int {
	if !(tile > 0) || !(region > 0) {
		return 0
	}
	limit := region - tile/2
	n := 0
	for float64(n)*tile < limit {
		n++
	}
	return n
}

// BuildGrid returns one point at the centre of every tile covering region,
// with the lattice centred inside an outer area of size outer.
//
// Points are ordered column by column (x outer, y inner). Steps are computed as
// i*tile rather than accumulated, so the count is stable for any tile size.
func BuildGrid(outer, region, tile Vector2) []Vector2 {
	nx := GridCount(region.X, tile.X)
	ny := GridCount(region.Y, tile.Y)
	if nx == 0 || ny == 0 {
		return nil
	}

	corner := outer.Sub(region).Div(2)
	center := tile.Div(2)
	points := make([]Vector2, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			local := Vec(float64(i)*tile.X, float64(j)*tile.Y)
			points = append(points, corner.Add(local).Add(center))
		}
	}
	return points
}

// Bounds returns the smallest rect containing every point.
func Bounds(points []Vector2) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return Rect{Min: min, Size: max.Sub(min)}, true
}
