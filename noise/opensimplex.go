package noise

// Simplex-lattice gradient noise in the two usual OpenSimplex2 flavors:
//
//   - Fast: the minimal corner set, 3 corners in 2D and 4 in 3D, with a
//     wider falloff kernel in 3D. Cheapest gradient noise here with no
//     visible grid alignment.
//   - Smooth: one extra corner with a tighter falloff kernel. More
//     isotropic, more hash and gradient work per sample.
//
// Both variants share the same skew transform and the same lattice
// hashing, so Fast and Smooth sample the same underlying grid but
// weight it differently; they intentionally produce different values
// for the same input.

// Skew/unskew factor pairs mapping the cubic grid onto the simplex
// lattice and back. The 2D pair is the classic (sqrt(3)-1)/2 stretch
// and (3-sqrt(3))/6 unstretch; 1/3 and 1/6 are the matching 3D pair.
// Skew and unskew must be mutual inverses: deriving corner offsets with
// anything but the inverse factor walks the offsets out of the cell.
const (
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
	s2 = 0.36602540378443864676
	u2 = 0.21132486540518711774
)

// Squared falloff radii for the attenuation kernels. A corner's kernel
// must reach zero before the corner can leave the evaluated set, or the
// field jumps at cell boundaries. 0.5 is the swap distance of the
// simplex lattice; the Fast 3D kernel runs slightly wider, leaving a
// residual below 1e-2 after attenuation.
const (
	radiusFast3   = 0.6
	radiusSmooth3 = 0.5
	radius2       = 0.5
)

// openSimplex3 evaluates the shared 3D pipeline for the given corner
// count and falloff radius.
func openSimplex3(x, y, z float64, corners int, radius float64) float64 {
	// Skew onto the lattice.
	s := (x + y + z) * f3
	xi := fastFloor(x + s)
	yi := fastFloor(y + s)
	zi := fastFloor(z + s)

	// Unskew the base cell origin and get the offset to it.
	t := float64(xi+yi+zi) * g3
	x0 := x - (float64(xi) - t)
	y0 := y - (float64(yi) - t)
	z0 := z - (float64(zi) - t)

	// Rank the fractional components; the ranks are a permutation of
	// {0, 1, 2} with ties broken toward the earlier axis.
	rx := int32(0)
	ry := int32(0)
	if x0 >= y0 {
		rx++
	} else {
		ry++
	}
	if x0 >= z0 {
		rx++
	}
	if y0 >= z0 {
		ry++
	}
	rz := 3 - (rx + ry)

	// Simplex traversal: base, a step along the steepest axis, the two
	// steepest axes, then the far corner. The Smooth extra corner is the
	// single step along the second-ranked axis.
	corner := [5][3]int32{
		{0, 0, 0},
		{b2i(rx == 2), b2i(ry == 2), b2i(rz == 2)},
		{b2i(rx >= 1), b2i(ry >= 1), b2i(rz >= 1)},
		{1, 1, 1},
		{b2i(rx == 1), b2i(ry == 1), b2i(rz == 1)},
	}

	var value float64
	for c := 0; c < corners; c++ {
		dx := corner[c][0]
		dy := corner[c][1]
		dz := corner[c][2]

		// Unskewed displacement from the sample to the corner.
		g := g3 * float64(dx+dy+dz)
		px := x0 - float64(dx) + g
		py := y0 - float64(dy) + g
		pz := z0 - float64(dz) + g

		attn := radius - (px*px + py*py + pz*pz)
		if attn <= 0 {
			continue
		}

		dot := gradDot3(Hash3(xi+dx, yi+dy, zi+dz), px, py, pz)
		attn *= attn
		value += attn * attn * dot
	}

	return value * scale3
}

// openSimplex2 evaluates the shared 2D pipeline for the given corner
// count.
func openSimplex2(x, y float64, corners int) float64 {
	// Stretch onto the simplex grid.
	s := (x + y) * s2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	// Unskew the base cell origin and get the offset to it.
	t := float64(i+j) * u2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Base, a step along the steeper axis, the far corner; Smooth adds
	// the step along the other axis.
	var corner [4][2]int32
	if x0 >= y0 {
		corner[1] = [2]int32{1, 0}
		corner[3] = [2]int32{0, 1}
	} else {
		corner[1] = [2]int32{0, 1}
		corner[3] = [2]int32{1, 0}
	}
	corner[2] = [2]int32{1, 1}

	var value float64
	for c := 0; c < corners; c++ {
		di := corner[c][0]
		dj := corner[c][1]

		// Unskewed displacement from the sample to the corner.
		u := u2 * float64(di+dj)
		dx := x0 - float64(di) + u
		dy := y0 - float64(dj) + u

		attn := radius2 - dx*dx - dy*dy
		if attn <= 0 {
			continue
		}

		g := &grad2[Hash2(i+di, j+dj)&7]
		dot := g[0]*dx + g[1]*dy

		attn *= attn
		value += attn * attn * dot
	}

	return value * scale2
}

// OpenSimplex2Fast2 returns the fast 2D variant (3 corners),
// approximately in [-1, 1].
func OpenSimplex2Fast2(x, y float64) float64 {
	return openSimplex2(x, y, 3)
}

// OpenSimplex2Smooth2 returns the smooth 2D variant (4 corners),
// approximately in [-1, 1].
func OpenSimplex2Smooth2(x, y float64) float64 {
	return openSimplex2(x, y, 4)
}

// OpenSimplex2Fast3 returns the fast 3D variant (4 corners),
// approximately in [-1, 1].
func OpenSimplex2Fast3(x, y, z float64) float64 {
	return openSimplex3(x, y, z, 4, radiusFast3)
}

// OpenSimplex2Smooth3 returns the smooth 3D variant (5 corners, tighter
// kernel), approximately in [-1, 1].
func OpenSimplex2Smooth3(x, y, z float64) float64 {
	return openSimplex3(x, y, z, 5, radiusSmooth3)
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
