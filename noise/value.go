package noise

// valueFromHash maps a table hash to a scalar in [-1, 1].
func valueFromHash(h uint8) float64 {
	return float64(h)/127.5 - 1
}

// Value2 returns 2D value noise in [-1, 1]: the four corners of the
// enclosing unit cell are hashed to scalars and blended with the fade
// curve. Corners shared between cells hash identically, so the field is
// continuous across cell boundaries.
func Value2(x, y float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)

	fx := x - float64(xi)
	fy := y - float64(yi)

	u := fade(fx)
	v := fade(fy)

	a := valueFromHash(Hash2(xi, yi))
	b := valueFromHash(Hash2(xi+1, yi))
	c := valueFromHash(Hash2(xi, yi+1))
	d := valueFromHash(Hash2(xi+1, yi+1))

	return lerp(lerp(a, b, u), lerp(c, d, u), v)
}

// Value3 returns 3D value noise in [-1, 1].
func Value3(x, y, z float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	zi := fastFloor(z)

	fx := x - float64(xi)
	fy := y - float64(yi)
	fz := z - float64(zi)

	u := fade(fx)
	v := fade(fy)
	w := fade(fz)

	c000 := valueFromHash(Hash3(xi, yi, zi))
	c100 := valueFromHash(Hash3(xi+1, yi, zi))
	c010 := valueFromHash(Hash3(xi, yi+1, zi))
	c110 := valueFromHash(Hash3(xi+1, yi+1, zi))

	c001 := valueFromHash(Hash3(xi, yi, zi+1))
	c101 := valueFromHash(Hash3(xi+1, yi, zi+1))
	c011 := valueFromHash(Hash3(xi, yi+1, zi+1))
	c111 := valueFromHash(Hash3(xi+1, yi+1, zi+1))

	i1 := lerp(lerp(c000, c100, u), lerp(c010, c110, u), v)
	i2 := lerp(lerp(c001, c101, u), lerp(c011, c111, u), v)

	return lerp(i1, i2, w)
}

// Value4 returns 4D value noise in [-1, 1]. The 16 hypercube corners are
// hashed and blended with a quadrilinear fade.
func Value4(x, y, z, w float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	zi := fastFloor(z)
	wi := fastFloor(w)

	fx := x - float64(xi)
	fy := y - float64(yi)
	fz := z - float64(zi)
	fw := w - float64(wi)

	fu := fade(fx)
	fv := fade(fy)
	ft := fade(fz)
	fs := fade(fw)

	// Corner order: x fastest, then y, z, w, so each lerp level below
	// blends exactly one axis with that axis' fade weight.
	var accum [16]float64
	idx := 0
	for dw := int32(0); dw < 2; dw++ {
		for dz := int32(0); dz < 2; dz++ {
			for dy := int32(0); dy < 2; dy++ {
				for dx := int32(0); dx < 2; dx++ {
					accum[idx] = valueFromHash(Hash4(xi+dx, yi+dy, zi+dz, wi+dw))
					idx++
				}
			}
		}
	}

	i1 := lerp(
		lerp(lerp(accum[0], accum[1], fu), lerp(accum[2], accum[3], fu), fv),
		lerp(lerp(accum[4], accum[5], fu), lerp(accum[6], accum[7], fu), fv),
		ft)
	i2 := lerp(
		lerp(lerp(accum[8], accum[9], fu), lerp(accum[10], accum[11], fu), fv),
		lerp(lerp(accum[12], accum[13], fu), lerp(accum[14], accum[15], fu), fv),
		ft)

	return lerp(i1, i2, fs)
}
