package noise

// gradDot3 selects one of the 12 edge gradients and dots it with the
// offset vector to the corner.
func gradDot3(h uint8, dx, dy, dz float64) float64 {
	g := &grad3[int(h)%12]
	return g[0]*dx + g[1]*dy + g[2]*dz
}

// Perlin3 returns classic Perlin gradient noise. Each of the 8 corners
// of the enclosing unit cube selects one of the 12 edge gradients via
// the permutation chain, contributes the dot product of that gradient
// with the offset to the corner, and the 8 dots are blended trilinearly
// with the fade weights. A corner shared between cells hashes to the
// same gradient from either side, so the field is continuous across
// cell boundaries.
//
// The output is approximately in [-1, 1]; the edge gradients are not
// renormalized, so callers must not assume a hard clamp.
func Perlin3(x, y, z float64) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	zi := fastFloor(z)

	fx := x - float64(xi)
	fy := y - float64(yi)
	fz := z - float64(zi)

	u := fade(fx)
	v := fade(fy)
	w := fade(fz)

	// z layer.
	x1 := lerp(
		gradDot3(Hash3(xi, yi, zi), fx, fy, fz),
		gradDot3(Hash3(xi+1, yi, zi), fx-1, fy, fz), u)
	x2 := lerp(
		gradDot3(Hash3(xi, yi+1, zi), fx, fy-1, fz),
		gradDot3(Hash3(xi+1, yi+1, zi), fx-1, fy-1, fz), u)
	y1 := lerp(x1, x2, v)

	// z+1 layer.
	x3 := lerp(
		gradDot3(Hash3(xi, yi, zi+1), fx, fy, fz-1),
		gradDot3(Hash3(xi+1, yi, zi+1), fx-1, fy, fz-1), u)
	x4 := lerp(
		gradDot3(Hash3(xi, yi+1, zi+1), fx, fy-1, fz-1),
		gradDot3(Hash3(xi+1, yi+1, zi+1), fx-1, fy-1, fz-1), u)
	y2 := lerp(x3, x4, v)

	return lerp(y1, y2, w)
}
