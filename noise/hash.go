package noise

import "sync"

// Mix32 is a PCG-style 32-bit avalanche mix. It is not cryptographic,
// but a single-bit change in the input flips about half the output bits,
// which is what keeps neighboring lattice cells uncorrelated.
func Mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Hash3D hashes three integer lattice coordinates without any table,
// by weighting each axis with a large prime and mixing the result.
func Hash3D(x, y, z int32) uint32 {
	h := uint32(x)*73856093 ^ uint32(y)*19349663 ^ uint32(z)*83492791
	return Mix32(h)
}

// Hash3DUnit maps Hash3D into [0, 1].
func Hash3DUnit(x, y, z int32) float64 {
	return float64(Hash3D(x, y, z)&0xff) * (1.0 / 255.0)
}

// Hash1 looks up a single coordinate in the permutation table.
func Hash1(x int32) uint8 {
	return perm[uint8(x)]
}

// Hash2 chains two coordinates through the permutation table.
func Hash2(x, y int32) uint8 {
	return perm[(int32(Hash1(x))+y)&255]
}

// Hash3 chains three coordinates through the permutation table.
func Hash3(x, y, z int32) uint8 {
	return perm[(int32(Hash2(x, y))+z)&255]
}

// Hash4 chains four coordinates through the permutation table.
func Hash4(x, y, z, w int32) uint8 {
	return perm[(int32(Hash3(x, y, z))+w)&255]
}

// Expanded 1024-entry table. The original implementation built this
// lazily behind a plain boolean, which is a data race on concurrent
// first use; here the build runs exactly once under sync.Once and the
// table is never written again afterwards.
const expandedSize = 1024

var (
	expandedOnce sync.Once
	perm1024     [expandedSize * 2]uint16
)

func initExpanded() {
	for i := 0; i < expandedSize; i++ {
		perm1024[i] = uint16(i)
	}

	// Fisher-Yates, driven by the same mix the hashes use so the
	// shuffle stays identical across builds.
	for i := expandedSize - 1; i > 0; i-- {
		r := Mix32(uint32(i) * 1664525)
		j := int(r % uint32(i+1))
		perm1024[i], perm1024[j] = perm1024[j], perm1024[i]
	}

	for i := 0; i < expandedSize; i++ {
		perm1024[i+expandedSize] = perm1024[i]
	}
}

// Hash3Expanded hashes three lattice coordinates through the 1024-entry
// expanded table. The larger period reduces visible tiling on fields
// that span many hundreds of cells.
func Hash3Expanded(x, y, z int32) uint32 {
	expandedOnce.Do(initExpanded)

	idx := uint32(perm1024[x&(expandedSize-1)]) +
		uint32(perm1024[y&(expandedSize-1)]) +
		uint32(perm1024[z&(expandedSize-1)])

	return uint32(perm1024[idx&(expandedSize-1)])
}
