package wfc

// topology answers "given a cell at (y, x) and an offset delta, is the
// shifted coordinate in bounds, and if so where?" Spec.md §9 mandates only
// the non-wrapping case for this release, but keeps the question behind
// this seam (mirroring the original source's WrappingType enum) so a
// toroidal topology could be added later without touching the propagator,
// selector, or solver loop.
type topology interface {
	neighbor(y, x, dy, dx, h, w int) (ny, nx int, ok bool)
}

// nonWrapping is the only topology this release implements: offsets that
// would leave [0, h) x [0, w) are simply out of bounds, never wrapped.
type nonWrapping struct{}

func (nonWrapping) neighbor(y, x, dy, dx, h, w int) (ny, nx int, ok bool) {
	ny, nx = y+dy, x+dx
	if ny < 0 || ny >= h || nx < 0 || nx >= w {
		return 0, 0, false
	}
	return ny, nx, true
}

// defaultTopology is the topology the propagator uses. Unexported: spec.md
// explicitly excludes a pluggable wrapping variant from this core's public
// contract.
var defaultTopology topology = nonWrapping{}
