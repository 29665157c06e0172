package wfc

// Pixel is the constraint satisfied by any opaque pixel value the solver can
// reason about: equality (for pattern canonicalization) and copy semantics.
// Hashing is derived from equality by the extractor, which serializes pixel
// values into map keys rather than requiring a Hash method directly.
type Pixel interface {
	comparable
}
