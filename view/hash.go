package view

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns the 64-bit FNV-1a hash of the bytes in v. It is not
// cryptographically secure. Equal Views always hash equally.
func (v View) Hash() uint64 {
	h := uint64(fnvOffset64)
	for _, c := range v.b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}
