package handle

// Elem constrains handle element types to pointer-free scalars. Storage
// blocks are raw byte runs, invisible to the garbage collector's pointer
// scan, so pointer-carrying element types cannot be stored safely.
type Elem interface {
	~bool |
		~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~int | ~uint | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}
