package util

// Map applies a function to the given slice and returns the transformed slice.
func Map[T, R any](slice []T, f func(T) R) []R {
	mSlice := make([]R, len(slice))

	for i, elem := range slice {
		mSlice[i] = f(elem)
	}

	return mSlice
}

// CopyOf returns a freshly allocated copy of the given slice.  The copy never
// aliases the source slice's backing array.
func CopyOf[T any](slice []T) []T {
	cSlice := make([]T, len(slice))
	copy(cSlice, slice)
	return cSlice
}

// Concat returns a freshly allocated slice holding the elements of a followed
// by the elements of b.
func Concat[T any](a, b []T) []T {
	cSlice := make([]T, 0, len(a)+len(b))
	cSlice = append(cSlice, a...)
	return append(cSlice, b...)
}
