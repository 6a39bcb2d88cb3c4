package flagutil

// UintList is a comma separated list of unsigned integers. It satisfies the
// flag.Value interface.
type UintList []uint

// Ints returns the list converted to a slice of int.
func (ul UintList) Ints() []int {
	ints := make([]int, 0, len(ul))
	for _, value := range ul {
		ints = append(ints, int(value))
	}
	return ints
}
