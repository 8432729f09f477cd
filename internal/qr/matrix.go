package qr

// Matrix is an immutable N×N grid of QR modules.
type Matrix struct {
	size    int
	modules []bool
}

// NewMatrix copies a square bitmap indexed [y][x]. Rows shorter than the
// bitmap height are padded with light modules.
func NewMatrix(bitmap [][]bool) *Matrix {
	n := len(bitmap)
	m := &Matrix{size: n, modules: make([]bool, n*n)}
	for y, row := range bitmap {
		for x := 0; x < n && x < len(row); x++ {
			m.modules[y*n+x] = row[x]
		}
	}
	return m
}

// Size returns N, the number of modules per side.
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Dark reports whether the module at (x, y) is dark. Coordinates outside
// the symbol are light.
func (m *Matrix) Dark(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.size || y >= m.size {
		return false
	}
	return m.modules[y*m.size+x]
}

// blankMatrix is the last-resort symbol: a version 1 sized all-light grid.
func blankMatrix() *Matrix {
	return &Matrix{size: 21, modules: make([]bool, 21*21)}
}
