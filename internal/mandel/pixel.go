package mandel

// Pixel classifies one grid cell. A cell is Out if its point escapes within
// the iteration budget and In otherwise. One byte per cell keeps the buffer
// compact; the zero value is Out.
type Pixel uint8

const (
	Out Pixel = 0
	In  Pixel = 1
)
