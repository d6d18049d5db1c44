package boundary

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector stores quantities located at the boundary points of an immersed
// body: forces, velocities, coordinates. Each point carries an X and a Y
// value. X values occupy [0, n) of the buffer and Y values [n, 2n).
type Vector struct {
	numPoints int
	data      []float64
}

// New allocates a zero vector for a body with n boundary points.
func New(n int) *Vector {
	if n <= 0 {
		panic(fmt.Sprintf("invalid number of boundary points: %d", n))
	}
	return &Vector{
		numPoints: n,
		data:      make([]float64, XY*n),
	}
}

// FromData builds a vector with n points from the first 2n values of data.
// The values are copied.
func FromData(n int, data []float64) (*Vector, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNumPoints, n)
	}
	if data == nil {
		return nil, ErrNilData
	}
	if len(data) < XY*n {
		return nil, fmt.Errorf("%w: need %d values, got %d", ErrSizeMismatch, XY*n, len(data))
	}
	f := New(n)
	copy(f.data, data[:XY*n])
	return f, nil
}

// Clone returns a deep copy of f.
func (f *Vector) Clone() *Vector {
	g := &Vector{
		numPoints: f.numPoints,
		data:      make([]float64, len(f.data)),
	}
	copy(g.data, f.data)
	return g
}

// NumPoints returns the number of boundary points.
func (f *Vector) NumPoints() int { return f.numPoints }

// Size returns the number of elements, twice the number of points.
func (f *Vector) Size() int { return XY * f.numPoints }

func (f *Vector) checkDir(dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %d, must be X or Y", ErrDirection, int(dir))
	}
	return nil
}

func (f *Vector) checkSize(g *Vector) error {
	if g.numPoints != f.numPoints {
		return fmt.Errorf("%w: %d and %d", ErrSizeMismatch, f.numPoints, g.numPoints)
	}
	return nil
}

// Index returns the flat index of the value in direction dir at point i.
func (f *Vector) Index(dir Direction, i int) (int, error) {
	if err := f.checkDir(dir); err != nil {
		return 0, err
	}
	if i < 0 || i >= f.numPoints {
		return 0, fmt.Errorf("%w: point %d, must be between 0 and %d", ErrIndexOutOfRange, i, f.numPoints-1)
	}
	return int(dir)*f.numPoints + i, nil
}

// At returns the value in direction dir at point i.
func (f *Vector) At(dir Direction, i int) (float64, error) {
	ind, err := f.Index(dir, i)
	if err != nil {
		return 0.0, err
	}
	return f.data[ind], nil
}

func (f *Vector) Set(dir Direction, i int, v float64) error {
	ind, err := f.Index(dir, i)
	if err != nil {
		return err
	}
	f.data[ind] = v
	return nil
}

func (f *Vector) checkIndex(ind int) error {
	if ind < 0 || ind >= len(f.data) {
		return fmt.Errorf("%w: index %d, must be between 0 and %d", ErrIndexOutOfRange, ind, len(f.data)-1)
	}
	return nil
}

// AtIndex returns the value at flat index ind.
func (f *Vector) AtIndex(ind int) (float64, error) {
	if err := f.checkIndex(ind); err != nil {
		return 0.0, err
	}
	return f.data[ind], nil
}

func (f *Vector) SetIndex(ind int, v float64) error {
	if err := f.checkIndex(ind); err != nil {
		return err
	}
	f.data[ind] = v
	return nil
}

// Point returns both components at point i.
func (f *Vector) Point(i int) (float64, float64, error) {
	if i < 0 || i >= f.numPoints {
		return 0.0, 0.0, fmt.Errorf("%w: point %d, must be between 0 and %d", ErrIndexOutOfRange, i, f.numPoints-1)
	}
	return f.data[i], f.data[f.numPoints+i], nil
}

func (f *Vector) SetPoint(i int, x, y float64) error {
	if i < 0 || i >= f.numPoints {
		return fmt.Errorf("%w: point %d, must be between 0 and %d", ErrIndexOutOfRange, i, f.numPoints-1)
	}
	f.data[i] = x
	f.data[f.numPoints+i] = y
	return nil
}

// Begin returns the flat index of the first element.
func (f *Vector) Begin() int { return 0 }

// End returns the flat index one past the last element.
func (f *Vector) End() int { return XY * f.numPoints }

// BeginDir returns the flat index of the first element in direction dir.
func (f *Vector) BeginDir(dir Direction) (int, error) {
	if err := f.checkDir(dir); err != nil {
		return 0, err
	}
	return int(dir) * f.numPoints, nil
}

// EndDir returns the flat index one past the last element in direction dir.
func (f *Vector) EndDir(dir Direction) (int, error) {
	if err := f.checkDir(dir); err != nil {
		return 0, err
	}
	return (int(dir) + 1) * f.numPoints, nil
}

// Flatten returns the backing buffer without copying. Writes through the
// slice change f. Do not keep it after f is discarded.
func (f *Vector) Flatten() []float64 { return f.data }

// Dot returns the inner product of f and g.
func (f *Vector) Dot(g *Vector) (float64, error) { return InnerProduct(f, g) }

// Print writes the contents of f to w, for debugging.
func (f *Vector) Print(w io.Writer) error {
	_, err := io.WriteString(w, f.String()+"\n")
	return err
}

func (f *Vector) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%d points)\n", f.numPoints)
	for d := X; d <= Y; d++ {
		fmt.Fprintf(&sb, "%s: %v", d, f.data[int(d)*f.numPoints:(int(d)+1)*f.numPoints])
		if d == X {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Assign copies the values of g into f. Both must have the same number of
// points.
func (f *Vector) Assign(g *Vector) error {
	if err := f.checkSize(g); err != nil {
		return err
	}
	copy(f.data, g.data)
	return nil
}

// Fill sets every element to a.
func (f *Vector) Fill(a float64) {
	for i := range f.data {
		f.data[i] = a
	}
}

// AddInPlace computes f += g.
func (f *Vector) AddInPlace(g *Vector) error {
	if err := f.checkSize(g); err != nil {
		return err
	}
	floats.Add(f.data, g.data)
	return nil
}

// SubInPlace computes f -= g.
func (f *Vector) SubInPlace(g *Vector) error {
	if err := f.checkSize(g); err != nil {
		return err
	}
	floats.Sub(f.data, g.data)
	return nil
}

// ScaleInPlace computes f *= a.
func (f *Vector) ScaleInPlace(a float64) {
	floats.Scale(a, f.data)
}

// DivInPlace computes f /= a. Division by zero is not checked.
func (f *Vector) DivInPlace(a float64) {
	for i := range f.data {
		f.data[i] /= a
	}
}

// Add returns f + g.
func (f *Vector) Add(g *Vector) (*Vector, error) {
	h := f.Clone()
	if err := h.AddInPlace(g); err != nil {
		return nil, err
	}
	return h, nil
}

// Sub returns f - g.
func (f *Vector) Sub(g *Vector) (*Vector, error) {
	h := f.Clone()
	if err := h.SubInPlace(g); err != nil {
		return nil, err
	}
	return h, nil
}

// Scale returns f * a.
func (f *Vector) Scale(a float64) *Vector {
	g := f.Clone()
	g.ScaleInPlace(a)
	return g
}

// Div returns f / a.
func (f *Vector) Div(a float64) *Vector {
	g := f.Clone()
	g.DivInPlace(a)
	return g
}

// Neg returns -f.
func (f *Vector) Neg() *Vector { return f.Scale(-1) }

// ScaleBy returns a * f.
func ScaleBy(a float64, f *Vector) *Vector { return f.Scale(a) }

// InnerProduct returns the sum of x[k]*y[k] over all 2n elements, X and Y
// components together.
func InnerProduct(x, y *Vector) (float64, error) {
	if err := x.checkSize(y); err != nil {
		return 0.0, err
	}
	return floats.Dot(x.data, y.data), nil
}
