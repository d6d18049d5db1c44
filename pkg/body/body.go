package body

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/TheFellow/fluid/pkg/boundary"
)

// Circle is a rigid circular body spinning about the origin. Its state is
// sampled at evenly spaced boundary points.
type Circle struct {
	Radius float64
	Omega  float64 // angular velocity, rad/s

	// Stiffness of the spring pulling each point back to the origin.
	Stiffness float64

	angle float64

	X *boundary.Vector // coordinates
	U *boundary.Vector // velocities
	F *boundary.Vector // forces
}

func NewCircle(numPoints int, radius, omega, stiffness float64) *Circle {
	if numPoints <= 0 {
		panic(fmt.Sprintf("invalid number of boundary points: %d", numPoints))
	}
	c := &Circle{
		Radius:    radius,
		Omega:     omega,
		Stiffness: stiffness,
		X:         boundary.New(numPoints),
		U:         boundary.New(numPoints),
		F:         boundary.New(numPoints),
	}
	if err := c.update(); err != nil {
		panic(err)
	}
	return c
}

func (c *Circle) NumPoints() int { return c.X.NumPoints() }

// Angle returns the current rotation of the body.
func (c *Circle) Angle() float64 { return c.angle }

// Step advances the rotation by dt and recomputes coordinates, velocities
// and forces.
func (c *Circle) Step(dt float64) error {
	c.angle = math.Mod(c.angle+c.Omega*dt, 2*math.Pi)
	return c.update()
}

func (c *Circle) update() error {
	n := c.NumPoints()
	for i := 0; i < n; i++ {
		theta := c.angle + 2*math.Pi*float64(i)/float64(n)
		x := c.Radius * math.Cos(theta)
		y := c.Radius * math.Sin(theta)
		if err := c.X.SetPoint(i, x, y); err != nil {
			return err
		}
		if err := c.U.SetPoint(i, -c.Omega*y, c.Omega*x); err != nil {
			return err
		}
	}

	// F = U - k*X
	f, err := c.U.Sub(c.X.Scale(c.Stiffness))
	if err != nil {
		return err
	}
	return c.F.Assign(f)
}

// Power returns the rate of work done by the boundary forces, F·U.
func (c *Circle) Power() (float64, error) {
	return boundary.InnerProduct(c.F, c.U)
}

// TotalForce returns the sum of the forces over all boundary points.
func (c *Circle) TotalForce() (fx, fy float64, err error) {
	return sumByDirection(c.F)
}

func sumByDirection(v *boundary.Vector) (float64, float64, error) {
	var sums [boundary.XY]float64
	data := v.Flatten()
	for _, dir := range []boundary.Direction{boundary.X, boundary.Y} {
		begin, err := v.BeginDir(dir)
		if err != nil {
			return 0.0, 0.0, err
		}
		end, err := v.EndDir(dir)
		if err != nil {
			return 0.0, 0.0, err
		}
		sums[dir] = floats.Sum(data[begin:end])
	}
	return sums[boundary.X], sums[boundary.Y], nil
}

// MaxForce returns the largest force magnitude over the boundary points.
func (c *Circle) MaxForce() (float64, error) {
	var m float64
	for i, n := 0, c.NumPoints(); i < n; i++ {
		fx, fy, err := c.F.Point(i)
		if err != nil {
			return 0.0, err
		}
		m = max(m, math.Hypot(fx, fy))
	}
	return m, nil
}
