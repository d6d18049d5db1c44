package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"

	"github.com/TheFellow/fluid/pkg/body"
	"github.com/TheFellow/fluid/pkg/boundary"
)

const (
	screenWidth  = 800
	screenHeight = 480
	viewWidth    = 400
	viewHeight   = 240

	// Pixels per unit length.
	pixelScale = 40.0
	// Pixels per unit force.
	arrowScale = 15.0
)

var bgColor = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

type Game struct {
	circle *body.Circle
}

func NewGame(c *body.Circle) *Game {
	return &Game{circle: c}
}

func (g *Game) Update() error {
	return g.circle.Step(1.0 / float64(ebiten.TPS()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	c := g.circle
	maxForce, err := c.MaxForce()
	if err != nil {
		log.Print(err)
		return
	}
	cx, cy := float32(viewWidth/2), float32(viewHeight/2)
	for i, n := 0, c.NumPoints(); i < n; i++ {
		x, y, err := c.X.Point(i)
		if err != nil {
			log.Print(err)
			return
		}
		fx, fy, err := c.F.Point(i)
		if err != nil {
			log.Print(err)
			return
		}
		px := cx + float32(x*pixelScale)
		py := cy - float32(y*pixelScale)
		clr := getSciValue(fx*fx+fy*fy, 0, maxForce*maxForce)
		vector.StrokeLine(screen, px, py, px+float32(fx*arrowScale), py-float32(fy*arrowScale), 1, clr, true)
		vector.DrawFilledCircle(screen, px, py, 2, color.White, true)
	}

	power, _ := c.Power()
	fx, fy, _ := c.TotalForce()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("BodyView - %d points\nTPS: %0.2f\nF.U: %0.4f\nsum F: (%0.3f, %0.3f)",
		c.NumPoints(), ebiten.ActualTPS(), power, fx, fy))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (w, h int) {
	return viewWidth, viewHeight
}

func main() {
	var (
		numPoints int
		radius    float64
		omega     float64
		stiffness float64
		dump      bool
	)

	cmd := &cobra.Command{
		Use:   "bodyview",
		Short: "Show boundary forces on a spinning circular body",
		RunE: func(cmd *cobra.Command, args []string) error {
			if numPoints <= 0 {
				return fmt.Errorf("points must be positive, got %d", numPoints)
			}
			c := body.NewCircle(numPoints, radius, omega, stiffness)
			if dump {
				for _, v := range []*boundary.Vector{c.X, c.U, c.F} {
					if err := v.Print(cmd.OutOrStdout()); err != nil {
						return err
					}
				}
				power, err := c.Power()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "F.U = %g\n", power)
				return nil
			}

			ebiten.SetWindowSize(screenWidth, screenHeight)
			ebiten.SetWindowTitle("BodyView")
			return ebiten.RunGame(NewGame(c))
		},
	}
	cmd.Flags().IntVarP(&numPoints, "points", "n", 64, "number of boundary points")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 2.0, "body radius")
	cmd.Flags().Float64Var(&omega, "omega", 1.0, "angular velocity in rad/s")
	cmd.Flags().Float64VarP(&stiffness, "stiffness", "k", 0.5, "spring stiffness toward the body center")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the boundary vectors and exit")

	if err := cmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
