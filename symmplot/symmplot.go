/*
 * symmplot.go, part of gosymm.
 *
 * Copyright 2024 The gosymm authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package symmplot scans the match factor of a molecule around an axis for every
trial rotation order and plots the result, which helps choosing a match tolerance.*/
package symmplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	symm "github.com/bskinn/opan-sub001"
)

//Point is the match factor for a rotation of 2pi/Order.
type Point struct {
	Order  int
	Factor float64
}

//Series is a named set of points, one line in the plot.
type Series struct {
	Name   string
	Points []Point
}

//Scan returns the match factor of g for rotations of 2pi/n around axis, for n from 1 to
//tol.SymmMatchNMax, each followed by a reflection through the plane normal to axis if
//improper is true.
func Scan(g, w []float64, axis mat.Matrix, improper bool, tol symm.ToleranceConfig) ([]Point, error) {
	if tol.SymmMatchNMax < 1 {
		return nil, fmt.Errorf("symmplot: maximum rotation order must be at least 1, got %d", tol.SymmMatchNMax)
	}
	ret := make([]Point, 0, tol.SymmMatchNMax)
	for n := 1; n <= tol.SymmMatchNMax; n++ {
		fac, err := symm.GeomSymmMatch(g, w, axis, 2*math.Pi/float64(n), improper, tol)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Point{Order: n, Factor: fac})
	}
	return ret, nil
}

func basicScanPlot(title string, tolerance float64) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Rotation order"
	p.Y.Label.Text = "Match factor"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())
	if tolerance > 0 {
		tl := plotter.NewFunction(func(float64) float64 { return tolerance })
		tl.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		tl.Color = color.Gray{Y: 100}
		p.Add(tl)
		p.Legend.Add("tolerance", tl)
	}
	return p
}

//Plot draws each series as a line with markers against the rotation order, with a dashed
//horizontal line at tolerance, and saves the plot in filename. The format is taken from
//the extension of filename (png, svg, pdf and the others gonum/plot supports).
func Plot(title, filename string, tolerance float64, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("symmplot: nothing to plot")
	}
	p := basicScanPlot(title, tolerance)
	for key, s := range series {
		pts := make(plotter.XYs, len(s.Points))
		for i, v := range s.Points {
			pts[i].X = float64(v.Order)
			pts[i].Y = v.Factor
		}
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("symmplot: series %q: %w", s.Name, err)
		}
		r, g, b := colors(key, len(series))
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		line.Color = c
		scatter.Color = c
		p.Add(line, scatter)
		p.Legend.Add(s.Name, line, scatter)
	}
	p.X.Min = 0.5
	p.X.Tick.Marker = plot.ConstantTicks(orderTicks(series))
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}

//orderTicks returns one tick per integer order up to the highest in series.
func orderTicks(series []Series) []plot.Tick {
	var max int
	for _, s := range series {
		for _, v := range s.Points {
			if v.Order > max {
				max = v.Order
			}
		}
	}
	ticks := make([]plot.Tick, 0, max)
	for n := 1; n <= max; n++ {
		ticks = append(ticks, plot.Tick{Value: float64(n), Label: fmt.Sprint(n)})
	}
	return ticks
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//colors spreads steps hues over the wheel, skipping the yellows, which are hard to see.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1, 1)
}
