/*
 * residues.go, part of goSASA.
 *
 * Copyright 2024 The goSASA authors.
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

// Package sasaplot draws SASA values using gonum/plot.
package sasaplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// ResidueBars saves to filename a bar chart with one bar per value,
// labeled with labels, and the given title. The format is taken from the
// extension of filename (png, svg, pdf, eps, jpg, tif).
func ResidueBars(labels []string, values []float64, title, filename string) error {
	if len(values) == 0 {
		return fmt.Errorf("goSASA/sasaplot: No values to plot")
	}
	if len(labels) != len(values) {
		return fmt.Errorf("goSASA/sasaplot: %d labels for %d values", len(labels), len(values))
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = "SASA (A^2)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(6))
	if err != nil {
		return fmt.Errorf("goSASA/sasaplot: %w", err)
	}
	bars.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	//wide enough for all the bars
	width := vg.Length(len(values))*vg.Points(8) + vg.Centimeter*3
	if width < 10*vg.Centimeter {
		width = 10 * vg.Centimeter
	}
	return p.Save(width, 10*vg.Centimeter, filename)
}
