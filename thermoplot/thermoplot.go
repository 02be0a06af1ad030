/*
 * thermoplot.go, part of netsuriki.
 *
 *
 * Copyright 2024 mizu-bai
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

//Package thermoplot tabulates thermochemical properties over
//temperature intervals and draws them, one curve per contribution plus
//the total.
package thermoplot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	netsuriki "github.com/mizu-bai/Netsuriki"
)

//Property selects the state function a sweep tabulates.
type Property int

const (
	LnQ Property = iota
	Helmholtz
	Gibbs
	InternalEnergy
	Enthalpy
	Entropy
	HeatCapacityV
	HeatCapacityP
)

func (P Property) String() string {
	switch P {
	case LnQ:
		return "ln q"
	case Helmholtz:
		return "Am"
	case Gibbs:
		return "Gm"
	case InternalEnergy:
		return "Um"
	case Enthalpy:
		return "Hm"
	case Entropy:
		return "Sm"
	case HeatCapacityV:
		return "CVm"
	case HeatCapacityP:
		return "Cpm"
	}
	return "unknown property"
}

//axisLabel is the y axis annotation, with units.
func (P Property) axisLabel() string {
	switch P {
	case LnQ:
		return "ln q"
	case Helmholtz, Gibbs, InternalEnergy, Enthalpy:
		return fmt.Sprintf("%s (J/mol)", P)
	case Entropy, HeatCapacityV, HeatCapacityP:
		return fmt.Sprintf("%s (J/(K mol))", P)
	}
	return "unknown property"
}

//value picks one property out of an evaluated set.
func value(p netsuriki.Properties, P Property) (float64, error) {
	switch P {
	case LnQ:
		return math.Log(p.Q), nil
	case Helmholtz:
		return float64(p.Helmholtz), nil
	case Gibbs:
		return float64(p.Gibbs), nil
	case InternalEnergy:
		return float64(p.InternalEnergy), nil
	case Enthalpy:
		return float64(p.Enthalpy), nil
	case Entropy:
		return float64(p.Entropy), nil
	case HeatCapacityV:
		return float64(p.HeatCapacityV), nil
	case HeatCapacityP:
		return float64(p.HeatCapacityP), nil
	}
	return 0, fmt.Errorf("unknown property %d", int(P))
}

//Sweep evaluates one property of the summed contributions at steps
//evenly spaced temperatures from from to to, both included, and returns
//the (T, property) pairs ready for plotting.
func Sweep(cs []netsuriki.Contribution, P Property, from, to unit.Temperature, steps int) (plotter.XYs, error) {
	ei := "thermoplot/Sweep"
	if len(cs) == 0 {
		return nil, fmt.Errorf("%s: no contributions to sweep", ei)
	}
	if from <= 0 || to <= from {
		return nil, fmt.Errorf("%s: need 0 < from < to, got %v and %v", ei, from, to)
	}
	if steps < 2 {
		return nil, fmt.Errorf("%s: need at least 2 steps, got %d", ei, steps)
	}
	lo := float64(from)
	h := (float64(to) - lo) / float64(steps-1)
	xys := make(plotter.XYs, steps)
	for i := 0; i < steps; i++ {
		t := lo + h*float64(i)
		tot := netsuriki.Totals(cs, unit.Temperature(t))
		y, err := value(tot, P)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ei, err)
		}
		xys[i].X = t
		xys[i].Y = y
	}
	return xys, nil
}

func basicPlot(title string, P Property) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "T (K)"
	p.Y.Label.Text = P.axisLabel()
	p.Add(plotter.NewGrid())
	return p
}

//CurvePlot sweeps one property for every contribution and for their
//total and saves the curves to plotname.png.
func CurvePlot(cs []netsuriki.Contribution, P Property, from, to unit.Temperature, steps int, title, plotname string) error {
	ei := "thermoplot/CurvePlot"
	p := basicPlot(title, P)
	args := make([]interface{}, 0, 2*(len(cs)+1))
	for _, c := range cs {
		xys, err := Sweep([]netsuriki.Contribution{c}, P, from, to, steps)
		if err != nil {
			return fmt.Errorf("%s: %w", ei, err)
		}
		args = append(args, c.Name(), xys)
	}
	xys, err := Sweep(cs, P, from, to, steps)
	if err != nil {
		return fmt.Errorf("%s: %w", ei, err)
	}
	args = append(args, "Total", xys)
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("%s: %w", ei, err)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return fmt.Errorf("%s: %w", ei, err)
	}
	return nil
}
