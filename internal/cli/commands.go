/*
 * commands.go, part of gosymm.
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

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	symm "github.com/bskinn/opan-sub001"
	"github.com/bskinn/opan-sub001/inertia"
	"github.com/bskinn/opan-sub001/internal/logging"
	"github.com/bskinn/opan-sub001/symmplot"
	"github.com/bskinn/opan-sub001/xyz"
)

//geometry is a molecule read from a file, translated to its center of mass.
type geometry struct {
	file    string
	symbols []string
	coords  []float64
	masses  []float64
}

func readGeometry(name string, log logging.Logger) (*geometry, error) {
	mol, err := xyz.Read(name)
	if err != nil {
		return nil, err
	}
	ctr, err := inertia.Center(mol.Coords, mol.Masses)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("geometry read", logging.String("file", name), logging.Int("atoms", mol.Len()), logging.String("comment", mol.Comment))
	return &geometry{file: name, symbols: mol.Symbols, coords: ctr, masses: mol.Masses}, nil
}

//axisFlag reads a 3-component axis given as --axis x,y,z.
func axisFlag(vals []float64) (*mat.VecDense, error) {
	if len(vals) != 3 {
		return nil, fmt.Errorf("--axis needs 3 components, got %d", len(vals))
	}
	return symm.Vec3(vals[0], vals[1], vals[2]), nil
}

func formatVec(v []float64) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = fmt.Sprintf("%10.6f", x)
	}
	return "(" + strings.Join(s, ", ") + ")"
}

type axisResult struct {
	Vector     [3]float64 `json:"vector"`
	Order      int        `json:"order"`
	Reflection bool       `json:"reflection"`
}

func newAxisResult(a symm.Axis) *axisResult {
	return &axisResult{Vector: a.Vector, Order: a.Order, Reflection: a.Reflection}
}

func (a *axisResult) Text() string {
	refl := "no reflection"
	if a.Reflection {
		refl = "reflection plane"
	}
	return fmt.Sprintf("%s  order %d, %s\n", formatVec(a.Vector[:]), a.Order, refl)
}

type groupResult struct {
	File           string      `json:"file"`
	Atoms          int         `json:"atoms"`
	TopType        string      `json:"top_type"`
	Moments        []float64   `json:"moments"`
	Label          string      `json:"label"`
	SymmetryNumber int         `json:"symmetry_number"`
	Reference      *axisResult `json:"reference_axis,omitempty"`
}

func (r *groupResult) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "file             %s\n", r.File)
	fmt.Fprintf(&b, "atoms            %d\n", r.Atoms)
	fmt.Fprintf(&b, "top type         %s\n", r.TopType)
	fmt.Fprintf(&b, "moments          %s\n", formatVec(r.Moments))
	fmt.Fprintf(&b, "point group      %s\n", r.Label)
	if r.SymmetryNumber > 0 {
		fmt.Fprintf(&b, "symmetry number  %d\n", r.SymmetryNumber)
	} else {
		b.WriteString("symmetry number  undetermined\n")
	}
	if r.Reference != nil {
		b.WriteString("reference axis   " + r.Reference.Text())
	}
	return b.String()
}

func newGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group FILE",
		Short: "Find the point group of a molecule",
		Long: "Reads an XYZ file (optionally .gz or .zst compressed), moves it to its center\n" +
			"of mass, classifies its inertial top type and searches its point group.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cctx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			log := cctx.Logger.Named("group")
			tol := cctx.Config.Tolerances
			geo, err := readGeometry(args[0], log)
			if err != nil {
				return err
			}
			moments, axes, top, err := inertia.Principals(geo.coords, geo.masses, tol)
			if err != nil {
				return fmt.Errorf("%s: %w", geo.file, err)
			}
			log.Debug("principal moments", logging.Floats("moments", moments), logging.String("top", top.String()))
			pg, err := symm.FindPointGroup(geo.coords, geo.masses, axes, top, tol)
			if err != nil {
				log.Warn("no point group", logging.String("file", geo.file), logging.Err(err))
				return fmt.Errorf("%s: %w", geo.file, err)
			}
			log.Info("point group found", logging.String("file", geo.file), logging.String("label", pg.Label))
			res := &groupResult{
				File:           geo.file,
				Atoms:          len(geo.symbols),
				TopType:        top.String(),
				Moments:        moments,
				Label:          pg.Label,
				SymmetryNumber: pg.SymmetryNumber,
			}
			if pg.Reference != nil {
				res.Reference = newAxisResult(*pg.Reference)
			}
			return printResult(cmd, cctx, res)
		},
	}
}

func newAxisCmd() *cobra.Command {
	var axis []float64
	cmd := &cobra.Command{
		Use:   "axis FILE",
		Short: "Classify one axis of a molecule",
		Long: "Finds the highest proper rotation order of the molecule around the given axis,\n" +
			"and whether the plane normal to it is a reflection plane. The axis passes through\n" +
			"the center of mass.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cctx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			log := cctx.Logger.Named("axis")
			ax, err := axisFlag(axis)
			if err != nil {
				return err
			}
			geo, err := readGeometry(args[0], log)
			if err != nil {
				return err
			}
			a, err := symm.ClassifyAxis(geo.coords, geo.masses, ax, cctx.Config.Tolerances)
			if err != nil {
				return fmt.Errorf("%s: %w", geo.file, err)
			}
			log.Info("axis classified", logging.Floats("axis", a.Vector[:]), logging.Int("order", a.Order), logging.Bool("reflection", a.Reflection))
			return printResult(cmd, cctx, newAxisResult(a))
		},
	}
	cmd.Flags().Float64SliceVar(&axis, "axis", nil, "axis direction as x,y,z [REQUIRED]")
	cmd.MarkFlagRequired("axis")
	return cmd
}

type principalsResult struct {
	File    string        `json:"file"`
	TopType string        `json:"top_type"`
	Moments []float64     `json:"moments"`
	Axes    [3][3]float64 `json:"axes"`
}

func (r *principalsResult) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "file      %s\n", r.File)
	fmt.Fprintf(&b, "top type  %s\n", r.TopType)
	for i, m := range r.Moments {
		fmt.Fprintf(&b, "I%d %14.6f  %s\n", i+1, m, formatVec(r.Axes[i][:]))
	}
	return b.String()
}

func newPrincipalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "principals FILE",
		Short: "Print the principal moments and axes of inertia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cctx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			log := cctx.Logger.Named("principals")
			geo, err := readGeometry(args[0], log)
			if err != nil {
				return err
			}
			moments, axes, top, err := inertia.Principals(geo.coords, geo.masses, cctx.Config.Tolerances)
			if err != nil {
				return fmt.Errorf("%s: %w", geo.file, err)
			}
			res := &principalsResult{File: geo.file, TopType: top.String(), Moments: moments}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					res.Axes[i][j] = axes.At(j, i)
				}
			}
			log.Debug("principals", logging.Floats("moments", moments), logging.String("top", res.TopType))
			return printResult(cmd, cctx, res)
		},
	}
}

type scanResult struct {
	File     string           `json:"file"`
	Axis     []float64        `json:"axis"`
	Proper   []symmplot.Point `json:"proper"`
	Improper []symmplot.Point `json:"improper,omitempty"`
}

func (r *scanResult) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "file  %s\naxis  %s\n", r.File, formatVec(r.Axis))
	if r.Improper == nil {
		b.WriteString("order    proper\n")
	} else {
		b.WriteString("order    proper  improper\n")
	}
	for i, p := range r.Proper {
		fmt.Fprintf(&b, "%5d  %8.6f", p.Order, p.Factor)
		if r.Improper != nil {
			fmt.Fprintf(&b, "  %8.6f", r.Improper[i].Factor)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func newScanCmd() *cobra.Command {
	var (
		axis     []float64
		improper bool
		plotFile string
	)
	cmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Print the match factor for every rotation order around an axis",
		Long: "Computes the match factor of the molecule against its image rotated by 2pi/n\n" +
			"around the axis, for n from 1 to the maximum order in the tolerances, and\n" +
			"optionally plots it. Factors at or below the match tolerance are symmetry\n" +
			"operations.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cctx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			log := cctx.Logger.Named("scan")
			tol := cctx.Config.Tolerances
			ax, err := axisFlag(axis)
			if err != nil {
				return err
			}
			geo, err := readGeometry(args[0], log)
			if err != nil {
				return err
			}
			res := &scanResult{File: geo.file, Axis: axis}
			res.Proper, err = symmplot.Scan(geo.coords, geo.masses, ax, false, tol)
			if err != nil {
				return fmt.Errorf("%s: %w", geo.file, err)
			}
			series := []symmplot.Series{{Name: "proper", Points: res.Proper}}
			if improper {
				res.Improper, err = symmplot.Scan(geo.coords, geo.masses, ax, true, tol)
				if err != nil {
					return fmt.Errorf("%s: %w", geo.file, err)
				}
				series = append(series, symmplot.Series{Name: "improper", Points: res.Improper})
			}
			if plotFile != "" {
				if err := symmplot.Plot(geo.file, plotFile, tol.SymmMatchTol, series...); err != nil {
					return err
				}
				log.Info("plot written", logging.String("plot", plotFile))
			}
			return printResult(cmd, cctx, res)
		},
	}
	cmd.Flags().Float64SliceVar(&axis, "axis", nil, "axis direction as x,y,z [REQUIRED]")
	cmd.Flags().BoolVar(&improper, "improper", false, "also scan rotation-reflections")
	cmd.Flags().StringVar(&plotFile, "plot", "", "write a plot to this file (png, svg, pdf)")
	cmd.MarkFlagRequired("axis")
	return cmd
}
