// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ddg/dec"
	"github.com/katalvlaran/ddg/matrix"
)

func newOpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "Build every operator of the mesh and report sizes and consistency checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOps(cmd)
		},
	}
}

func (a *app) runOps(cmd *cobra.Command) error {
	g, err := a.loadMesh()
	if err != nil {
		return err
	}
	a.log.WithFields(a.meshFields(g)).Info("building operators")

	ops, err := dec.BuildAll[float64](cmd.Context(), g, dec.WithDegeneracyTolerance(a.cfg.Tolerance))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mesh: V=%d E=%d F=%d chi=%d boundary_loops=%d\n",
		g.NumVertices(), g.NumEdges(), g.NumFaces(), g.EulerCharacteristic(), g.NumBoundaryLoops())
	for _, row := range []struct {
		name string
		m    *matrix.Sparse[float64]
	}{
		{"hodge0", ops.Hodge0},
		{"hodge1", ops.Hodge1},
		{"hodge2", ops.Hodge2},
		{"d0", ops.Derivative0},
		{"d1", ops.Derivative1},
	} {
		r, c := row.m.Shape()
		fmt.Fprintf(out, "%-6s %dx%d nnz=%d\n", row.name, r, c, row.m.NNZ())
	}

	fmt.Fprintf(out, "sum(hodge0)=%.12g total_area=%.12g\n", floats.Sum(ops.Hodge0.Diagonal()), g.TotalArea())
	h1 := ops.Hodge1.Diagonal()
	if len(h1) > 0 {
		fmt.Fprintf(out, "hodge1 min=%.6g max=%.6g\n", floats.Min(h1), floats.Max(h1))
	}

	dd, err := matrix.Mul(ops.Derivative1, ops.Derivative0)
	if err != nil {
		return err
	}
	worst, _, _ := matrix.MaxAbs(dd)
	fmt.Fprintf(out, "max|d1*d0|=%g\n", math.Max(worst, 0))

	return nil
}
