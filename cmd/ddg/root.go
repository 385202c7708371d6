// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ddg/builder"
	"github.com/katalvlaran/ddg/geometry"
	"github.com/katalvlaran/ddg/meshio"
)

// app carries the resolved configuration into subcommands.
type app struct {
	cfg Config
	log *logrus.Logger

	configPath string
	flags      Config // raw flag values, applied only when Changed
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: logrus.New()}
	def := DefaultConfig()

	root := &cobra.Command{
		Use:           "ddg",
		Short:         "Discrete exterior calculus operators on triangle meshes",
		Long:          "ddg assembles Hodge stars and exterior derivatives of a mesh and solves\nshifted Laplace systems through a cached sparse Cholesky factorization.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (tolerance, backend, t, log_level, shape, mesh, source)")
	pf.StringVar(&a.flags.Mesh, "mesh", "", "OBJ file to load instead of a built-in shape")
	pf.StringVar(&a.flags.Shape, "shape", def.Shape, fmt.Sprintf("built-in shape %v", builder.ShapeNames()))
	pf.Float64Var(&a.flags.Tolerance, "tol", def.Tolerance, "relative degeneracy tolerance")
	pf.StringVar(&a.flags.LogLevel, "log-level", def.LogLevel, "logrus level")

	root.AddCommand(newOpsCmd(a), newSolveCmd(a))

	return root
}

// resolve merges defaults, the config file and changed flags, then configures logging.
func (a *app) resolve(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	fl := cmd.Flags()
	if fl.Changed("mesh") {
		a.cfg.Mesh = a.flags.Mesh
	}
	if fl.Changed("shape") {
		a.cfg.Shape = a.flags.Shape
		a.cfg.Mesh = ""
	}
	if fl.Changed("tol") {
		a.cfg.Tolerance = a.flags.Tolerance
	}
	if fl.Changed("log-level") {
		a.cfg.LogLevel = a.flags.LogLevel
	}
	if fl.Changed("t") {
		a.cfg.T = a.flags.T
	}
	if fl.Changed("backend") {
		a.cfg.Backend = a.flags.Backend
	}
	if fl.Changed("source") {
		a.cfg.Source = a.flags.Source
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := logrus.ParseLevel(a.cfg.LogLevel)
	a.log.SetLevel(lvl)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return nil
}

// loadMesh returns the configured OBJ file or built-in shape.
func (a *app) loadMesh() (*geometry.Geometry, error) {
	if a.cfg.Mesh != "" {
		f, err := os.Open(a.cfg.Mesh)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := meshio.LoadOBJ(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.cfg.Mesh, err)
		}
		a.log.WithField("file", a.cfg.Mesh).Debug("mesh loaded")

		return g, nil
	}
	con, err := builder.Named(a.cfg.Shape)
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildMesh(nil, con)
	if err != nil {
		return nil, err
	}
	a.log.WithField("shape", a.cfg.Shape).Debug("mesh built")

	return g, nil
}

func (a *app) meshFields(g *geometry.Geometry) logrus.Fields {
	return logrus.Fields{
		"vertices": g.NumVertices(),
		"edges":    g.NumEdges(),
		"faces":    g.NumFaces(),
	}
}
