// Command svoronoi builds a spherical Voronoi diagram from a random
// point cloud (or, in the future, a point file) and writes it out in
// a plain-text format, the Go-idiomatic descendant of
// original_source/src/main.rs's write_diagram.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/arcwise/svoronoi/diagram"
	"github.com/arcwise/svoronoi/pointgen"
	voronoi "github.com/arcwise/svoronoi"
)

func main() {
	cmd := &cli.Command{
		Name:  "svoronoi",
		Usage: "build a spherical Voronoi diagram from a random point cloud",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "points", Aliases: []string{"n"}, Value: 1000, Usage: "number of random input points"},
			&cli.UintFlag{Name: "seed", Value: 0, Usage: "RNG seed (0 selects a fixed default)"},
			&cli.IntFlag{Name: "relax", Value: 0, Usage: "number of Lloyd relaxation passes"},
			&cli.StringFlag{Name: "out", Value: "diagram.txt", Usage: "output file path"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "svoronoi:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	n := int(cmd.Int("points"))
	seed := cmd.Uint("seed")
	relaxations := int(cmd.Int("relax"))
	out := cmd.String("out")

	points, err := pointgen.Random(n, uint64(seed))
	if err != nil {
		return fmt.Errorf("svoronoi: %w", err)
	}

	d, err := voronoi.Build(points, voronoi.WithRelaxations(relaxations))
	if err != nil {
		return fmt.Errorf("svoronoi: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("svoronoi: %w", err)
	}
	defer f.Close()

	return writeDiagram(f, d)
}

// writeDiagram renders d as a plain-text mesh: a header line of
// counts, one line per vertex position, one line per edge's endpoint
// pair, then per cell its site and the clockwise-ordered vertex ring.
func writeDiagram(w *os.File, d *diagram.Diagram) error {
	vertices := d.Vertices()
	edges := d.Edges()

	if _, err := fmt.Fprintf(w, "%d %d %d\n", len(vertices), len(edges), d.CellCount()); err != nil {
		return err
	}
	for _, v := range vertices {
		pos := d.VertexPosition(v).Pos
		if _, err := fmt.Fprintf(w, "%g %g %g\n", pos.X, pos.Y, pos.Z); err != nil {
			return err
		}
	}
	for _, e := range edges {
		v0, v1 := d.EdgeVertices(e)
		if _, err := fmt.Fprintf(w, "%d %d\n", v0, v1); err != nil {
			return err
		}
	}
	for c := 0; c < d.CellCount(); c++ {
		cell := diagram.CellHandle(c)
		site := d.CellPoint(cell).Pos
		if _, err := fmt.Fprintf(w, "%g %g %g\n", site.X, site.Y, site.Z); err != nil {
			return err
		}
		cellVertices := d.CellVertices(cell)
		for i, v := range cellVertices {
			if i > 0 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
