package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dezzmeister/ncollide/procedural"
	"github.com/Dezzmeister/ncollide/types"
	"github.com/urfave/cli"
)

var (
	errUnknownShape = errors.New("unknown shape; expected sphere or tube")
	errInvalidVec3  = errors.New("expected three comma separated numbers")
)

// Mesh generation settings shared by all commands.
type meshOptions struct {
	Shape    string
	Radius   float32
	Segments int
	Rings    int
	Path     []types.Vec3
}

// MeshFlags returns the flags that configure the procedural mesh a command
// operates on.
func MeshFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "shape",
			Value: "sphere",
			Usage: "procedural mesh to bound: sphere or tube",
		},
		cli.Float64Flag{
			Name:  "radius",
			Value: 1.0,
			Usage: "sphere radius or tube cross-section radius",
		},
		cli.IntFlag{
			Name:  "segments",
			Value: 32,
			Usage: "subdivisions around the sphere axis or tube cross-section sides",
		},
		cli.IntFlag{
			Name:  "rings",
			Value: 16,
			Usage: "sphere subdivisions from pole to pole",
		},
		cli.StringSliceFlag{
			Name:  "point, p",
			Value: &cli.StringSlice{},
			Usage: "tube path point as x,y,z; repeat for every point",
		},
		cli.IntFlag{
			Name:  "leaf",
			Value: 4,
			Usage: "face count at or below which a hierarchy node becomes a leaf",
		},
	}
}

func meshOptionsFromContext(ctx *cli.Context) (meshOptions, error) {
	opts := meshOptions{
		Shape:    ctx.String("shape"),
		Radius:   float32(ctx.Float64("radius")),
		Segments: ctx.Int("segments"),
		Rings:    ctx.Int("rings"),
	}

	for _, spec := range ctx.StringSlice("point") {
		p, err := parseVec3(spec)
		if err != nil {
			return opts, fmt.Errorf("invalid path point %q: %w", spec, err)
		}
		opts.Path = append(opts.Path, p)
	}

	return opts, nil
}

// Generate the mesh described by opts.
func buildMesh(opts meshOptions) (*procedural.TriMesh, error) {
	switch opts.Shape {
	case "sphere":
		return procedural.UVSphere(opts.Radius, opts.Segments, opts.Rings)
	case "tube":
		path := opts.Path
		if len(path) == 0 {
			path = []types.Vec3{{0, 0, 0}, {0, 0, 4}, {2, 0, 6}, {4, 0, 6}}
		}

		sampler, err := procedural.NewPolylineSampler(path)
		if err != nil {
			return nil, err
		}
		pattern, err := procedural.NewPolygonPattern(procedural.RegularPolygon(opts.Segments, opts.Radius))
		if err != nil {
			return nil, err
		}
		return pattern.Stroke(sampler)
	}

	return nil, fmt.Errorf("%w: %q", errUnknownShape, opts.Shape)
}

// Parse a vector in x,y,z notation.
func parseVec3(spec string) (types.Vec3, error) {
	var out types.Vec3

	tokens := strings.Split(spec, ",")
	if len(tokens) != 3 {
		return out, errInvalidVec3
	}

	for idx, token := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(token), 32)
		if err != nil {
			return out, fmt.Errorf("%w: %s", errInvalidVec3, err)
		}
		out[idx] = float32(v)
	}

	return out, nil
}
