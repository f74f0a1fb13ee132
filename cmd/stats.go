package cmd

import (
	"bytes"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/Dezzmeister/ncollide/bounding"
	"github.com/Dezzmeister/ncollide/bvh"
	"github.com/Dezzmeister/ncollide/procedural"
)

type normalConeTree = bvh.Tree[bounding.SpatializedNormalCone]

// Build and validate a normal cone hierarchy over the faces of mesh.
func buildHierarchy(mesh *procedural.TriMesh, leafItems int) (*normalConeTree, error) {
	if leafItems < 1 {
		leafItems = 1
	}

	tree := bvh.Build(
		mesh.FaceBounds(),
		leafItems,
		nil,
		bvh.SurfaceAreaHeuristic[bounding.SpatializedNormalCone](),
	)

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

// Display hierarchy statistics.
func HierarchyStats(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := meshOptionsFromContext(ctx)
	if err != nil {
		return err
	}

	mesh, err := buildMesh(opts)
	if err != nil {
		return err
	}
	logger.Infof("generated %s mesh with %d faces", opts.Shape, mesh.NumFaces())

	tree, err := buildHierarchy(mesh, ctx.Int("leaf"))
	if err != nil {
		return err
	}

	logger.Noticef("hierarchy statistics\n%s", hierarchyTable(tree))
	return nil
}

// Build a tabular representation of hierarchy statistics.
func hierarchyTable(tree *normalConeTree) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Faces", fmt.Sprintf("%d", tree.Stats.Items)})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", tree.Stats.Nodes)})
	table.Append([]string{"Leafs", fmt.Sprintf("%d", tree.Stats.Leafs)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", tree.Stats.MaxDepth)})

	if root := tree.Root(); root != nil {
		table.Append([]string{"Root min", fmtVec3(root.Bound.AABB.Min)})
		table.Append([]string{"Root max", fmtVec3(root.Bound.AABB.Max)})
		table.Append([]string{"Root cone axis", fmtVec3(root.Bound.Normals.Axis)})
		table.Append([]string{"Root cone half-angle", fmtDegrees(root.Bound.Normals.HalfAngle)})
	}

	table.Render()
	return buf.String()
}

func fmtVec3(v [3]float32) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}

func fmtDegrees(rad float32) string {
	return fmt.Sprintf("%.2f deg", rad*180/math32.Pi)
}
