package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/Dezzmeister/ncollide/bounding"
	"github.com/Dezzmeister/ncollide/bvh"
	"github.com/Dezzmeister/ncollide/types"
)

var errZeroView = errors.New("view direction must not be zero")

type silhouetteStats struct {
	Faces      int
	Candidates int
	BruteForce int
	Visited    int

	TreeTime  time.Duration
	BruteTime time.Duration
}

// Compare hierarchical silhouette pruning against testing every face.
func collectSilhouetteStats(tree *normalConeTree, view types.Vec3) silhouetteStats {
	stats := silhouetteStats{Faces: len(tree.Bounds)}

	start := time.Now()
	bvh.Silhouette(tree, view, func(int) bool {
		stats.Candidates++
		return true
	})
	stats.TreeTime = time.Since(start)

	// Count the bound tests the pruned traversal performs.
	tree.Visit(func(bound bounding.SpatializedNormalCone) bool {
		stats.Visited++
		return bound.Normals.MayBePerpendicularTo(view)
	}, func(int) bool { return true })

	start = time.Now()
	for _, bound := range tree.Bounds {
		if bound.Normals.MayBePerpendicularTo(view) {
			stats.BruteForce++
		}
	}
	stats.BruteTime = time.Since(start)

	return stats
}

// Count the faces that may lie on the silhouette for a view direction.
func SilhouetteStats(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	view, err := parseVec3(ctx.String("view"))
	if err != nil {
		return fmt.Errorf("invalid view direction: %w", err)
	}
	if view = view.Normalize(); view == (types.Vec3{}) {
		return errZeroView
	}

	opts, err := meshOptionsFromContext(ctx)
	if err != nil {
		return err
	}

	mesh, err := buildMesh(opts)
	if err != nil {
		return err
	}

	tree, err := buildHierarchy(mesh, ctx.Int("leaf"))
	if err != nil {
		return err
	}

	stats := collectSilhouetteStats(tree, view)
	if stats.Candidates != stats.BruteForce {
		logger.Warningf("hierarchy returned %d silhouette faces; brute force found %d", stats.Candidates, stats.BruteForce)
	}

	logger.Noticef("silhouette statistics for view %s\n%s", fmtVec3(view), silhouetteTable(stats))
	return nil
}

func silhouetteTable(stats silhouetteStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Method", "Silhouette faces", "Bound tests", "Time"})
	table.Append([]string{
		"hierarchy",
		fmt.Sprintf("%d", stats.Candidates),
		fmt.Sprintf("%d", stats.Visited),
		stats.TreeTime.String(),
	})
	table.Append([]string{
		"brute force",
		fmt.Sprintf("%d", stats.BruteForce),
		fmt.Sprintf("%d", stats.Faces),
		stats.BruteTime.String(),
	})
	table.Render()
	return buf.String()
}
