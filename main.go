package main

import (
	"fmt"
	"os"

	"github.com/Dezzmeister/ncollide/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "ncollide"
	app.Usage = "build and inspect spatialized normal cone hierarchies"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set logging verbosity: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "stats",
			Usage: "build a normal cone hierarchy over a procedural mesh and display its statistics",
			Description: `
Generate a procedural mesh (a UV sphere or a polygonal tube swept along a
polyline), bound every face with an axis-aligned box and a double cone of
normals and merge the face bounds into a hierarchy.

The hierarchy is validated before its statistics are displayed.`,
			Flags:  cmd.MeshFlags(),
			Action: cmd.HierarchyStats,
		},
		{
			Name:  "silhouette",
			Usage: "count the faces that may lie on the silhouette for a view direction",
			Description: `
Build a normal cone hierarchy over a procedural mesh and prune every subtree
whose normals cannot be perpendicular to the view direction. The pruned
result is compared against testing every face individually.`,
			Flags: append(cmd.MeshFlags(), cli.StringFlag{
				Name:  "view",
				Value: "0,0,1",
				Usage: "view direction as x,y,z",
			}),
			Action: cmd.SilhouetteStats,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
