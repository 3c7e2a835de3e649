package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/viewcube/internal/logger"
	"github.com/Faultbox/viewcube/pkg/cube"
)

var flagExportAxes bool

var exportCmd = &cobra.Command{
	Use:   "export <file.obj>",
	Short: "Export the widget geometry as a Wavefront OBJ",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&flagExportAxes, "axes", false, "include the axes trihedron")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	st := cfg.Style()
	if err := st.Validate(); err != nil {
		return err
	}

	var groups []cube.OBJGroup
	for _, o := range cube.All() {
		groups = append(groups, cube.OBJGroup{
			Name: fmt.Sprintf("%s_%s", o.Kind(), o),
			Mesh: cube.PartMesh(st, o),
		})
	}
	if flagExportAxes {
		for _, axis := range []cube.Axis{cube.AxisX, cube.AxisY, cube.AxisZ} {
			groups = append(groups, cube.OBJGroup{
				Name: fmt.Sprintf("axis_%s", axis),
				Mesh: cube.AxisArrow(st, axis),
			})
		}
		groups = append(groups, cube.OBJGroup{Name: "axis_origin", Mesh: cube.CenterMarker(st)})
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := cube.WriteOBJ(f, groups); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}

	logger.Info("exported widget geometry",
		zap.String("file", args[0]),
		zap.Int("groups", len(groups)),
		zap.Bool("axes", flagExportAxes),
	)
	return nil
}
