package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/viewcube/pkg/cube"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display the widget geometry for the configured style",
	Long:  "Show per-orientation mesh statistics, pick sensitivities and the overall bounding box.",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	st := cfg.Style()
	if err := st.Validate(); err != nil {
		return err
	}

	fmt.Println("View Cube Geometry")
	fmt.Println("==================")
	fmt.Printf("Size: %g  FacetExtension: %g  RoundRadius: %g\n",
		st.Size, st.FacetExtension, st.RoundRadius)
	convention := "Z-up"
	if st.Yup {
		convention = "Y-up"
	}
	fmt.Printf("Convention: %s\n\n", convention)

	var totalVerts, totalTris int
	fmt.Printf("%-10s %-8s %-8s %10s %10s %12s\n",
		"Part", "Kind", "Label", "Vertices", "Triangles", "Sensitivity")
	for _, o := range cube.All() {
		mesh := cube.PartMesh(st, o)
		if mesh == nil {
			continue
		}
		label := cube.SideLabel(o, st.Yup)
		if label == "" {
			label = "-"
		}
		fmt.Printf("%-10s %-8s %-8s %10d %10d %12d\n",
			o, o.Kind(), label,
			len(mesh.Vertices), mesh.TriangleCount(),
			cube.SensitivityFor(o.Kind()))
		totalVerts += len(mesh.Vertices)
		totalTris += mesh.TriangleCount()
	}

	fmt.Printf("\nTotals: %d vertices, %d triangles\n", totalVerts, totalTris)

	vc := cube.New(nil)
	if err := vc.SetStyle(st); err != nil {
		return err
	}
	b := vc.Bounds()
	fmt.Printf("Bounds: min (%g, %g, %g)  max (%g, %g, %g)  diagonal %g\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z, b.Diagonal())
	return nil
}
