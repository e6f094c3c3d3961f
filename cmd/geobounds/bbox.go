package main

import (
	"fmt"
	"io"

	"github.com/1F47E/geo-bounds/pkg/geo"
	"github.com/1F47E/geo-bounds/pkg/models"
	"github.com/spf13/cobra"
)

type bboxResult struct {
	Center              models.Location    `json:"center" yaml:"center"`
	RadiusKm            float64            `json:"radius_km" yaml:"radius_km"`
	BoundingBox         models.BoundingBox `json:"bbox" yaml:"bbox"`
	CrossesAntimeridian bool               `json:"crosses_antimeridian" yaml:"crosses_antimeridian"`
}

func (a *app) bboxCmd() *cobra.Command {
	var (
		lat, lon, radius float64
	)

	cmd := &cobra.Command{
		Use:   "bbox",
		Short: "Compute the bounding box around a point",
		Long: `Compute the south-west and north-east corners of the box around a center
point and radius. Pass negative values with an equals sign, e.g. --lon=-122.4.`,
		Example: "  geobounds bbox --lat 37.7749295 --lon=-122.4194155 --radius 1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := geo.ComputeBoundingBox(lat, lon, radius)
			if err != nil {
				return err
			}
			a.log.Debug("computed bounding box",
				"lat", lat, "lon", lon, "radius_km", radius,
				"crosses_antimeridian", box.CrossesAntimeridian())

			if a.cfg.Output == formatGeoJSON {
				return a.render(cmd.OutOrStdout(), geo.Feature(box), nil)
			}

			result := bboxResult{
				Center:              models.Location{Lat: lat, Lon: lon},
				RadiusKm:            radius,
				BoundingBox:         box,
				CrossesAntimeridian: box.CrossesAntimeridian(),
			}
			return a.render(cmd.OutOrStdout(), result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "south\twest\tnorth\teast\n%.7f\t%.7f\t%.7f\t%.7f\n",
					box.South, box.West, box.North, box.East)
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Center latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Center longitude")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 1, "Radius in km")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
