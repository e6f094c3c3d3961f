package main

import (
	"fmt"
	"io"

	"github.com/1F47E/geo-bounds/pkg/geo"
	"github.com/1F47E/geo-bounds/pkg/models"
	"github.com/1F47E/geo-bounds/pkg/morton"
	"github.com/spf13/cobra"
)

// tableRadii are the radii, in km, of the reference table.
var tableRadii = []float64{0.01, 0.1, 1, 10, 100, 1000}

// sampleCenters are the extra centers printed with --all-samples.
var sampleCenters = []models.Location{
	{Lat: -90, Lon: -180},
	{Lat: 0, Lon: -180},
	{Lat: -90, Lon: 0},
	{Lat: 0, Lon: 0},
	{Lat: 90, Lon: 0},
	{Lat: 0, Lon: 180},
	{Lat: 90, Lon: 180},
}

type tableRow struct {
	Center            models.Location    `json:"center" yaml:"center"`
	RadiusKm          float64            `json:"radius_km" yaml:"radius_km"`
	BoundingBox       models.BoundingBox `json:"bbox" yaml:"bbox"`
	SouthWestCode     morton.Code        `json:"sw_code" yaml:"sw_code"`
	CenterCode        morton.Code        `json:"center_code" yaml:"center_code"`
	NorthEastCode     morton.Code        `json:"ne_code" yaml:"ne_code"`
	SouthWestDistance morton.Code        `json:"sw_distance" yaml:"sw_distance"`
	NorthEastDistance morton.Code        `json:"ne_distance" yaml:"ne_distance"`
}

func (a *app) tableCmd() *cobra.Command {
	var allSamples bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the reference table of boxes and Morton codes",
		Long: `Print the bounding box for radii from 0.01 to 1000 km around a center,
with the Morton code of each corner and of the center, and the Morton
distance from each corner to the center.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			centers := []models.Location{{Lat: a.cfg.Table.Lat, Lon: a.cfg.Table.Lon}}
			if allSamples {
				centers = append(centers, sampleCenters...)
			}

			rows, err := a.buildTable(centers)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), rows, func(w io.Writer) error {
				return writeTable(w, rows)
			})
		},
	}

	cmd.Flags().Float64("lat", 0, "Center latitude (default from config, 37.7749295)")
	cmd.Flags().Float64("lon", 0, "Center longitude (default from config, -122.4194155)")
	cmd.Flags().BoolVar(&allSamples, "all-samples", false, "Also print the pole, equator and antimeridian sample centers")
	_ = a.v.BindPFlag("table.lat", cmd.Flags().Lookup("lat"))
	_ = a.v.BindPFlag("table.lon", cmd.Flags().Lookup("lon"))
	return cmd
}

func (a *app) buildTable(centers []models.Location) ([]tableRow, error) {
	rows := make([]tableRow, 0, len(centers)*len(tableRadii))
	for _, center := range centers {
		centerCode, err := morton.EncodeLocation(center)
		if err != nil {
			return nil, fmt.Errorf("center %+v: %w", center, err)
		}

		for _, radius := range tableRadii {
			box, err := geo.BoundingBoxAround(center, radius)
			if err != nil {
				return nil, fmt.Errorf("center %+v: %w", center, err)
			}

			sw, err := morton.EncodeLocation(box.SouthWest())
			if err != nil {
				a.log.Warn("skipping row", "lat", center.Lat, "lon", center.Lon, "radius_km", radius, "error", err)
				continue
			}
			ne, err := morton.EncodeLocation(box.NorthEast())
			if err != nil {
				a.log.Warn("skipping row", "lat", center.Lat, "lon", center.Lon, "radius_km", radius, "error", err)
				continue
			}

			rows = append(rows, tableRow{
				Center:            center,
				RadiusKm:          radius,
				BoundingBox:       box,
				SouthWestCode:     sw,
				CenterCode:        centerCode,
				NorthEastCode:     ne,
				SouthWestDistance: morton.Distance(sw, centerCode),
				NorthEastDistance: morton.Distance(centerCode, ne),
			})
		}
	}
	return rows, nil
}

func writeTable(w io.Writer, rows []tableRow) error {
	if _, err := fmt.Fprintln(w, "center\tradius_km\tcorner\tlat\tlon\tcode\tdistance"); err != nil {
		return err
	}
	for _, r := range rows {
		center := fmt.Sprintf("(%.7f, %.7f)", r.Center.Lat, r.Center.Lon)
		lines := []struct {
			corner   string
			loc      models.Location
			code     morton.Code
			distance string
		}{
			{"sw", r.BoundingBox.SouthWest(), r.SouthWestCode, r.SouthWestDistance.String()},
			{"center", r.Center, r.CenterCode, "-"},
			{"ne", r.BoundingBox.NorthEast(), r.NorthEastCode, r.NorthEastDistance.String()},
		}
		for _, l := range lines {
			_, err := fmt.Fprintf(w, "%s\t%.3f\t%s\t%.7f\t%.7f\t%s\t%s\n",
				center, r.RadiusKm, l.corner, l.loc.Lat, l.loc.Lon, l.code, l.distance)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
