package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/1F47E/geo-bounds/pkg/models"
	"github.com/1F47E/geo-bounds/pkg/morton"
	"github.com/spf13/cobra"
)

type codeResult struct {
	Location models.Location `json:"location" yaml:"location"`
	Code     morton.Code     `json:"code" yaml:"code"`
}

type distanceResult struct {
	A        morton.Code `json:"a" yaml:"a"`
	B        morton.Code `json:"b" yaml:"b"`
	Distance morton.Code `json:"distance" yaml:"distance"`
}

func (a *app) mortonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morton",
		Short: "Encode, decode and compare Morton codes",
	}
	cmd.AddCommand(a.mortonEncodeCmd(), a.mortonDecodeCmd(), a.mortonDistanceCmd())
	return cmd
}

func (a *app) mortonEncodeCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:     "encode",
		Short:   "Encode a latitude/longitude pair",
		Example: "  geobounds morton encode --lat 37.7749295 --lon=-122.4194155",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := morton.Encode(lat, lon)
			if err != nil {
				return err
			}
			result := codeResult{Location: models.Location{Lat: lat, Lon: lon}, Code: code}
			return a.render(cmd.OutOrStdout(), result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, code)
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

func (a *app) mortonDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode CODE",
		Short: "Decode a Morton code into a latitude/longitude pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			loc := morton.Decode(code)
			result := codeResult{Location: loc, Code: code}
			return a.render(cmd.OutOrStdout(), result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "lat\tlon\n%.7f\t%.7f\n", loc.Lat, loc.Lon)
				return err
			})
		},
	}
}

func (a *app) mortonDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance CODE CODE",
		Short: "Bit-plane distance between two Morton codes",
		Long: `Print the bit-plane distance between two Morton codes. The value is a
locality hint for ranking, not a distance in any unit.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := make([]morton.Code, len(args))
			for i, arg := range args {
				code, err := parseCode(arg)
				if err != nil {
					return err
				}
				codes[i] = code
			}

			d := morton.Distance(codes[0], codes[1])
			result := distanceResult{A: codes[0], B: codes[1], Distance: d}
			return a.render(cmd.OutOrStdout(), result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, d)
				return err
			})
		},
	}
}

func parseCode(s string) (morton.Code, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid morton code %q: %w", s, err)
	}
	return morton.Code(v), nil
}
