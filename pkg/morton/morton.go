// Package morton encodes latitude/longitude pairs as 64-bit Z-order
// curve codes.
//
// Latitude and longitude are shifted to [0, 180] and [0, 360], scaled to
// fixed point with seven decimals and truncated to 32 bits each. Bit i of
// the latitude lands on bit 2i of the code and bit i of the longitude on
// bit 2i+1.
package morton

import (
	"fmt"

	"github.com/1F47E/geo-bounds/pkg/models"
)

// Code is a Morton (Z-order) code.
type Code uint64

const (
	scale = 1e7

	// evenBits selects the latitude bit plane, oddBits the longitude one.
	evenBits = 0x5555555555555555
	oddBits  = 0xAAAAAAAAAAAAAAAA
)

// Encode returns the Morton code of (lat, lon). The fixed point
// conversion truncates, so decoding the result may come back up to 1e-7
// degrees below the input.
func Encode(lat, lon float64) (Code, error) {
	return EncodeLocation(models.Location{Lat: lat, Lon: lon})
}

// EncodeLocation is Encode for a Location.
func EncodeLocation(loc models.Location) (Code, error) {
	if err := loc.Validate(); err != nil {
		return 0, fmt.Errorf("morton encode: %w", err)
	}
	y := uint32((loc.Lat - models.MinLat) * scale)
	x := uint32((loc.Lon - models.MinLon) * scale)
	return Code(spread(y) | spread(x)<<1), nil
}

// Decode returns the location of a code. Any code decodes without error,
// although codes not produced by Encode may decode outside the valid
// coordinate ranges.
func Decode(c Code) models.Location {
	y := compact(uint64(c))
	x := compact(uint64(c) >> 1)
	return models.Location{
		Lat: float64(y)/scale + models.MinLat,
		Lon: float64(x)/scale + models.MinLon,
	}
}

// Distance returns the bit-plane distance between two codes: the absolute
// difference of their latitude planes and of their longitude planes, each
// masked back onto its own plane and combined.
//
// Distance is a coarse locality hint for ranking, not a metric. It is zero
// for equal codes and symmetric, but it does not grow monotonically with
// the physical distance between the locations, especially where a carry
// crosses a high bit, and it has no notion of the antimeridian or poles.
func Distance(a, b Code) Code {
	return Code(absDiff(uint64(a)&evenBits, uint64(b)&evenBits)&evenBits |
		absDiff(uint64(a)&oddBits, uint64(b)&oddBits)&oddBits)
}

// String formats the code as an unsigned decimal.
func (c Code) String() string {
	return fmt.Sprintf("%d", uint64(c))
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// spread moves bit i of v to bit 2i.
func spread(v uint32) uint64 {
	x := uint64(v)
	x = (x | x<<16) & 0x0000FFFF0000FFFF
	x = (x | x<<8) & 0x00FF00FF00FF00FF
	x = (x | x<<4) & 0x0F0F0F0F0F0F0F0F
	x = (x | x<<2) & 0x3333333333333333
	x = (x | x<<1) & 0x5555555555555555
	return x
}

// compact gathers the even bits of v into the low 32 bits.
func compact(v uint64) uint32 {
	x := v & 0x5555555555555555
	x = (x | x>>1) & 0x3333333333333333
	x = (x | x>>2) & 0x0F0F0F0F0F0F0F0F
	x = (x | x>>4) & 0x00FF00FF00FF00FF
	x = (x | x>>8) & 0x0000FFFF0000FFFF
	x = (x | x>>16) & 0x00000000FFFFFFFF
	return uint32(x)
}
