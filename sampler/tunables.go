package sampler

import (
	"os"
	"strconv"
)

// Tunables are process-wide settings applied to every sampler state a
// factory creates. They are captured once at factory construction,
// changing them afterwards has no effect on that factory.
type Tunables struct {
	// BorderColor is returned by WrapBlack lookups outside [0,1].
	BorderColor [4]float32

	MaxAnisotropy float32
}

// DefaultTunables returns the stock configuration: a transparent black
// border and anisotropy 16. TESSERA_MAX_ANISOTROPY overrides the latter.
func DefaultTunables() Tunables {
	tun := Tunables{
		BorderColor:   [4]float32{0, 0, 0, 0},
		MaxAnisotropy: 16,
	}

	if v := os.Getenv("TESSERA_MAX_ANISOTROPY"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			tun.MaxAnisotropy = float32(f)
		}
	}

	return tun
}
