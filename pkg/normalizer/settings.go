package normalizer

import "github.com/go-playground/validator/v10"

// Framework defaults for the icon heuristic. These are empirical constants;
// they live on Settings rather than in the algorithm so they can be
// calibrated per deployment.
const (
	DefaultMaxIconSize     = 48.0
	DefaultSquareTolerance = 0.5
)

// IconThresholds configures the heuristic that classifies nodes as
// flattenable icons. Nil fields select the package defaults; explicit
// values, including zero, are honored as given.
type IconThresholds struct {
	// MaxSize is the largest dimension, in design units, a node may have
	// and still be considered an icon.
	MaxSize *float64 `json:"maxSize,omitempty"`
	// SquareTolerance is the allowed |width-height| difference as a
	// fraction of the larger dimension. Zero admits exact squares only.
	SquareTolerance *float64 `json:"squareTolerance,omitempty"`
}

// Settings controls one conversion. Framework is consumed only by the
// downstream generator but is validated here because every request carries
// it; UseColorVariables gates variable resolution and EmbedVectors gates
// the vector/icon resolver entirely.
type Settings struct {
	Framework         string         `json:"framework" validate:"required,oneof=html tailwind flutter swiftui compose"`
	UseColorVariables bool           `json:"useColorVariables"`
	EmbedVectors      bool           `json:"embedVectors"`
	Icon              IconThresholds `json:"icon"`
}

var validate = validator.New()

// Validate checks that the settings are complete and within range.
func (s Settings) Validate() error {
	return validate.Struct(s)
}

// withDefaults returns a copy with unset thresholds replaced by the package
// defaults.
func (s Settings) withDefaults() Settings {
	if s.Icon.MaxSize == nil {
		v := float64(DefaultMaxIconSize)
		s.Icon.MaxSize = &v
	}
	if s.Icon.SquareTolerance == nil {
		v := float64(DefaultSquareTolerance)
		s.Icon.SquareTolerance = &v
	}
	return s
}
