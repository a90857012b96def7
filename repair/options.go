package repair

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Deterministic defaults for the repair pipeline (meters and degrees).
const (
	DefaultGridSize       = 0.1
	DefaultSnapTolerance  = 0.3
	DefaultAngleTolerance = 2.0
	DefaultMaxPasses      = 10
	DefaultMinWallLength  = 0.3
)

// loopGapFactor scales SnapTolerance into the widest exterior-loop seam
// stage 5 is allowed to force shut.
const loopGapFactor = 10

// Options configures all six repair stages. Options are immutable per
// call; stages receive them by value.
type Options struct {
	// GridSize is the quantization unit for wall coordinates.
	GridSize float64 `yaml:"grid_size"`
	// SnapTolerance is the fixed radius within which a dangling endpoint
	// may be snapped onto a connected one. It is not decayed across
	// passes.
	SnapTolerance float64 `yaml:"snap_tolerance"`
	// AngleTolerance is the maximum deviation in degrees from an
	// orthogonal angle that stage 2 will correct.
	AngleTolerance float64 `yaml:"angle_tolerance"`
	// MaxPasses bounds the dangling-correction loop.
	MaxPasses int `yaml:"max_passes"`
	// EnforceOrthogonal enables stage 2. Plans with intentional diagonal
	// walls disable it.
	EnforceOrthogonal bool `yaml:"enforce_orthogonal"`
	// MinWallLength is the shortest wall stage 6 keeps.
	MinWallLength float64 `yaml:"min_wall_length"`
}

// DefaultOptions returns the pipeline defaults: 0.1 m grid, 0.3 m snap
// tolerance, 2° angle tolerance, 10 passes, orthogonal enforcement on,
// 0.3 m minimum wall length.
func DefaultOptions() Options {
	return Options{
		GridSize:          DefaultGridSize,
		SnapTolerance:     DefaultSnapTolerance,
		AngleTolerance:    DefaultAngleTolerance,
		MaxPasses:         DefaultMaxPasses,
		EnforceOrthogonal: true,
		MinWallLength:     DefaultMinWallLength,
	}
}

// Validate checks the options against their sentinels. Run calls this
// before touching the plan.
func (o Options) Validate() error {
	if o.GridSize <= 0 {
		return ErrBadGridSize
	}
	if o.SnapTolerance <= 0 {
		return ErrBadTolerance
	}
	if o.AngleTolerance <= 0 || o.AngleTolerance >= 45 {
		return ErrBadTolerance
	}
	if o.MaxPasses < 1 {
		return ErrBadPassLimit
	}
	if o.MinWallLength < 0 {
		return ErrBadMinLength
	}
	return nil
}

// maxLoopGap is the widest exterior seam stage 5 forces shut.
func (o Options) maxLoopGap() float64 {
	return o.SnapTolerance * loopGapFactor
}

// LoadOptions layers a YAML document over DefaultOptions. Fields absent
// from the document keep their defaults.
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptionsFile reads a YAML options file. See LoadOptions.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return LoadOptions(data)
}
