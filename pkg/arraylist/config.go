package arraylist

import (
	"go.llib.dev/arraylist/pkg/logging"
	"go.llib.dev/arraylist/pkg/zerokit"
	"go.llib.dev/arraylist/port/option"
)

const (
	DefaultInitialCapacity = 10
	DefaultGrowthIncrement = 10
)

type Option interface {
	option.Option[Config]
}

type Config struct {
	// InitialCapacity is the number of slots allocated up front,
	// and the minimum capacity of the first allocation.
	InitialCapacity int
	// GrowthIncrement is the number of slots added to the capacity on reallocation.
	// It must be at least 1.
	GrowthIncrement int
	// GrowthFactor, when above 1, makes the capacity grow at least by this multiplier.
	GrowthFactor float64
	// Logger receives the debug events of buffer management.
	//
	// Default: logging.Default
	Logger *logging.Logger
}

var _ Option = Config{}

func (c *Config) Init() {
	c.InitialCapacity = DefaultInitialCapacity
	c.GrowthIncrement = DefaultGrowthIncrement
}

// Configure merges the non-zero fields of c into the target Config.
func (c Config) Configure(t *Config) {
	t.InitialCapacity = zerokit.Coalesce(c.InitialCapacity, t.InitialCapacity)
	t.GrowthIncrement = zerokit.Coalesce(c.GrowthIncrement, t.GrowthIncrement)
	t.GrowthFactor = zerokit.Coalesce(c.GrowthFactor, t.GrowthFactor)
	t.Logger = zerokit.Coalesce(c.Logger, t.Logger)
}

func (c Config) validate() error {
	if c.InitialCapacity < 0 {
		return ErrInvalidArgument.F("negative initial capacity: %d", c.InitialCapacity)
	}
	if c.GrowthIncrement < 1 {
		return ErrInvalidArgument.F("growth increment must be positive, got %d", c.GrowthIncrement)
	}
	if c.GrowthFactor < 0 || (0 < c.GrowthFactor && c.GrowthFactor < 1) {
		return ErrInvalidArgument.F("growth factor must be zero or at least 1, got %v", c.GrowthFactor)
	}
	return nil
}

func (c Config) logger() *logging.Logger {
	return zerokit.Coalesce(c.Logger, &logging.Default)
}

func WithInitialCapacity(n int) Option {
	return option.Func[Config](func(c *Config) { c.InitialCapacity = n })
}

func WithGrowthIncrement(n int) Option {
	return option.Func[Config](func(c *Config) { c.GrowthIncrement = n })
}

func WithGrowthFactor(f float64) Option {
	return option.Func[Config](func(c *Config) { c.GrowthFactor = f })
}

func WithLogger(l *logging.Logger) Option {
	return option.Func[Config](func(c *Config) { c.Logger = l })
}
