package option_test

import (
	"testing"

	"go.llib.dev/arraylist/port/option"
	"go.llib.dev/testcase/assert"
)

type SampleConfig struct {
	Foo string
	Bar int
}

func (c *SampleConfig) Init() { c.Bar = 42 }

func TestToConfig(t *testing.T) {
	t.Run("defaults from Init", func(t *testing.T) {
		c := option.ToConfig[SampleConfig, option.Func[SampleConfig]](nil)
		assert.Equal(t, SampleConfig{Bar: 42}, c)
	})
	t.Run("options applied in order", func(t *testing.T) {
		c := option.ToConfig[SampleConfig]([]option.Func[SampleConfig]{
			func(c *SampleConfig) { c.Foo = "foo" },
			func(c *SampleConfig) { c.Bar = 1 },
			func(c *SampleConfig) { c.Bar++ },
		})
		assert.Equal(t, SampleConfig{Foo: "foo", Bar: 2}, c)
	})
}
