package sino_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoscra/pimst-solver/sino"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, sino.DefaultConfig().Validate())
}

func TestConfig_Validate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*sino.Config)
	}{
		{"NO above SI", func(c *sino.Config) { c.NOThreshold = 0.9 }},
		{"NO equals SI", func(c *sino.Config) { c.NOThreshold = c.SIThreshold }},
		{"negative NO", func(c *sino.Config) { c.NOThreshold = -0.1 }},
		{"SI above one", func(c *sino.Config) { c.SIThreshold = 1.5 }},
		{"weights under one", func(c *sino.Config) { c.GraphTypeWeight = 0.30 }},
		{"weights over one", func(c *sino.Config) { c.DistanceWeight = 0.50 }},
		{"negative weight", func(c *sino.Config) {
			c.GraphTypeWeight = -0.1
			c.DistanceWeight = 0.8
		}},
		{"negative backtracks", func(c *sino.Config) { c.MaxBacktracks = -1 }},
		{"zero depth", func(c *sino.Config) { c.MaxDepth = 0 }},
		{"zero checkpoints", func(c *sino.Config) { c.MaxCheckpoints = 0 }},
		{"dead-end confidence above one", func(c *sino.Config) { c.DeadEndConfidence = 1.1 }},
		{"dead-end confidence negative", func(c *sino.Config) { c.DeadEndConfidence = -0.1 }},
		{"cost ratio below one", func(c *sino.Config) { c.DeadEndCostRatio = 0.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := sino.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), sino.ErrBadConfig)
		})
	}
}

func TestConfig_Validate_ZeroBacktracksAllowed(t *testing.T) {
	cfg := sino.DefaultConfig()
	cfg.MaxBacktracks = 0
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate_WeightTolerance(t *testing.T) {
	// A sum within 1e-3 of 1.0 passes; human-edited round numbers carry
	// decimal noise.
	cfg := sino.DefaultConfig()
	cfg.GraphTypeWeight = 0.4004
	require.NoError(t, cfg.Validate())

	cfg.GraphTypeWeight = 0.41
	require.ErrorIs(t, cfg.Validate(), sino.ErrBadConfig)
}

func TestConfig_Classify_Boundaries(t *testing.T) {
	cfg := sino.DefaultConfig() // SI at 0.80, NO at 0.20

	cases := []struct {
		conf float64
		want sino.DecisionType
	}{
		{1.00, sino.SI},
		{0.80, sino.SI}, // inclusive
		{0.79, sino.SINO},
		{0.50, sino.SINO},
		{0.21, sino.SINO},
		{0.20, sino.NO}, // inclusive
		{0.00, sino.NO},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, cfg.Classify(tc.conf), "confidence %.2f", tc.conf)
	}
}
