package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linesplice/pkg/config"
	"github.com/yaklabco/linesplice/pkg/plan"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	enabled := true
	disabled := false

	t.Run("nil handling", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		assert.Same(t, cfg, merge(nil, cfg))
		assert.Same(t, cfg, merge(cfg, nil))
	})

	t.Run("empty override keeps base", func(t *testing.T) {
		t.Parallel()
		base := config.NewConfig()
		got := merge(base, &config.Config{})
		assert.Equal(t, base.Target, got.Target)
		assert.Equal(t, base.Steps, got.Steps)
		assert.Equal(t, base.Backups, got.Backups)
	})

	t.Run("explicit false overrides true", func(t *testing.T) {
		t.Parallel()
		base := &config.Config{Backups: config.BackupsConfig{Enabled: &enabled}}
		got := merge(base, &config.Config{Backups: config.BackupsConfig{Enabled: &disabled}})
		require.NotNil(t, got.Backups.Enabled)
		assert.False(t, *got.Backups.Enabled)
	})

	t.Run("steps replace whole plan", func(t *testing.T) {
		t.Parallel()
		override := []plan.Step{{Name: "only", Action: plan.ActionDelete, Start: 0, End: 1}}
		got := merge(config.NewConfig(), &config.Config{Steps: override})
		assert.Equal(t, override, got.Steps)
	})

	t.Run("does not mutate base", func(t *testing.T) {
		t.Parallel()
		base := config.NewConfig()
		_ = merge(base, &config.Config{Target: "other.html", Yes: true})
		assert.Equal(t, plan.DefaultTarget, base.Target)
		assert.False(t, base.Yes)
	})
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	got := MergeAll(
		config.NewConfig(),
		&config.Config{Target: "a.html"},
		&config.Config{Content: "b.json"},
		&config.Config{Target: "c.html"},
	)
	assert.Equal(t, "c.html", got.Target)
	assert.Equal(t, "b.json", got.Content)
}
