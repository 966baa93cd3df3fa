package game

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevel() *Level {
	return NewLevel(&config.LevelConfig{
		Name:  "test",
		Size:  utils.V2(100.0, 50.0),
		Room:  utils.RectXYWH(0, 0, 100, 50),
		Rigid: []utils.Rect{utils.RectXYWH(0, 0, 100, 10), utils.RectXYWH(45, 10, 10, 30)},
		Stairs: []utils.Rect{
			utils.RectXYWH(80, 10, 10, 30),
		},
		PlayerSpawn: utils.V2(10.0, 10.0),
	})
}

func TestLevel_LineOfSight(t *testing.T) {
	l := testLevel()
	assert.False(t, l.LineOfSight(utils.V2(20.0, 20.0), utils.V2(70.0, 20.0)), "the pillar blocks the view")
	assert.True(t, l.LineOfSight(utils.V2(20.0, 45.0), utils.V2(70.0, 45.0)), "above the pillar")
	assert.True(t, l.LineOfSight(utils.V2(60.0, 20.0), utils.V2(70.0, 20.0)))
}

func TestLevel_OnStair(t *testing.T) {
	l := testLevel()
	assert.True(t, l.OnStair(utils.RectXYWH(78, 10, 4, 8)))
	assert.False(t, l.OnStair(utils.RectXYWH(70, 10, 4, 8)))
}

func TestLevel_QueueAttack(t *testing.T) {
	l := testLevel()
	l.QueueAttack(components.Attack{Damage: 3})
	l.QueueAttack(components.Attack{Damage: 5, PlayerFriendly: true})
	require.Len(t, l.Attacks, 2)
	assert.Equal(t, 5.0, l.Attacks[1].Damage)
}

func TestNewLevel_CopiesGeometry(t *testing.T) {
	cfg := &config.LevelConfig{Rigid: []utils.Rect{utils.RectXYWH(0, 0, 1, 1)}}
	l := NewLevel(cfg)
	cfg.Rigid[0] = utils.RectXYWH(5, 5, 1, 1)
	assert.Equal(t, utils.RectXYWH(0, 0, 1, 1), l.Colliders[0])
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = NewLogger(config.LoggingConfig{Level: "nonsense", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1), "unknown level falls back to info")

	assert.NotNil(t, OrNop(nil))
}
