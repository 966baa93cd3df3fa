package config

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 4x3 瓦片、每格 10 像素的小关卡
//
//	行 0: . . . .
//	行 1: . # # .
//	行 2: # # . #
const testLevel = `{
  "name": "test",
  "width": 4, "height": 3, "tilewidth": 10, "tileheight": 10,
  "layers": [
    {"type": "tilelayer", "name": "rigid", "data": [0,0,0,0, 0,1,1,0, 1,1,0,2]},
    {"type": "tilelayer", "name": "stairs", "data": [0,0,0,1, 0,0,0,1, 0,0,0,0]},
    {"type": "tilelayer", "name": "decor", "data": [1,1,1,1, 1,1,1,1, 1,1,1,1]},
    {"type": "objectgroup", "name": "objects", "objects": [
      {"name": "player", "x": 5, "y": 20},
      {"name": "rat", "x": 25, "y": 10},
      {"name": "rat_nest", "x": 35, "y": 30},
      {"name": "room", "x": 0, "y": 10, "width": 40, "height": 20}
    ]}
  ]
}`

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel([]byte(testLevel))
	require.NoError(t, err)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, utils.V2(40.0, 30.0), level.Size)

	// 行 1 合并为一段，行 2 被空格拆成两段
	assert.Equal(t, []utils.Rect{
		utils.RectXYWH(10, 10, 20, 10),
		utils.RectXYWH(0, 0, 20, 10),
		utils.RectXYWH(30, 0, 10, 10),
	}, level.Rigid)
	assert.Equal(t, []utils.Rect{
		utils.RectXYWH(30, 20, 10, 10),
		utils.RectXYWH(30, 10, 10, 10),
	}, level.Stairs)

	assert.Equal(t, utils.V2(5.0, 10.0), level.PlayerSpawn)
	assert.Equal(t, utils.RectXYWH(0, 0, 40, 20), level.Room)
	assert.Equal(t, []SpawnPoint{
		{Archetype: components.ArchetypeRat, Position: utils.V2(25.0, 20.0)},
		{Archetype: components.ArchetypeRatNest, Position: utils.V2(35.0, 0.0)},
	}, level.Spawns)
}

func TestParseLevel_RoomDefaultsToMap(t *testing.T) {
	data := `{"width": 2, "height": 2, "tilewidth": 8, "tileheight": 8, "layers": [
	  {"type": "objectgroup", "objects": [{"name": "player", "x": 1, "y": 1}]}]}`
	level, err := ParseLevel([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, utils.RectXYWH(0, 0, 16, 16), level.Room)
	assert.Empty(t, level.Rigid)
}

func TestParseLevel_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "缺少玩家",
			data:    `{"width": 1, "height": 1, "tilewidth": 8, "tileheight": 8, "layers": []}`,
			wantErr: "no \"player\" object",
		},
		{
			name: "未知对象",
			data: `{"width": 1, "height": 1, "tilewidth": 8, "tileheight": 8, "layers": [
			  {"type": "objectgroup", "objects": [{"name": "player"}, {"name": "dragon"}]}]}`,
			wantErr: "unknown archetype",
		},
		{
			name: "瓦片数量不符",
			data: `{"width": 2, "height": 2, "tilewidth": 8, "tileheight": 8, "layers": [
			  {"type": "tilelayer", "name": "rigid", "data": [1, 1, 1]}]}`,
			wantErr: "expected 4 tiles, got 3",
		},
		{
			name:    "尺寸非法",
			data:    `{"width": 0, "height": 2, "tilewidth": 8, "tileheight": 8, "layers": []}`,
			wantErr: "invalid map dimensions",
		},
		{
			name: "未知图层类型",
			data: `{"width": 1, "height": 1, "tilewidth": 8, "tileheight": 8, "layers": [
			  {"type": "imagelayer", "name": "sky"}]}`,
			wantErr: "unsupported type",
		},
		{
			name:    "不是 JSON",
			data:    `{"width": [`,
			wantErr: "failed to parse level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadLevel_Cellar(t *testing.T) {
	level, err := LoadLevel("../../data/levels/cellar.json")
	require.NoError(t, err)

	assert.NotEmpty(t, level.Rigid)
	assert.NotEmpty(t, level.Stairs)
	assert.NotEmpty(t, level.Spawns)
	assert.True(t, level.Room.Contains(level.PlayerSpawn), "player spawns inside the room")
	for _, r := range level.Rigid {
		assert.False(t, r.Contains(level.PlayerSpawn.Add(utils.V2(0.0, 1.0))), "player must not spawn inside a wall")
	}
}
