package config

import (
	"fmt"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/embedded"
	"github.com/gonewx/ratlair/pkg/utils"
	"gopkg.in/yaml.v3"
)

// 关卡文件采用瓦片编辑器导出的 JSON 格式：一个瓦片网格 + 一组命名对象。
// JSON 是 YAML 的子集，这里直接用 yaml.v3 解码。
//
// 文件中的行与对象 y 坐标自上而下，世界坐标 Y 轴向上，加载时完成翻转。

const (
	// LayerRigid 刚体瓦片层名
	LayerRigid = "rigid"
	// LayerStairs 楼梯瓦片层名
	LayerStairs = "stairs"
	// ObjectPlayer 玩家出生点对象名
	ObjectPlayer = "player"
	// ObjectRoom 房间边界对象名
	ObjectRoom = "room"
)

type tiledObject struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type tiledLayer struct {
	Type    string        `yaml:"type"` // "tilelayer" 或 "objectgroup"
	Name    string        `yaml:"name"`
	Data    []int         `yaml:"data"`
	Objects []tiledObject `yaml:"objects"`
}

type tiledMap struct {
	Name       string       `yaml:"name"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	TileWidth  float64      `yaml:"tilewidth"`
	TileHeight float64      `yaml:"tileheight"`
	Layers     []tiledLayer `yaml:"layers"`
}

// SpawnPoint 关卡中的敌人出生点
type SpawnPoint struct {
	Archetype components.Archetype
	Position  utils.Vec2f
}

// LevelConfig 解析后的关卡数据
type LevelConfig struct {
	Name        string
	Size        utils.Vec2f  // 关卡世界尺寸
	Rigid       []utils.Rect // 刚体碰撞盒（按行合并）
	Stairs      []utils.Rect // 楼梯区域
	Room        utils.Rect   // 房间边界（镜头限制范围）
	PlayerSpawn utils.Vec2f
	Spawns      []SpawnPoint
}

// LoadLevel 从文件加载关卡
func LoadLevel(path string) (*LevelConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	level, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel 解析关卡 JSON
func ParseLevel(data []byte) (*LevelConfig, error) {
	var m tiledMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if m.Width <= 0 || m.Height <= 0 || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid map dimensions %dx%d tiles of %vx%v", m.Width, m.Height, m.TileWidth, m.TileHeight)
	}

	level := &LevelConfig{
		Name: m.Name,
		Size: utils.V2(float64(m.Width)*m.TileWidth, float64(m.Height)*m.TileHeight),
	}
	level.Room = utils.RectXYWH(0, 0, level.Size.X, level.Size.Y)

	hasPlayer := false
	for _, layer := range m.Layers {
		switch layer.Type {
		case "tilelayer":
			if len(layer.Data) != m.Width*m.Height {
				return nil, fmt.Errorf("layer %s: expected %d tiles, got %d", layer.Name, m.Width*m.Height, len(layer.Data))
			}
			rects := mergeTileRows(layer.Data, m.Width, m.Height, m.TileWidth, m.TileHeight)
			switch layer.Name {
			case LayerRigid:
				level.Rigid = append(level.Rigid, rects...)
			case LayerStairs:
				level.Stairs = append(level.Stairs, rects...)
			default:
				// 装饰层不影响模拟
			}
		case "objectgroup":
			for _, obj := range layer.Objects {
				switch obj.Name {
				case ObjectRoom:
					level.Room = utils.RectXYWH(obj.X, level.Size.Y-obj.Y-obj.Height, obj.Width, obj.Height)
				case ObjectPlayer:
					level.PlayerSpawn = utils.V2(obj.X, level.Size.Y-obj.Y)
					hasPlayer = true
				default:
					archetype, err := components.ParseArchetype(obj.Name)
					if err != nil {
						return nil, fmt.Errorf("object at (%v,%v): %w", obj.X, obj.Y, err)
					}
					if archetype == components.ArchetypePlayer {
						continue
					}
					level.Spawns = append(level.Spawns, SpawnPoint{
						Archetype: archetype,
						Position:  utils.V2(obj.X, level.Size.Y-obj.Y),
					})
				}
			}
		default:
			return nil, fmt.Errorf("layer %s: unsupported type %q", layer.Name, layer.Type)
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("level has no %q object", ObjectPlayer)
	}
	return level, nil
}

// mergeTileRows 把每一行中连续的非空瓦片合并为一个矩形
func mergeTileRows(data []int, width, height int, tw, th float64) []utils.Rect {
	var rects []utils.Rect
	for row := 0; row < height; row++ {
		y := float64(height-1-row) * th
		start := -1
		for col := 0; col <= width; col++ {
			solid := col < width && data[row*width+col] != 0
			if solid && start < 0 {
				start = col
			}
			if !solid && start >= 0 {
				rects = append(rects, utils.RectXYWH(float64(start)*tw, y, float64(col-start)*tw, th))
				start = -1
			}
		}
	}
	return rects
}
