package game

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/utils"
)

// Level 一局游戏的静态几何和攻击队列
// 实体本身由 ecs.EntityManager 持有，Level 只保存关卡数据和每帧共享的攻击列表
type Level struct {
	Name        string
	Size        utils.Vec2f
	Room        utils.Rect
	Colliders   []utils.Rect // 刚体碰撞盒，物理系统按顺序逐个推出
	Stairs      []utils.Rect
	PlayerSpawn utils.Vec2f
	Spawns      []config.SpawnPoint

	// Attacks 攻击队列，由行为系统追加、攻击系统结算
	Attacks []components.Attack
}

// NewLevel 根据关卡配置创建运行时关卡
func NewLevel(cfg *config.LevelConfig) *Level {
	return &Level{
		Name:        cfg.Name,
		Size:        cfg.Size,
		Room:        cfg.Room,
		Colliders:   append([]utils.Rect(nil), cfg.Rigid...),
		Stairs:      append([]utils.Rect(nil), cfg.Stairs...),
		PlayerSpawn: cfg.PlayerSpawn,
		Spawns:      append([]config.SpawnPoint(nil), cfg.Spawns...),
	}
}

// QueueAttack 把攻击加入队列
func (l *Level) QueueAttack(a components.Attack) {
	l.Attacks = append(l.Attacks, a)
}

// LineOfSight 线段 a→b 是否未被任何刚体碰撞盒遮挡
func (l *Level) LineOfSight(a, b utils.Vec2f) bool {
	for _, c := range l.Colliders {
		if c.IntersectsSegment(a, b) {
			return false
		}
	}
	return true
}

// OnStair 矩形是否与任意楼梯区域重叠
func (l *Level) OnStair(r utils.Rect) bool {
	for _, s := range l.Stairs {
		if r.Overlaps(s) {
			return true
		}
	}
	return false
}
