package components

import "github.com/gonewx/ratlair/pkg/ecs"

// SpawnerComponent 周期性生成实体的生成器，归父实体（如鼠巢）所有
// 不变量：AliveCount <= MaxAlive
// 生成器只计数，不持有被生成的实体，实体由关卡的实体管理器独占。
type SpawnerComponent struct {
	Period    float64   // 生成周期（秒）
	MaxTotal  int       // 最多生成总数
	MaxAlive  int       // 同时存活上限
	Archetype Archetype // 生成的原型
	Jitter    float64   // 水平随机偏移范围 [-Jitter, Jitter]

	Timer        float64 // 累计计时（秒）
	AliveCount   int     // 当前存活的子实体数
	TotalSpawned int     // 已生成总数
}

// CanSpawn 计时、存活上限和总数上限是否都允许生成
func (s *SpawnerComponent) CanSpawn() bool {
	return Reached(s.Timer, s.Period) && s.AliveCount < s.MaxAlive && s.TotalSpawned < s.MaxTotal
}

// ChildDied 子实体死亡时由行为系统调用
func (s *SpawnerComponent) ChildDied() {
	if s.AliveCount > 0 {
		s.AliveCount--
	}
}

// SpawnedByComponent 记录实体由哪个生成器生成（反向引用，仅用于死亡时递减计数）
type SpawnedByComponent struct {
	Spawner ecs.EntityID
}
