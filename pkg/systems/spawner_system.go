package systems

import (
	"math/rand/v2"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/utils"
)

// SpawnRequest 一次待插入的实体生成
// 生成器只产出请求，实体由调用方在本帧更新结束后创建并交给实体管理器
type SpawnRequest struct {
	Archetype components.Archetype
	Position  utils.Vec2f
	Parent    ecs.EntityID // 发出请求的生成器所在实体，0 表示无
}

// SpawnerSystem 推进所有生成器
type SpawnerSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewSpawnerSystem 创建生成器系统，rng 用于水平偏移
func NewSpawnerSystem(em *ecs.EntityManager, rng *rand.Rand) *SpawnerSystem {
	return &SpawnerSystem{entityManager: em, rng: rng}
}

// Update 累计计时并返回本帧的生成请求
// 父实体已死亡的生成器不再计时
func (s *SpawnerSystem) Update(dt float64) []SpawnRequest {
	em := s.entityManager
	var requests []SpawnRequest
	for _, id := range ecs.GetEntitiesWith2[*components.SpawnerComponent, *components.PositionComponent](em) {
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && health.IsDepleted() {
			continue
		}
		spawner, _ := ecs.GetComponent[*components.SpawnerComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		spawner.Timer += dt
		if !spawner.CanSpawn() {
			continue
		}
		spawner.Timer = 0
		spawner.AliveCount++
		spawner.TotalSpawned++

		offset := 0.0
		if spawner.Jitter > 0 {
			offset = (s.rng.Float64()*2 - 1) * spawner.Jitter
		}
		requests = append(requests, SpawnRequest{
			Archetype: spawner.Archetype,
			Position:  pos.Pos.Add(utils.V2(offset, 0)),
			Parent:    id,
		})
	}
	return requests
}
