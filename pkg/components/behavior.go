package components

import "fmt"

// Archetype 实体原型，决定实体使用哪个行为状态机
type Archetype int

const (
	// ArchetypePlayer 玩家
	ArchetypePlayer Archetype = iota
	// ArchetypeRat 老鼠：地面近战
	ArchetypeRat
	// ArchetypeBat 蝙蝠：飞行，可在空中治疗
	ArchetypeBat
	// ArchetypeRatKing 鼠王：撕咬 + 翻滚冲刺攻击
	ArchetypeRatKing
	// ArchetypeRatNest 鼠巢：只负责生成老鼠，被摧毁时召唤鼠王
	ArchetypeRatNest
)

var archetypeNames = map[Archetype]string{
	ArchetypePlayer:  "player",
	ArchetypeRat:     "rat",
	ArchetypeBat:     "bat",
	ArchetypeRatKing: "rat_king",
	ArchetypeRatNest: "rat_nest",
}

func (a Archetype) String() string {
	if name, ok := archetypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// ParseArchetype 将配置中的名字解析为原型
func ParseArchetype(name string) (Archetype, error) {
	for a, n := range archetypeNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown archetype %q", name)
}

// AllArchetypes 全部原型
func AllArchetypes() []Archetype {
	return []Archetype{ArchetypePlayer, ArchetypeRat, ArchetypeBat, ArchetypeRatKing, ArchetypeRatNest}
}

// ArchetypeComponent 标识实体的原型
type ArchetypeComponent struct {
	Type Archetype
}

// PerceptionComponent 敌人的感知参数
type PerceptionComponent struct {
	SightDistance float64 // 视野距离（世界像素）
}

// ExpDropComponent 敌人被击杀时给予玩家的经验
type ExpDropComponent struct {
	Value int
}

// PlayerStatsComponent 玩家的成长数据
type PlayerStatsComponent struct {
	Exp   int
	Kills int
	// SplashPenalty 溅射惩罚 [0,1]：0 表示每个目标都吃满伤害，1 表示伤害被目标均分
	SplashPenalty float64
}
