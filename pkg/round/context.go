package round

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/physics"
)

// Context 单局数据
//
// 风速与地面几何在开局时采样一次，整局不变，
// 因此固定随机种子即可复现同样的得分。
type Context struct {
	ID        uuid.UUID
	WindSpeed float64      // 水平加速度，也计入得分
	Ground    physics.Rect // 地面最终位置
	Score     float64

	ParachuteDeployed   bool
	ParachuteDeployedAt float64 // 开伞时的回合时钟（秒）

	// Clock 回合时钟，每次 Update 累加 dt
	Clock float64
}

// NewContext 按配置采样一局的风速与地面
//
// 参数:
//   - cfg: 单局配置
//   - rng: 随机源，所有采样都来自它
//
// 返回:
//   - *Context: 新的回合数据
func NewContext(cfg *config.RoundConfig, rng *rand.Rand) *Context {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.New()
	}

	wind := cfg.Wind.Sample(rng)
	width := float64(cfg.Ground.Width.SampleInt(rng))
	height := float64(cfg.Ground.Height.SampleInt(rng))

	x := 0.0
	if span := int(cfg.Screen.Width - width); span > 0 {
		x = float64(rng.Intn(span))
	}

	return &Context{
		ID:        id,
		WindSpeed: wind,
		Ground: physics.Rect{
			X:      x,
			Y:      cfg.Screen.Height - height,
			Width:  width,
			Height: height,
		},
	}
}

// ParachuteDuration 开伞至今的时长（秒），未开伞为 0
func (c *Context) ParachuteDuration() float64 {
	if !c.ParachuteDeployed {
		return 0
	}
	return c.Clock - c.ParachuteDeployedAt
}

// shortID 日志用的短ID
func (c *Context) shortID() string {
	return c.ID.String()[:8]
}
