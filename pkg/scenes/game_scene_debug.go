package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawDebug 在左上角输出回合状态（按 D 切换）
func (s *GameScene) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.debugText(), 4, 4)
}

func (s *GameScene) debugText() string {
	ctx := s.round.Context()
	body := s.round.Body()

	chute := "closed"
	if ctx.ParachuteDeployed {
		chute = fmt.Sprintf("open @ %.2fs", ctx.ParachuteDeployedAt)
	}

	return fmt.Sprintf(
		"round %s\nstate %s  t=%.2fs\nwind %.1f  ground %.0fx%.0f @ %.0f\nvel (%.1f, %.1f) |v|=%.1f\nparachute %s\nTPS %.1f",
		ctx.ID.String()[:8],
		s.round.State(), ctx.Clock,
		ctx.WindSpeed, ctx.Ground.Width, ctx.Ground.Height, ctx.Ground.X,
		body.VX, body.VY, body.Speed(),
		chute,
		ebiten.ActualTPS(),
	)
}
