// internal/state/game_state.go
package state

import (
	game "go-shadow-defend/internal/app"
	"go-shadow-defend/internal/config"
	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState: состояние игры. Ввода нет, каждая волна стартует сразу после
// предыдущей.
type GameState struct {
	game        *game.Game
	statusPanel *ui.StatusPanel
	buyPanel    *ui.BuyPanel
}

func NewGameState(g *game.Game) *GameState {
	return &GameState{
		game:        g,
		statusPanel: ui.NewStatusPanel(0, config.ScreenHeight-config.StatusPanelHeight, config.ScreenWidth),
		buyPanel:    ui.NewBuyPanel(0, 0, config.ScreenWidth),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update() {
	if g.game.Status() == game.AwaitingStart {
		g.game.StartWave()
	}
	g.game.Update()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.drawMap(screen)
	g.drawDefences(screen)
	g.drawEnemies(screen)
	g.drawProjectiles(screen)

	lib := g.game.Library()
	towers := make([]defs.TowerDefinition, 0, len(lib.TowerLibrary))
	for _, kind := range []defs.DefenceKind{defs.DefenceTank, defs.DefenceSuperTank, defs.DefenceAirSupport} {
		if def, ok := lib.Tower(kind); ok {
			towers = append(towers, def)
		}
	}
	g.buyPanel.Draw(screen, towers, g.game.Account.Money())
	g.statusPanel.Draw(screen, ui.StatusInfo{
		Wave:      g.game.Level.WaveSystem.WaveNumber(),
		Phase:     g.game.Level.WaveSystem.State().String(),
		Timescale: g.game.Timescale(),
		Status:    g.game.Status().String(),
		Lives:     g.game.Account.Lives(),
		Level:     g.game.Level.Map.Name,
	})
}

func (g *GameState) drawMap(screen *ebiten.Image) {
	m := g.game.Level.Map
	for _, r := range m.Blocked {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.BlockedColor, true)
	}
	for i := 1; i < len(m.Path); i++ {
		a, b := m.Path[i-1], m.Path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.PathStrokeWidth, config.PathColor, true)
	}
}

func (g *GameState) drawDefences(screen *ebiten.Image) {
	ecs := g.game.Level.ECS
	for _, id := range ecs.TowerIDs() {
		pos := ecs.Positions[id]
		r := ecs.Renderables[id]
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
		if c, ok := ecs.Combats[id]; ok && ecs.Towers[id].Behavior == defs.BehaviorTurret {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(c.Radius), config.RangeStrokeWidth, config.RangeColor, true)
		}
	}
}

func (g *GameState) drawEnemies(screen *ebiten.Image) {
	ecs := g.game.Level.ECS
	for _, id := range ecs.EnemyIDs() {
		pos := ecs.Positions[id]
		r := ecs.Renderables[id]
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
	}
}

func (g *GameState) drawProjectiles(screen *ebiten.Image) {
	ecs := g.game.Level.ECS
	for _, id := range ecs.ProjectileIDs() {
		pos := ecs.Positions[id]
		r := ecs.Renderables[id]
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
	}
	for _, id := range ecs.ExplosiveIDs() {
		pos := ecs.Positions[id]
		exp := ecs.Explosives[id]
		r := ecs.Renderables[id]
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
		// радиус растёт по мере приближения взрыва
		if exp.Delay > 0 {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(exp.Radius*exp.Timer/exp.Delay), config.RangeStrokeWidth, config.ExplosiveColor, true)
		}
	}
}
