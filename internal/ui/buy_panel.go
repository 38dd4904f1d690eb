package ui

import (
	"fmt"
	"image/color"

	"go-shadow-defend/internal/config"
	"go-shadow-defend/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BuyPanel: верхняя панель с ценами башен и деньгами игрока.
type BuyPanel struct {
	X, Y, Width float32
}

func NewBuyPanel(x, y, width float32) *BuyPanel {
	return &BuyPanel{X: x, Y: y, Width: width}
}

// Draw выводит башни по порядку, недоступные по цене подсвечены красным.
func (p *BuyPanel) Draw(screen *ebiten.Image, towers []defs.TowerDefinition, money int) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, config.BuyPanelHeight, config.PanelColor, true)

	x := p.X + 64
	cy := p.Y + config.BuyPanelHeight/2
	for _, def := range towers {
		vector.DrawFilledCircle(screen, x, cy-10, def.Visuals.Radius, def.Visuals.RGBA(), true)
		price := color.Color(color.RGBA{0, 220, 0, 255})
		if money < def.Cost {
			price = color.RGBA{220, 0, 0, 255}
		}
		drawText(screen, def.Name, x-30, cy+12, config.TextLightColor)
		drawText(screen, fmt.Sprintf("$%d", def.Cost), x-30, cy+26, price)
		x += 120
	}

	drawText(screen, fmt.Sprintf("$%d", money), p.Width-120, cy-6, config.TextLightColor)
}
