package ui

import (
	"fmt"
	"image/color"

	"go-shadow-defend/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// StatusInfo: данные нижней панели на один кадр.
type StatusInfo struct {
	Wave      int
	Phase     string
	Timescale float64
	Status    string
	Lives     int
	Level     string
}

// StatusPanel: нижняя панель: волна, скорость, состояние, жизни.
type StatusPanel struct {
	X, Y, Width float32
}

func NewStatusPanel(x, y, width float32) *StatusPanel {
	return &StatusPanel{X: x, Y: y, Width: width}
}

func (p *StatusPanel) Draw(screen *ebiten.Image, info StatusInfo) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, config.StatusPanelHeight, config.PanelColor, true)

	speedColor := color.Color(config.TextLightColor)
	if info.Timescale > config.DefaultTimescale {
		speedColor = color.RGBA{0, 220, 0, 255}
	}
	cells := []struct {
		s string
		c color.Color
	}{
		{fmt.Sprintf("Wave: %d (%s)", info.Wave, info.Phase), config.TextLightColor},
		{fmt.Sprintf("Time Scale: %.1f", info.Timescale), speedColor},
		{"Status: " + info.Status, config.TextLightColor},
		{fmt.Sprintf("Lives: %d", info.Lives), config.TextLightColor},
		{info.Level, config.TextLightColor},
	}
	step := p.Width / float32(len(cells))
	for i, cell := range cells {
		drawText(screen, cell.s, p.X+step*float32(i)+config.TextOffsetX, p.Y+config.TextOffsetY, cell.c)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
