package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/sqwad/config"
	"github.com/milk9111/sqwad/screen"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	cfg  config.Config
	app  *screen.App
	face ebtext.Face

	// menuUI holds the clickable buttons of the displayed menu. It is
	// rebuilt whenever a new menu screen is displayed.
	menuUI      *ebitenui.UI
	menuFor     *screen.Menu
	menuButtons map[string]*widget.Button
}

func NewGame(cfg config.Config, app *screen.App) *Game {
	return &Game{
		cfg:  cfg,
		app:  app,
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	dt := min(1/float64(ebiten.TPS()), g.cfg.MaxDeltaTime)
	in := pollInput()

	g.syncMenuUI()
	if g.menuUI != nil {
		g.menuUI.Update()
	}

	g.app.Update(dt, in)
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	switch cur := g.app.Current().(type) {
	case *screen.GameplayScreen:
		g.drawWorld(dst, cur)
		g.drawHUD(dst, cur)
	case *screen.Menu:
		g.drawMenu(dst, cur)
		if g.menuUI != nil && g.menuFor == cur {
			g.menuUI.Draw(dst)
		}
	}

	if g.cfg.Debug {
		ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.2f  %s", ebiten.ActualFPS(), g.app.Manager()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
