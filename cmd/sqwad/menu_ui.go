package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sqwad/screen"
	"github.com/milk9111/sqwad/ui"
)

var (
	panelColor   = color.NRGBA{R: 0x1d, G: 0x1d, B: 0x2b, A: 0xff}
	borderColor  = color.NRGBA{R: 0xe8, G: 0x4a, B: 0x5f, A: 0xff}
	textColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	mutedColor   = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	backdropFill = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
)

// panelText is what each hideable element shows, line by line.
var panelText = map[string][]string{
	"sqwad": {"S Q W A D"},
	"controls": {
		"Move: WASD / arrows / left stick",
		"Rotate: Q, E / right stick",
		"Fire: space / click",
		"Select: enter / space",
	},
	"credits": {
		"Design and code: the Sqwad team",
		"Made with Ebitengine",
	},
}

var panelSize = map[string][2]float32{
	"sqwad":    {240, 60},
	"controls": {320, 110},
	"credits":  {320, 80},
}

// syncMenuUI rebuilds the ebitenui tree when a different menu is shown and
// mirrors the menu's focus and enabled state onto it.
func (g *Game) syncMenuUI() {
	m, ok := g.app.Current().(*screen.Menu)
	if !ok {
		g.menuUI, g.menuFor, g.menuButtons = nil, nil, nil
		return
	}
	if m != g.menuFor {
		g.menuUI, g.menuButtons = g.newMenuUI(m)
		g.menuFor = m
	}

	focused, _ := m.Buttons().Focused()
	enabled := m.Buttons().Enabled()
	for _, b := range m.Buttons().Buttons() {
		btn := g.menuButtons[b.Name]
		if btn == nil {
			continue
		}
		btn.GetWidget().Disabled = !enabled
		label := b.Label
		if b.Name == focused.Name {
			label = "> " + label + " <"
		}
		btn.Text().Label = label
	}
}

func (g *Game) newMenuUI(m *screen.Menu) (*ebitenui.UI, map[string]*widget.Button) {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	btnDisabled := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})
	face := g.face
	btnTextColor := &widget.ButtonTextColor{Idle: textColor, Disabled: mutedColor}

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	buttons := make(map[string]*widget.Button)
	for _, b := range m.Buttons().Buttons() {
		name := b.Name
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg, Disabled: btnDisabled}),
			widget.ButtonOpts.Text(b.Label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(200, 28),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.Buttons().Focus(name)
				m.Press(name)
			}),
		)
		buttons[name] = btn
		column.AddChild(btn)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(column)
	return &ebitenui.UI{Container: root}, buttons
}

// drawMenu draws every active hideable element as a panel faded by its
// alpha.
func (g *Game) drawMenu(dst *ebiten.Image, m *screen.Menu) {
	dst.Fill(backdropFill)
	for _, h := range m.Canvas().Elements() {
		if !h.Active() {
			continue
		}
		g.drawPanel(dst, h)
	}
}

func (g *Game) drawPanel(dst *ebiten.Image, h *ui.Hideable) {
	size, ok := panelSize[h.Name]
	if !ok {
		size = [2]float32{200, 60}
	}
	pos := h.Position()
	x := float32(pos.X) - size[0]/2
	y := float32(pos.Y) - size[1]/2
	alpha := float32(h.Alpha())

	vector.FillRect(dst, x, y, size[0], size[1], fade(panelColor, alpha), false)
	vector.StrokeRect(dst, x, y, size[0], size[1], 2, fade(borderColor, alpha), false)

	for i, line := range panelText[h.Name] {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(float64(x)+12, float64(y)+12+float64(i)*18)
		op.ColorScale.ScaleWithColor(textColor)
		op.ColorScale.ScaleAlpha(alpha)
		ebtext.Draw(dst, line, g.face, op)
	}
}

func fade(c color.NRGBA, alpha float32) color.NRGBA {
	c.A = uint8(float32(c.A) * max(0, min(alpha, 1)))
	return c
}
