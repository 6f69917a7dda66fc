package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/blocky/common"
)

// MenuUI is the main menu: one button per menu item, stacked and centred.
type MenuUI struct {
	UI      *ebitenui.UI
	buttons []*widget.Button
	labels  []string
}

// NewMenuUI builds buttons for every item of the session's menu. Clicking a
// button activates its item.
func NewMenuUI(g *Game) *MenuUI {
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: colornames.White, Hover: colornames.Red}

	title := widget.NewText(
		widget.TextOpts.Text("BLOCKY!", &face, colornames.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	m := &MenuUI{labels: g.sess.Menu.Items()}
	for i, label := range m.labels {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(common.BaseWidth/4, 0),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.sess.MenuClick(i)
			}),
		)
		m.buttons = append(m.buttons, btn)
		panel.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	m.UI = &ebitenui.UI{Container: root}
	return m
}

// Mark shows the keyboard selection by bracketing the selected label.
func (m *MenuUI) Mark(selected int) {
	for i, btn := range m.buttons {
		label := m.labels[i]
		if i == selected {
			label = "> " + label + " <"
		}
		if text := btn.Text(); text != nil {
			text.Label = label
		}
	}
}
