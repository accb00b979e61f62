package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/glide/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PresetsUI is the preset picker along the bottom of the screen.
type PresetsUI struct {
	UI *ebitenui.UI

	// Called with the index of the clicked preset
	OnSelect func(index int)

	presets  *cfg.Presets
	selected int
	buttons  []*widget.Button
	face     text.Face
}

func NewPresetsUI(presets *cfg.Presets, selected int, onSelect func(index int)) *PresetsUI {
	pui := &PresetsUI{
		OnSelect: onSelect,
		selected: selected,
	}
	pui.loadFonts()
	pui.Rebuild(presets)
	return pui
}

func (pui *PresetsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	pui.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Panel.FontSize,
	}
}

// Rebuild recreates the buttons for a new preset list.
func (pui *PresetsUI) Rebuild(presets *cfg.Presets) {
	pui.presets = presets
	pui.buttons = pui.buttons[:0]

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(cfg.Panel.Spacing)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Panel.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(cfg.Panel.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	for _, row := range presetRows(len(presets.Presets), cfg.Panel.MaxPerRow) {
		rowContainer := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(cfg.Panel.Spacing),
			)),
		)
		for i := row[0]; i < row[1]; i++ {
			rowContainer.AddChild(pui.buildButton(i))
		}
		panel.AddChild(rowContainer)
	}

	rootContainer.AddChild(panel)
	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	pui.Select(pui.selected)
}

func (pui *PresetsUI) buildButton(index int) *widget.Button {
	idx := index // Capture for closure
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.ButtonWidth, cfg.Panel.ButtonHeight),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(presetLabel(pui.presets.Presets[index], index, false), &pui.face, &widget.ButtonTextColor{
			Idle:    cfg.Panel.TextColor,
			Hover:   cfg.Yellow,
			Pressed: cfg.Panel.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if pui.OnSelect != nil {
				pui.OnSelect(idx)
			}
		}),
	)
	pui.buttons = append(pui.buttons, button)
	return button
}

// Select marks the preset at index as the active one.
func (pui *PresetsUI) Select(index int) {
	pui.selected = index
	for i, button := range pui.buttons {
		if textWidget := button.Text(); textWidget != nil {
			textWidget.Label = presetLabel(pui.presets.Presets[i], i, i == index)
		}
	}
}

func (pui *PresetsUI) Selected() int {
	return pui.selected
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Panel.IdleColor),
		Hover:    image.NewNineSliceColor(cfg.Panel.HoverColor),
		Pressed:  image.NewNineSliceColor(cfg.Panel.PressedColor),
		Disabled: image.NewNineSliceColor(cfg.Grey),
	}
}

// presetLabel numbers the first nine presets to match their hotkeys.
func presetLabel(p cfg.Preset, index int, selected bool) string {
	label := p.Name
	if index < 9 {
		label = fmt.Sprintf("%d %s", index+1, p.Name)
	}
	if selected {
		label = "[" + label + "]"
	}
	return label
}

// presetRows splits n buttons into [start, end) rows of at most perRow.
func presetRows(n, perRow int) [][2]int {
	if perRow <= 0 {
		perRow = n
	}
	var rows [][2]int
	for start := 0; start < n; start += perRow {
		rows = append(rows, [2]int{start, min(start+perRow, n)})
	}
	return rows
}
