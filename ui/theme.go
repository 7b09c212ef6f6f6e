package ui

import (
	"image/color"

	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/fonts"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// theme holds the faces shared by every screen.
type theme struct {
	titleFace  text.Face
	headFace   text.Face
	normalFace text.Face
	smallFace  text.Face
}

func loadTheme() *theme {
	return &theme{
		titleFace:  mustFace(34, true),
		headFace:   mustFace(20, true),
		normalFace: mustFace(15, false),
		smallFace:  mustFace(12, false),
	}
}

func mustFace(size float64, bold bool) text.Face {
	face, err := fonts.UIFace(size, bold)
	if err != nil {
		panic(err)
	}
	return face
}

func (t *theme) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonDisabled),
	}
}

// selectedButtonImage marks the current pick in a list of choices.
func (t *theme) selectedButtonImage(c color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(c),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonDisabled),
	}
}

func (t *theme) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     cfg.Menu.TextColorNormal,
		Hover:    cfg.Black,
		Pressed:  cfg.Black,
		Disabled: cfg.Menu.TextColorDisabled,
	}
}

func (t *theme) newButton(label string, w, h int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
		widget.ButtonOpts.Image(t.buttonImage()),
		widget.ButtonOpts.Text(label, &t.normalFace, t.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (t *theme) newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c, Disabled: cfg.Menu.TextColorDisabled}),
	)
}

// newText is a multi-line block wrapped at maxWidth.
func (t *theme) newText(s string, face *text.Face, c color.Color, maxWidth float64) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, c),
		widget.TextOpts.MaxWidth(maxWidth),
	)
}

// rootContainer fills the screen and centres a single column inside it.
func rootContainer(bg color.RGBA) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
}

func column(spacing int, padding int, bg *color.RGBA) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(padding)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	}
	if bg != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(*bg)))
	}
	return widget.NewContainer(opts...)
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func centered() widget.ContainerOpt {
	return widget.ContainerOpts.WidgetOpts(
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		}),
	)
}

// centeredColumn is a column anchored in the middle of a root container.
func centeredColumn(spacing, padding int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(padding)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		centered(),
	)
}
