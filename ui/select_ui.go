package ui

import (
	"image/color"

	"github.com/automoto/cryptofighters/assets"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// sidePanel holds the widgets describing one side's pick.
type sidePanel struct {
	portrait *widget.Graphic
	name     *widget.Label
	tags     *widget.Label
	stats    *widget.Label
	moves    *widget.Text
	buttons  []*widget.Button
}

// SelectUI is the character select screen. Both sides pick with the mouse;
// in single player the right side is the CPU and can be set or randomised.
type SelectUI struct {
	UI      *ebitenui.UI
	Session *session.Session

	OnStart func()
	OnBack  func()

	panels      [2]*sidePanel
	startButton *widget.Button
	statusLabel *widget.Label
	blank       *ebiten.Image

	theme *theme
}

// NewSelectUI builds the select screen over the session's catalog.
func NewSelectUI(sess *session.Session, onStart, onBack func()) *SelectUI {
	s := &SelectUI{
		Session: sess,
		OnStart: onStart,
		OnBack:  onBack,
		theme:   loadTheme(),
	}
	s.blank = ebiten.NewImage(cfg.Menu.PortraitSize, cfg.Menu.PortraitSize)
	s.blank.Fill(cfg.Menu.BackgroundColor)
	s.buildUI()
	return s
}

func sideColor(side int) color.RGBA {
	if side == 0 {
		return cfg.Menu.P1Color
	}
	return cfg.Menu.P2Color
}

func (s *SelectUI) buildUI() {
	t := s.theme
	root := rootContainer(cfg.Menu.BackgroundColor)
	content := centeredColumn(10, 10)

	content.AddChild(t.newLabel("CHOOSE YOUR FIGHTER", &t.headFace, cfg.Menu.TitleColor))
	content.AddChild(t.newLabel(modeLabel(s.Session.Mode), &t.smallFace, cfg.Menu.TextColorNormal))

	sides := row(24)
	for side := 0; side < 2; side++ {
		sides.AddChild(s.buildSidePanel(side))
	}
	content.AddChild(sides)

	s.statusLabel = t.newLabel("", &t.smallFace, cfg.Menu.TextColorDisabled)
	content.AddChild(s.statusLabel)

	buttons := row(cfg.Menu.Spacing)
	buttons.AddChild(t.newButton("Back", 120, cfg.Menu.ButtonHeight, func() { s.OnBack() }))
	s.startButton = t.newButton("Choose Arena", 180, cfg.Menu.ButtonHeight, func() {
		if s.canStart() {
			s.OnStart()
		}
	})
	buttons.AddChild(s.startButton)
	content.AddChild(buttons)

	root.AddChild(content)
	s.UI = &ebitenui.UI{Container: root}
	s.UpdateUI()
}

func (s *SelectUI) buildSidePanel(side int) *widget.Container {
	t := s.theme
	bg := cfg.Menu.PanelColor
	panel := column(6, 10, &bg)
	p := &sidePanel{}

	panel.AddChild(t.newLabel(sideLabel(s.Session.Mode, side), &t.headFace, sideColor(side)))

	top := row(10)
	p.portrait = widget.NewGraphic(widget.GraphicOpts.Image(s.blank))
	top.AddChild(p.portrait)

	info := column(4, 0, nil)
	p.name = t.newLabel("", &t.headFace, cfg.Menu.TextColorNormal)
	p.tags = t.newLabel("", &t.smallFace, cfg.Menu.TextColorNormal)
	p.stats = t.newLabel("", &t.smallFace, cfg.Menu.TextColorNormal)
	p.moves = t.newText("", &t.smallFace, cfg.Menu.TextColorNormal, 220)
	info.AddChild(p.name, p.tags, p.stats, p.moves)
	top.AddChild(info)
	panel.AddChild(top)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(6, 6),
		)),
	)
	for _, ch := range s.Session.Catalog.Characters() {
		id := ch.ID
		btn := t.newButton(ch.Name, 170, 30, func() {
			_ = s.Session.SelectFighter(side, id)
			s.UpdateUI()
		})
		p.buttons = append(p.buttons, btn)
		grid.AddChild(btn)
	}
	panel.AddChild(grid)

	panel.AddChild(t.newButton("Random", 346, 30, func() {
		s.Session.RandomFighter(side)
		s.UpdateUI()
	}))

	s.panels[side] = p
	return panel
}

func (s *SelectUI) canStart() bool {
	return s.Session.Fighters[0] != "" && s.Session.Fighters[1] != ""
}

// UpdateUI refreshes both panels and the start button from the session.
func (s *SelectUI) UpdateUI() {
	chars := s.Session.Catalog.Characters()
	for side, p := range s.panels {
		ch := s.Session.Catalog.Character(s.Session.Fighters[side])
		s.fillPanel(p, ch)
		for i, btn := range p.buttons {
			if ch != nil && chars[i].ID == ch.ID {
				btn.SetImage(s.theme.selectedButtonImage(sideColor(side)))
			} else {
				btn.SetImage(s.theme.buttonImage())
			}
		}
	}

	ready := s.canStart()
	s.startButton.GetWidget().Disabled = !ready
	if ready {
		s.statusLabel.Label = ""
	} else {
		s.statusLabel.Label = "Both sides need a fighter"
	}
}

func (s *SelectUI) fillPanel(p *sidePanel, ch *gamedata.Character) {
	if ch == nil {
		p.portrait.Image = s.blank
		p.name.Label = "-"
		p.tags.Label = ""
		p.stats.Label = ""
		p.moves.Label = ""
		return
	}
	p.portrait.Image = assets.GetPortrait(ch)
	p.name.Label = ch.Name
	p.tags.Label = ch.Rarity + " / " + ch.Element
	p.stats.Label = statsLine(ch)
	p.moves.Label = movesText(s.Session.Catalog, ch)
}

func (s *SelectUI) Update() {
	s.UI.Update()
}
