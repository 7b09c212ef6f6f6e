package ui

import (
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// MenuUI is the title screen.
type MenuUI struct {
	UI      *ebitenui.UI
	Session *session.Session

	OnStart    func(mode session.Mode)
	OnSettings func()
	OnExit     func()

	difficultyButton *widget.Button
	difficultyInfo   *widget.Label

	theme *theme
}

// NewMenuUI builds the main menu.
func NewMenuUI(sess *session.Session, onStart func(session.Mode), onSettings, onExit func()) *MenuUI {
	m := &MenuUI{
		Session:    sess,
		OnStart:    onStart,
		OnSettings: onSettings,
		OnExit:     onExit,
		theme:      loadTheme(),
	}
	m.buildUI()
	return m
}

func (m *MenuUI) buildUI() {
	t := m.theme
	root := rootContainer(cfg.Menu.BackgroundColor)
	content := centeredColumn(cfg.Menu.Spacing, 16)

	content.AddChild(t.newLabel(cfg.Menu.Title, &t.titleFace, cfg.Menu.TitleColor))
	content.AddChild(t.newLabel(cfg.Menu.Subtitle, &t.smallFace, cfg.Menu.TextColorNormal))

	w, h := cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight
	content.AddChild(t.newButton("Single Player", w, h, func() { m.OnStart(session.SinglePlayer) }))
	content.AddChild(t.newButton("Two Player", w, h, func() { m.OnStart(session.TwoPlayer) }))

	m.difficultyButton = t.newButton(difficultyLabel(m.Session.Difficulty), w, h, func() {
		m.Session.Difficulty = m.Session.Difficulty.Next()
		m.UpdateUI()
	})
	content.AddChild(m.difficultyButton)
	m.difficultyInfo = t.newLabel("", &t.smallFace, cfg.Menu.TextColorDisabled)
	content.AddChild(m.difficultyInfo)

	content.AddChild(t.newButton("Settings", w, h, func() { m.OnSettings() }))
	content.AddChild(t.newButton("Exit", w, h, func() { m.OnExit() }))

	root.AddChild(content)
	m.UI = &ebitenui.UI{Container: root}
	m.UpdateUI()
}

// UpdateUI refreshes the difficulty button.
func (m *MenuUI) UpdateUI() {
	m.difficultyButton.SetText(difficultyLabel(m.Session.Difficulty))
	m.difficultyInfo.Label = cfg.Bot.Descriptions[m.Session.Difficulty]
}

func (m *MenuUI) Update() {
	m.UI.Update()
}
