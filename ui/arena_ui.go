package ui

import (
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// ArenaUI lists the arenas with their description and theme.
type ArenaUI struct {
	UI      *ebitenui.UI
	Session *session.Session

	OnFight func()
	OnBack  func()

	arenaButtons []*widget.Button
	details      *widget.Text
	fightButton  *widget.Button

	theme *theme
}

func NewArenaUI(sess *session.Session, onFight, onBack func()) *ArenaUI {
	a := &ArenaUI{
		Session: sess,
		OnFight: onFight,
		OnBack:  onBack,
		theme:   loadTheme(),
	}
	a.buildUI()
	return a
}

func (a *ArenaUI) buildUI() {
	t := a.theme
	root := rootContainer(cfg.Menu.BackgroundColor)
	content := centeredColumn(10, 12)

	content.AddChild(t.newLabel("CHOOSE THE ARENA", &t.headFace, cfg.Menu.TitleColor))

	body := row(20)
	list := column(cfg.Menu.Spacing/2, 0, nil)
	for _, arena := range a.Session.Catalog.Arenas() {
		id := arena.ID
		btn := t.newButton(arena.Name, cfg.Menu.ButtonWidth, 34, func() {
			_ = a.Session.SelectArena(id)
			a.UpdateUI()
		})
		a.arenaButtons = append(a.arenaButtons, btn)
		list.AddChild(btn)
	}
	list.AddChild(t.newButton("Random", cfg.Menu.ButtonWidth, 34, func() {
		a.Session.RandomArena()
		a.UpdateUI()
	}))
	body.AddChild(list)

	bg := cfg.Menu.PanelColor
	panel := column(6, 12, &bg)
	panel.GetWidget().MinWidth = 360
	a.details = t.newText("", &t.normalFace, cfg.Menu.TextColorNormal, 340)
	panel.AddChild(a.details)
	body.AddChild(panel)
	content.AddChild(body)

	buttons := row(cfg.Menu.Spacing)
	buttons.AddChild(t.newButton("Back", 120, cfg.Menu.ButtonHeight, func() { a.OnBack() }))
	a.fightButton = t.newButton("FIGHT!", 180, cfg.Menu.ButtonHeight, func() {
		if a.Session.Ready() {
			a.OnFight()
		}
	})
	buttons.AddChild(a.fightButton)
	content.AddChild(buttons)

	root.AddChild(content)
	a.UI = &ebitenui.UI{Container: root}
	a.UpdateUI()
}

// UpdateUI highlights the selected arena and shows its details.
func (a *ArenaUI) UpdateUI() {
	arenas := a.Session.Catalog.Arenas()
	for i, btn := range a.arenaButtons {
		if arenas[i].ID == a.Session.ArenaID {
			btn.SetImage(a.theme.selectedButtonImage(cfg.Menu.ButtonPressed))
		} else {
			btn.SetImage(a.theme.buttonImage())
		}
	}

	if arena := a.Session.Catalog.Arena(a.Session.ArenaID); arena != nil {
		a.details.Label = arenaLine(arena)
	} else {
		a.details.Label = "Pick an arena, or let the chain decide."
	}
	a.fightButton.GetWidget().Disabled = !a.Session.Ready()
}

func (a *ArenaUI) Update() {
	a.UI.Update()
}
