package ui

import (
	"image/color"

	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/career"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResultsUI shows the outcome of a finished match over rising crypto symbols.
type ResultsUI struct {
	UI     *ebitenui.UI
	Result *session.FightResult

	OnFightAgain func()
	OnRematch    func()
	OnMenu       func()

	symbols *symbolField
	theme   *theme
}

// NewResultsUI builds the results screen for one result. records may be nil
// when persistence is unavailable.
func NewResultsUI(res *session.FightResult, cat *gamedata.Catalog, records *career.Records, seed int64,
	onFightAgain, onRematch, onMenu func()) *ResultsUI {
	r := &ResultsUI{
		Result:       res,
		OnFightAgain: onFightAgain,
		OnRematch:    onRematch,
		OnMenu:       onMenu,
		theme:        loadTheme(),
		symbols:      newSymbolField(seed, float64(cfg.C.Width), float64(cfg.C.Height)),
	}
	r.buildUI(cat, records)
	return r
}

func (r *ResultsUI) buildUI(cat *gamedata.Catalog, records *career.Records) {
	t := r.theme
	res := r.Result
	names := [2]string{characterName(cat, res.Fighters[0]), characterName(cat, res.Fighters[1])}

	// No background: the scene paints it so the symbols sit behind the text.
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	content := centeredColumn(8, 14)

	titleColor := cfg.Results.WinColor
	if res.Winner() < 0 {
		titleColor = cfg.Results.DrawColor
	}
	content.AddChild(t.newLabel(resultTitle(res, names), &t.titleFace, titleColor))
	content.AddChild(t.newLabel(resultSubtitle(res), &t.normalFace, cfg.Menu.TextColorNormal))

	for side := 0; side < 2; side++ {
		c := cfg.Results.AliveColor
		if res.Health[side] <= 0 {
			c = cfg.Results.RektColor
		}
		content.AddChild(t.newLabel(healthLine(names[side], res.Health[side], res.MaxHealth[side]), &t.headFace, c))
	}

	content.AddChild(t.newLabel("ROUNDS", &t.normalFace, cfg.Menu.TitleColor))
	for _, line := range roundLines(res, names) {
		content.AddChild(t.newLabel(line, &t.smallFace, cfg.Menu.TextColorNormal))
	}

	content.AddChild(t.newLabel(rewardsLine(res.Rewards), &t.headFace, cfg.Results.RewardColor))

	if records != nil {
		for side := 0; side < 2; side++ {
			content.AddChild(t.newLabel(careerLine(records, names[side], res.Fighters[side]), &t.smallFace, cfg.Menu.TextColorDisabled))
		}
	}

	buttons := row(cfg.Menu.Spacing)
	buttons.AddChild(t.newButton("Fight Again", 170, cfg.Menu.ButtonHeight, func() { r.OnFightAgain() }))
	buttons.AddChild(t.newButton("Rematch", 170, cfg.Menu.ButtonHeight, func() { r.OnRematch() }))
	buttons.AddChild(t.newButton("Main Menu", 170, cfg.Menu.ButtonHeight, func() { r.OnMenu() }))
	content.AddChild(buttons)

	root.AddChild(content)
	r.UI = &ebitenui.UI{Container: root}
}

// Update advances the symbols by dt milliseconds and the widgets by one frame.
func (r *ResultsUI) Update(dt float64) {
	r.symbols.Update(dt)
	r.UI.Update()
}

func (r *ResultsUI) Draw(screen *ebiten.Image, bg color.Color) {
	screen.Fill(bg)
	r.symbols.Draw(screen, r.theme.headFace)
	r.UI.Draw(screen)
}
