package main

import (
	"testing"
	"time"

	"github.com/automoto/cryptofighters/shared/rules"
	tea "github.com/charmbracelet/bubbletea"
)

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(picks{P1: "hodl_master", P2: "paper_hands", Difficulty: rules.Normal}, 11, 1)
	next, cmd := m.Update(catalogLoadedMsg{Catalog: loadCatalog(t)})
	if cmd == nil {
		t.Fatal("loading the catalog did not start a tick chain")
	}
	return next.(Model)
}

func TestNextBoutDropsTheOldTickChain(t *testing.T) {
	m := loadedModel(t)
	oldTick := tickMsg{gen: m.gen, at: time.Now()}

	next, cmd := m.Update(oldTick)
	if cmd == nil {
		t.Fatal("a live bout should re-arm its tick")
	}
	m = next.(Model)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatal("r should start a new bout")
	}
	m = next.(Model)
	if m.Seed != 12 {
		t.Errorf("seed = %d, want 12", m.Seed)
	}

	// The pending tick from the first bout must not keep its chain alive
	if _, cmd := m.Update(oldTick); cmd != nil {
		t.Error("stale tick re-armed a second chain")
	}
	if _, cmd := m.Update(tickMsg{gen: m.gen, at: time.Now()}); cmd == nil {
		t.Error("current tick did not re-arm")
	}
}

func TestPausedTickKeepsTheBoutStill(t *testing.T) {
	m := loadedModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	m = next.(Model)
	if !m.Paused {
		t.Fatal("space did not pause")
	}

	next, cmd := m.Update(tickMsg{gen: m.gen, at: time.Now()})
	if cmd == nil {
		t.Error("paused bout should keep ticking")
	}
	if got := next.(Model).Bout.ticks; got != 0 {
		t.Errorf("ticks = %d while paused", got)
	}
}
