package session

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/automoto/cryptofighters/shared/rules"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="48" height="27" tilewidth="20" tileheight="20" infinite="0">
 <objectgroup id="1" name="Arena">
  <object id="1" name="meta" x="0" y="0">
   <properties><property name="name" value="Pit"/></properties>
  </object>
 </objectgroup>
</map>`

func testCatalog(t *testing.T) *gamedata.Catalog {
	t.Helper()
	cat, err := gamedata.Load(fstest.MapFS{
		gamedata.MovesPath:      {Data: []byte(`[{"id": "jab", "name": "Jab", "type": "basic"}]`)},
		gamedata.CharactersPath: {Data: []byte(`[{"id": "a", "name": "A", "stats": {"health": 100, "attack": 10}, "moves": ["jab"]}, {"id": "b", "name": "B", "stats": {"health": 90, "attack": 12}}]`)},
		"arenas/pit.tmx":        {Data: []byte(arenaTMX)},
	})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestSelections(t *testing.T) {
	s := New(testCatalog(t), 1)
	if s.Ready() {
		t.Fatal("ready with no picks")
	}
	if _, _, _, err := s.FightSetup(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("err = %v", err)
	}
	if err := s.SelectFighter(0, "nobody"); err == nil {
		t.Error("unknown character accepted")
	}
	if err := s.SelectFighter(2, "a"); err == nil {
		t.Error("bad side accepted")
	}
	if err := s.SelectFighter(0, "a"); err != nil {
		t.Fatal(err)
	}
	s.RandomFighter(1)
	if err := s.SelectArena("nowhere"); err == nil {
		t.Error("unknown arena accepted")
	}
	s.RandomArena()
	if !s.Ready() {
		t.Fatal("not ready after picks")
	}
	p1, p2, arena, err := s.FightSetup()
	if err != nil || p1.ID != "a" || p2 == nil || arena.ID != "pit" {
		t.Fatalf("setup = %v %v %v %v", p1, p2, arena, err)
	}

	s.ResetSelections()
	if s.Ready() {
		t.Error("selections not cleared")
	}
}

func TestResultReadOnce(t *testing.T) {
	s := New(testCatalog(t), 2)
	_ = s.SelectFighter(0, "a")
	_ = s.SelectFighter(1, "b")
	_ = s.SelectArena("pit")

	m := match.New()
	m.Wins = [2]int{2, 1}
	m.Result = rules.Player1Wins
	m.Rounds = []match.RoundRecord{{Round: 1}, {Round: 2}, {Round: 3}}

	r := s.RecordResult(m, [2]float64{12, 0}, [2]float64{100, 90})
	if r.RoundsPlayed != 3 || r.Winner() != 0 || r.Fighters != [2]string{"a", "b"} {
		t.Errorf("result = %+v", r)
	}
	if r.Rewards.Coins < 50 || r.Rewards.Coins > 149 || r.Rewards.XP < 100 || r.Rewards.XP > 299 {
		t.Errorf("rewards out of range: %+v", r.Rewards)
	}

	got, ok := s.TakeResult()
	if !ok || got != r {
		t.Fatal("result not handed off")
	}
	if _, ok := s.TakeResult(); ok {
		t.Error("result read twice")
	}

	s.RecordResult(m, [2]float64{}, [2]float64{})
	s.Rematch()
	if _, ok := s.TakeResult(); ok {
		t.Error("rematch should drop the unread result")
	}
	if !s.Ready() {
		t.Error("rematch should keep selections")
	}
}

func TestDrawWinner(t *testing.T) {
	r := &FightResult{Result: rules.DrawResult}
	if r.Winner() != -1 {
		t.Error("draw should have no winner")
	}
}
