package gamedata

import (
	"errors"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/automoto/cryptofighters/shared/rules"
)

const testMoves = `[
  {"id": "jab", "name": "Jab", "type": "basic", "cooldown": 350, "range": 90},
  {"id": "zap", "name": "Zap", "type": "special1", "projectileType": "magic", "battleCries": ["ZAP!"]},
  {"id": "slam", "name": "Slam", "type": "special2"},
  {"id": "broken", "name": "Broken", "type": "ultimate"},
  {"id": "", "name": "No Id", "type": "basic"},
  {"id": "laser", "name": "Laser", "type": "special1", "projectileType": "laser"},
  "not an object"
]`

const testCharacters = `[
  {"id": "hodl", "name": "HODL", "stats": {"health": 100, "attack": 25, "defense": 20, "speed": 150},
   "moves": ["jab", "zap", "slam"], "rarity": "legendary", "element": "earth",
   "palette": {"body": "#223344", "accent": "#f7931a", "trim": "nope"}},
  {"id": "paper", "name": "Paper", "stats": {"health": 80, "attack": 30},
   "moves": ["jab", "ghost"], "rarity": "common", "element": "air"},
  {"id": "hodl", "name": "Duplicate", "stats": {"health": 50, "attack": 1}},
  {"id": "zero", "name": "Zero", "stats": {"health": 0, "attack": 10}},
  {"id": "mythic", "name": "Mythic", "stats": {"health": 10, "attack": 10}, "rarity": "mythic"},
  {"id": 7}
]`

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="48" height="27" tilewidth="20" tileheight="20" infinite="0" nextlayerid="4" nextobjectid="8">
 <objectgroup id="1" name="Arena">
  <object id="1" name="meta" x="0" y="0">
   <properties>
    <property name="name" value="Test Dome"/>
    <property name="description" value="A test arena"/>
    <property name="theme" value="conference"/>
    <property name="music" value="bg_fight2"/>
    <property name="background" value="#101020"/>
    <property name="particles" type="bool" value="true"/>
   </properties>
  </object>
  <object id="2" name="bounds" x="0" y="0" width="960" height="450"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="700" y="410">
   <properties><property name="spawnIndex" type="int" value="1"/></properties>
  </object>
  <object id="4" x="260" y="410">
   <properties><property name="spawnIndex" type="int" value="0"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Features">
  <object id="5" name="crowd" x="0" y="0"/>
  <object id="6" name="jumbotron" x="0" y="0"/>
 </objectgroup>
</map>`

const testArenaNoMeta = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="48" height="27" tilewidth="20" tileheight="20" infinite="0">
 <objectgroup id="1" name="Arena">
  <object id="2" name="bounds" x="0" y="0" width="960" height="450"/>
 </objectgroup>
</map>`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		MovesPath:              {Data: []byte(testMoves)},
		CharactersPath:         {Data: []byte(testCharacters)},
		"arenas/dome.tmx":      {Data: []byte(testArena)},
		"arenas/broken.tmx":    {Data: []byte(testArenaNoMeta)},
		"arenas/not_a_map.txt": {Data: []byte("ignored")},
	}
}

func TestLoadSkipsMalformedEntries(t *testing.T) {
	cat, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(cat.Moves()); got != 3 {
		t.Errorf("moves = %d, want 3", got)
	}
	if got := len(cat.Characters()); got != 2 {
		t.Fatalf("characters = %d, want 2", got)
	}
	if cat.Character("hodl").Name != "HODL" {
		t.Error("duplicate id replaced the first entry")
	}
	if cat.Character("zero") != nil || cat.Character("mythic") != nil {
		t.Error("invalid characters should be skipped")
	}

	paper := cat.Character("paper")
	if len(paper.Moves) != 1 || paper.Moves[0] != "jab" {
		t.Errorf("unknown move reference should be dropped, got %v", paper.Moves)
	}
	if paper.Stats.Speed != rules.Fighter.DefaultSpeed {
		t.Errorf("missing speed should default, got %v", paper.Stats.Speed)
	}
	if paper.Palette != DefaultPalette {
		t.Errorf("missing palette should default, got %+v", paper.Palette)
	}
	if hodl := cat.Character("hodl"); hodl.Palette.Body != "#223344" || hodl.Palette.Trim != DefaultPalette.Trim {
		t.Errorf("partial palette repair wrong: %+v", hodl.Palette)
	}

	if got := len(cat.Arenas()); got != 1 {
		t.Fatalf("arenas = %d, want 1", got)
	}
}

func TestArenaParsing(t *testing.T) {
	cat, err := Load(testFS())
	if err != nil {
		t.Fatal(err)
	}
	a := cat.Arena("dome")
	if a == nil {
		t.Fatal("arena dome missing")
	}
	if a.Name != "Test Dome" || a.Theme != "conference" || a.Music != "bg_fight2" {
		t.Errorf("meta wrong: %+v", a)
	}
	if !a.Effects.Particles {
		t.Error("particles flag lost")
	}
	if a.Bounds != (Bounds{Left: 0, Right: 960, Ground: 450}) {
		t.Errorf("bounds = %+v", a.Bounds)
	}
	if a.Spawns != [2]float64{260, 700} {
		t.Errorf("spawns = %v, want ordered by spawnIndex", a.Spawns)
	}
	if len(a.Features) != 2 || a.Features[0] != "crowd" {
		t.Errorf("features = %v", a.Features)
	}
	if a.Width != 960 || a.Height != 540 {
		t.Errorf("size = %vx%v", a.Width, a.Height)
	}
}

func TestQueries(t *testing.T) {
	cat, err := Load(testFS())
	if err != nil {
		t.Fatal(err)
	}
	hodl := cat.Character("hodl")

	if m := cat.MoveFor(hodl, rules.Special1); m == nil || m.ID != "zap" || !m.Ranged() {
		t.Errorf("MoveFor special1 = %+v", m)
	}
	if m := cat.MoveFor(cat.Character("paper"), rules.Special2); m != nil {
		t.Errorf("paper has no special2, got %+v", m)
	}
	set := cat.MoveSet(hodl)
	if set[rules.Basic].ID != "jab" || set[rules.Special2].ID != "slam" {
		t.Errorf("move set = %v", set)
	}
	if got := cat.CharacterMoves("hodl"); len(got) != 3 {
		t.Errorf("CharacterMoves = %d", len(got))
	}
	if got := cat.MovesByType(rules.Basic); len(got) != 1 {
		t.Errorf("MovesByType basic = %d", len(got))
	}
	if got := cat.CharactersByRarity("legendary"); len(got) != 1 || got[0].ID != "hodl" {
		t.Errorf("ByRarity = %v", got)
	}
	if got := cat.CharactersByElement("air"); len(got) != 1 {
		t.Errorf("ByElement = %v", got)
	}
	if got := cat.ArenasByTheme("conference"); len(got) != 1 {
		t.Errorf("ArenasByTheme = %v", got)
	}
	rng := rand.New(rand.NewSource(1))
	if cat.RandomArena(rng) == nil || cat.RandomCharacter(rng) == nil {
		t.Error("random picks returned nil")
	}

	stats := cat.Stats()
	if stats.Characters != 2 || stats.Moves != 3 || stats.Arenas != 1 || stats.ByRarity["common"] != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestLoadFailsWithoutRoster(t *testing.T) {
	fsys := testFS()
	fsys[CharactersPath] = &fstest.MapFile{Data: []byte(`[{"id": "x"}]`)}
	if _, err := Load(fsys); !errors.Is(err, ErrNoCharacters) {
		t.Fatalf("err = %v, want ErrNoCharacters", err)
	}

	fsys = testFS()
	delete(fsys, "arenas/dome.tmx")
	if _, err := Load(fsys); !errors.Is(err, ErrNoArenas) {
		t.Fatalf("err = %v, want ErrNoArenas", err)
	}

	fsys = testFS()
	delete(fsys, MovesPath)
	if _, err := Load(fsys); err == nil {
		t.Fatal("missing moves file should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#f7931a")
	if err != nil || c.R != 0xf7 || c.G != 0x93 || c.B != 0x1a || c.A != 0xff {
		t.Errorf("ParseHexColor = %v, %v", c, err)
	}
	if c, err := ParseHexColor("00000080"); err != nil || c.A != 0x80 {
		t.Errorf("alpha form = %v, %v", c, err)
	}
	for _, bad := range []string{"", "#fff", "#zzzzzz"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", bad)
		}
	}
}
