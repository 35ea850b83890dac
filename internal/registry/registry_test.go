package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Expected zz-stub to be registered")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("Created game has ID %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "ZZ-STUB" {
				t.Errorf("Expected title ZZ-STUB, got %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("zz-stub missing from List()")
	}
}

type leveledStub struct {
	stubGame
	level string
}

func (g *leveledStub) LevelID() string { return g.level }
func (g *leveledStub) UseLevel(idOrPath string) { g.level = idOrPath }

func TestInfoReportsCapabilities(t *testing.T) {
	Register("zz-plain", func() Game { return &stubGame{id: "zz-plain"} })
	Register("zz-leveled", func() Game { return &leveledStub{stubGame: stubGame{id: "zz-leveled"}} })

	plain, ok := Info("zz-plain")
	if !ok || plain.Leveled || plain.Reloadable {
		t.Errorf("zz-plain info = %+v, %v", plain, ok)
	}
	leveled, ok := Info("zz-leveled")
	if !ok || !leveled.Leveled || leveled.Reloadable {
		t.Errorf("zz-leveled info = %+v, %v", leveled, ok)
	}
	if _, ok := Info("no-such-game"); ok {
		t.Error("Info() should miss unknown games")
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	for name, reg := range map[string]func(){
		"empty id":    func() { Register("", func() Game { return &stubGame{} }) },
		"nil factory": func() { Register("zz-nil", nil) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			reg()
		})
	}
	if Exists("zz-nil") {
		t.Error("Rejected game should not be registered")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("Exists() should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Game { return &stubGame{id: "zz-b"} })
	Register("zz-a", func() Game { return &stubGame{id: "zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
