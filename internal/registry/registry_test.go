package registry

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

type stubGame struct {
	id    string
	start string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{Level: g.start} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func(opts Options) Game { return &stubGame{id: "stub_a", start: opts.StartLevel} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false after Register")
	}

	g, err := Create("stub_a", Options{StartLevel: "lvl02"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.State().Level != "lvl02" {
		t.Errorf("factory did not receive options, Level = %q", g.State().Level)
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("Title = %q, want %q", info.Title, "Stub stub_a")
			}
		}
	}
	if !found {
		t.Error("List() does not include stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", Options{}); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) Game { return &stubGame{id: "stub_dup"} }
	Register("stub_dup", f)

	defer func() {
		if recover() == nil {
			t.Error("second Register() with the same ID should panic")
		}
	}()
	Register("stub_dup", f)
}
