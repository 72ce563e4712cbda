package registry

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                          { return g.id }
func (g *stubGame) Title() string                                       { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)                            {}
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                                 {}
func (g *stubGame) State() core.GameState                               { return core.GameState{} }
func (g *stubGame) SetLogger(*log.Logger)                               {}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Error("Exists reports wrong membership")
	}

	g1, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	g2, _ := Create("stub-a")
	if g1 == g2 {
		t.Error("Create should return a fresh instance each time")
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("expected an error for an unknown game")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub-a":
			ia = i
		case "stub-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() should be sorted by id, got %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
