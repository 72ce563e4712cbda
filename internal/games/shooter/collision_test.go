package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func hazardAt(x, y float64) *Hazard {
	return newHazard(core.V(x, y), 0, 0, 0, 0, 5*time.Second, 3)
}

func TestResolveProjectileHitsOldestOfOverlappingHazards(t *testing.T) {
	hazards := []*Hazard{hazardAt(40, 4), hazardAt(40, 4)}
	projectiles := []*Projectile{newProjectile(core.V(40, 4), 24)}

	out := Resolve(nil, hazards, projectiles, 20)

	if len(out.DestroyedHazards) != 1 || out.DestroyedHazards[0] != 0 {
		t.Errorf("DestroyedHazards = %v, expected [0]", out.DestroyedHazards)
	}
	if len(out.SpentProjectiles) != 1 {
		t.Errorf("SpentProjectiles = %v, expected exactly one", out.SpentProjectiles)
	}
	if out.ScoreDelta != 20 {
		t.Errorf("ScoreDelta = %d, expected 20", out.ScoreDelta)
	}
	if len(out.Effects) != 1 || out.Effects[0] != core.V(40, 4) {
		t.Errorf("Effects = %v, expected one at the projectile", out.Effects)
	}
	if out.Damage != 0 {
		t.Errorf("Damage = %d, expected 0", out.Damage)
	}
}

func TestResolveNoHazardReuse(t *testing.T) {
	hazards := []*Hazard{hazardAt(40, 4), hazardAt(40, 4)}
	projectiles := []*Projectile{
		newProjectile(core.V(40, 4), 24),
		newProjectile(core.V(40, 5), 24),
		newProjectile(core.V(41, 4), 24),
	}

	out := Resolve(nil, hazards, projectiles, 20)

	if len(out.DestroyedHazards) != 2 {
		t.Fatalf("DestroyedHazards = %v, expected both", out.DestroyedHazards)
	}
	if out.DestroyedHazards[0] != 0 || out.DestroyedHazards[1] != 1 {
		t.Errorf("hazards should be destroyed in spawn order, got %v", out.DestroyedHazards)
	}
	if len(out.SpentProjectiles) != 2 || out.SpentProjectiles[0] != 0 || out.SpentProjectiles[1] != 1 {
		t.Errorf("SpentProjectiles = %v, expected [0 1]", out.SpentProjectiles)
	}
	if out.ScoreDelta != 40 {
		t.Errorf("ScoreDelta = %d, expected 40", out.ScoreDelta)
	}
}

func TestResolvePlayerClaimsHazardFirst(t *testing.T) {
	player := newPlayer(core.V(40, 12), 20, 3, 400*time.Millisecond)
	hazards := []*Hazard{hazardAt(40, 12)}
	projectiles := []*Projectile{newProjectile(core.V(40, 12), 24)}

	out := Resolve(player, hazards, projectiles, 20)

	if out.Damage != 1 {
		t.Errorf("Damage = %d, expected 1", out.Damage)
	}
	if len(out.SpentProjectiles) != 0 || out.ScoreDelta != 0 {
		t.Errorf("projectile should not score on a hazard the player destroyed: %+v", out)
	}
}

func TestResolveDamagePerHazard(t *testing.T) {
	player := newPlayer(core.V(40, 12), 20, 3, 400*time.Millisecond)
	hazards := []*Hazard{hazardAt(40, 12), hazardAt(41, 12), hazardAt(70, 3)}

	out := Resolve(player, hazards, nil, 20)

	if out.Damage != 2 {
		t.Errorf("Damage = %d, expected one event per touching hazard", out.Damage)
	}
	if len(out.DestroyedHazards) != 2 {
		t.Errorf("DestroyedHazards = %v, expected the two touching hazards", out.DestroyedHazards)
	}
}

func TestResolveSkipsDeadEntities(t *testing.T) {
	player := newPlayer(core.V(40, 12), 20, 3, 400*time.Millisecond)
	dead := hazardAt(40, 12)
	dead.destroy()
	spent := newProjectile(core.V(20, 4), 24)
	spent.destroy()

	out := Resolve(player, []*Hazard{dead, hazardAt(20, 4)}, []*Projectile{spent}, 20)
	if !out.Empty() {
		t.Errorf("expected empty outcome, got %+v", out)
	}
}

func TestResolveNoCollision(t *testing.T) {
	player := newPlayer(core.V(40, 12), 20, 3, 400*time.Millisecond)
	out := Resolve(player, []*Hazard{hazardAt(10, 3)}, []*Projectile{newProjectile(core.V(70, 3), 24)}, 20)
	if !out.Empty() {
		t.Errorf("expected empty outcome, got %+v", out)
	}
}

func TestIntersectsUsesMask(t *testing.T) {
	h := hazardAt(40, 4)
	hs := h.Shape()

	// Top-left corner of the meteor box is outside the lumpy outline
	corner := RectShape{R: core.NewRect(hs.R.X, hs.R.Y, 1, 1)}
	if !hs.R.Intersects(corner.R) {
		t.Fatal("test setup: corner should be inside the bounds")
	}
	if Intersects(corner, hs) {
		t.Error("transparent corner should not collide")
	}

	centre := RectShape{R: core.NewRect(40, 4, 1, 1)}
	if !Intersects(centre, hs) || !Intersects(hs, centre) {
		t.Error("centre cell should collide in both argument orders")
	}

	far := RectShape{R: core.NewRect(0, 20, 1, 1)}
	if Intersects(far, hs) {
		t.Error("disjoint bounds should not collide")
	}
}
