package system

import (
	"math/rand"
	"testing"

	"bsp-roguelike/internal/entity"
	"bsp-roguelike/internal/random"
)

func TestApplyPlayerAttackDamagesThenKills(t *testing.T) {
	_, dm := newWorld(5, 5)
	id := dm.SpawnMob(5, 4, 1)
	rule := DropRule{Probability: 0, PotionHeal: 10}
	rng := rand.New(rand.NewSource(1))
	hit := entity.AttackInfo{X: 5, Y: 4, Damage: 5}

	res := ApplyPlayerAttack(dm, hit, rule, rng)
	if !res.Hit || res.Killed || res.MobID != id {
		t.Fatalf("first hit = %+v", res)
	}
	if dm.Mobs[0].HP != 5 {
		t.Fatalf("mob HP = %d; want 5", dm.Mobs[0].HP)
	}

	res = ApplyPlayerAttack(dm, hit, rule, rng)
	if !res.Killed {
		t.Fatalf("second hit should kill, got %+v", res)
	}
	if len(dm.Mobs) != 0 {
		t.Error("defeated mob should be removed")
	}
	if len(dm.Defeated) != 1 || dm.Defeated[0] != id {
		t.Errorf("defeated = %v; want [%d]", dm.Defeated, id)
	}
	if dm.Player.Exp != 1 {
		t.Errorf("player exp = %d; want 1", dm.Player.Exp)
	}
	if res.DropID != NoDrop || len(dm.Items) != 0 {
		t.Error("zero drop probability must not drop")
	}
}

func TestApplyPlayerAttackDrop(t *testing.T) {
	cases := []struct {
		name  string
		draw  float64
		prob  float64
		drops bool
	}{
		{"always", 0.99, 1, true},
		{"below threshold", 0.2, 0.5, true},
		{"at threshold", 0.5, 0.5, false},
		{"never", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, dm := newWorld(5, 5)
			dm.SpawnMob(6, 5, 1)
			s := &random.Script{Floats: []float64{tc.draw}}
			res := ApplyPlayerAttack(dm, entity.AttackInfo{X: 6, Y: 5, Damage: 50}, DropRule{Probability: tc.prob, PotionHeal: 7}, s)
			if got := res.DropID != NoDrop; got != tc.drops {
				t.Fatalf("dropped = %v; want %v", got, tc.drops)
			}
			if !tc.drops {
				return
			}
			if len(dm.Items) != 1 {
				t.Fatalf("items = %d; want 1", len(dm.Items))
			}
			it := dm.Items[0]
			if it.X != 6 || it.Y != 5 || it.Item != entity.HealthPotion(7) || it.ID != res.DropID {
				t.Errorf("dropped item = %+v", it)
			}
		})
	}
}

func TestApplyPlayerAttackMiss(t *testing.T) {
	_, dm := newWorld(5, 5)
	dm.SpawnMob(8, 8, 1)
	res := ApplyPlayerAttack(dm, entity.AttackInfo{X: 5, Y: 4, Damage: 5}, DropRule{}, rand.New(rand.NewSource(1)))
	if res.Hit {
		t.Error("attack on an empty tile should miss")
	}
	if dm.Mobs[0].HP != 10 {
		t.Error("missed attack must not damage")
	}
}

func TestApplyMobAttacks(t *testing.T) {
	_, dm := newWorld(5, 5)
	attacks := []entity.MobAttackInfo{
		{AttackInfo: entity.AttackInfo{X: 5, Y: 5, Damage: 5}, MobID: 1},
		{AttackInfo: entity.AttackInfo{X: 4, Y: 5, Damage: 9}, MobID: 2},
		{AttackInfo: entity.AttackInfo{X: 5, Y: 5, Damage: 3}, MobID: 3},
	}
	hits := ApplyMobAttacks(dm, attacks)
	if len(hits) != 2 {
		t.Fatalf("hits = %d; want 2", len(hits))
	}
	if dm.Player.HP != 92 {
		t.Errorf("player HP = %d; want 92", dm.Player.HP)
	}
	if hits[1].MobID != 3 || hits[1].Damage != 3 {
		t.Errorf("second hit = %+v", hits[1])
	}
}
