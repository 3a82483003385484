package entity

import "testing"

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer()
	if p.X != 0 || p.Y != 0 {
		t.Errorf("position = (%d,%d); want (0,0)", p.X, p.Y)
	}
	if p.Dir != Up {
		t.Errorf("direction = %v; want up", p.Dir)
	}
	if p.HP != 100 || p.MaxHP != 100 {
		t.Errorf("HP = %d/%d; want 100/100", p.HP, p.MaxHP)
	}
	if p.ATK != 10 || p.DEF != 5 {
		t.Errorf("ATK/DEF = %d/%d; want 10/5", p.ATK, p.DEF)
	}
	if p.Level != 1 || p.Exp != 0 || p.Active != 0 {
		t.Errorf("level/exp/active = %d/%d/%d; want 1/0/0", p.Level, p.Exp, p.Active)
	}
	for i, it := range p.Items {
		if !it.IsNull() {
			t.Errorf("slot %d = %v; want empty", i, it)
		}
	}
}

func TestAddItemFillsInOrder(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < InventorySize; i++ {
		if !p.AddItem(HealthPotion(10)) {
			t.Fatalf("add %d failed", i)
		}
		if p.Items[i] != HealthPotion(10) {
			t.Fatalf("slot %d = %v after add", i, p.Items[i])
		}
	}
	before := p.Items
	if p.AddItem(Sword(3)) {
		t.Error("ninth add should fail on a full inventory")
	}
	if p.Items != before {
		t.Error("inventory changed after a failed add")
	}
}

func TestAddItemReusesFreedSlot(t *testing.T) {
	p := NewPlayer()
	p.AddItem(Sword(1))
	p.AddItem(HealthPotion(10))
	p.AddItem(Shield(2))
	p.Select(1)
	p.UseItem()
	p.AddItem(Sword(4))
	if p.Items[1] != Sword(4) {
		t.Errorf("slot 1 = %v; want the freed slot reused", p.Items[1])
	}
}

func TestSelect(t *testing.T) {
	p := NewPlayer()
	cases := []struct {
		idx        int
		ok         bool
		wantActive int
	}{
		{0, true, 0},
		{3, true, 3},
		{7, true, 7},
		{8, false, 7},
		{-1, false, 7},
	}
	for _, tc := range cases {
		if got := p.Select(tc.idx); got != tc.ok {
			t.Errorf("Select(%d) = %v; want %v", tc.idx, got, tc.ok)
		}
		if p.Active != tc.wantActive {
			t.Errorf("after Select(%d) active = %d; want %d", tc.idx, p.Active, tc.wantActive)
		}
	}
}

func TestUseItem(t *testing.T) {
	p := NewPlayer()
	p.HP = 50
	p.AddItem(HealthPotion(10))
	p.Select(0)
	if got := p.UseItem(); got != SideEffectNone {
		t.Errorf("potion side effect = %v; want none", got)
	}
	if p.HP != 60 {
		t.Errorf("HP = %d; want 60", p.HP)
	}
	if !p.Items[0].IsNull() {
		t.Error("potion should be consumed")
	}
	if got := p.UseItem(); got != SideEffectFault {
		t.Errorf("empty slot side effect = %v; want fault", got)
	}
}

func TestUseItemCapsAtMaxHP(t *testing.T) {
	p := NewPlayer()
	p.HP = 95
	p.AddItem(HealthPotion(10))
	p.UseItem()
	if p.HP != p.MaxHP {
		t.Errorf("HP = %d; want capped at %d", p.HP, p.MaxHP)
	}
}

func TestUseItemNonConsumable(t *testing.T) {
	p := NewPlayer()
	p.AddItem(Sword(3))
	if got := p.UseItem(); got != SideEffectFault {
		t.Errorf("sword side effect = %v; want fault", got)
	}
	if p.Items[0] != Sword(3) {
		t.Error("sword slot must be untouched")
	}
}

func TestPlayerAttack(t *testing.T) {
	p := NewPlayer()
	p.X, p.Y = 5, 5
	got := p.Attack()
	if got != (AttackInfo{X: 5, Y: 4, Damage: 10}) {
		t.Errorf("Attack() = %+v; want {5 4 10}", got)
	}

	p.Dir = DownLeft
	p.AddItem(Sword(3))
	got = p.Attack()
	if got != (AttackInfo{X: 4, Y: 6, Damage: 13}) {
		t.Errorf("Attack() with sword = %+v; want {4 6 13}", got)
	}

	p.Select(1)
	if got := p.Attack(); got.Damage != 10 {
		t.Errorf("sword outside the active slot should not count, damage = %d", got.Damage)
	}
}

func TestCheckLevelUp(t *testing.T) {
	cases := []struct {
		name   string
		heal   bool
		wantHP int
	}{
		{"no heal", false, 100},
		{"heal on level up", true, 110},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer()
			p.HealOnLevelUp = tc.heal
			if p.CheckLevelUp() {
				t.Fatal("level up without exp")
			}
			p.Exp = 3
			if !p.CheckLevelUp() {
				t.Fatal("expected level up at exp 3")
			}
			if p.Exp != 0 || p.Level != 2 {
				t.Errorf("exp/level = %d/%d; want 0/2", p.Exp, p.Level)
			}
			if p.MaxHP != 110 || p.ATK != 12 || p.DEF != 6 {
				t.Errorf("maxHP/ATK/DEF = %d/%d/%d; want 110/12/6", p.MaxHP, p.ATK, p.DEF)
			}
			if p.HP != tc.wantHP {
				t.Errorf("HP = %d; want %d", p.HP, tc.wantHP)
			}
		})
	}
}

func TestCheckLevelUpDoesNotCascade(t *testing.T) {
	p := NewPlayer()
	p.Exp = 100
	p.CheckLevelUp()
	if p.Level != 2 {
		t.Errorf("level = %d; want a single level gained", p.Level)
	}
}
