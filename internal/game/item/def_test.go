package item_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cory-johannsen/adventure/internal/game/item"
)

func TestItemDef_Validate_RejectsEmptyID(t *testing.T) {
	d := &item.ItemDef{
		Name:   "Sword",
		Kind:   item.KindWeapon,
		Damage: 10,
	}
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for empty ID, got nil")
	}
}

func TestItemDef_Validate_RejectsEmptyName(t *testing.T) {
	d := &item.ItemDef{
		ID:     "sword",
		Kind:   item.KindWeapon,
		Damage: 10,
	}
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for empty Name, got nil")
	}
}

func TestItemDef_Validate_RejectsInvalidKind(t *testing.T) {
	d := &item.ItemDef{
		ID:   "thing",
		Name: "Thing",
		Kind: "junk",
	}
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for invalid Kind, got nil")
	}
}

func TestItemDef_Validate_RejectsNegativeDamage(t *testing.T) {
	d := &item.ItemDef{
		ID:     "sword",
		Name:   "Sword",
		Kind:   item.KindWeapon,
		Damage: -1,
	}
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for negative Damage, got nil")
	}
}

func TestItemDef_Validate_RejectsNegativeDefense(t *testing.T) {
	d := &item.ItemDef{
		ID:      "shield",
		Name:    "Shield",
		Kind:    item.KindArmor,
		Defense: -1,
	}
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for negative Defense, got nil")
	}
}

func TestItemDef_Validate_RejectsNonPositiveHeal(t *testing.T) {
	d := &item.ItemDef{
		ID:   "tonic",
		Name: "Tonic",
		Kind: item.KindPotion,
	}
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for zero Heal, got nil")
	}
}

func TestItemDef_Validate_AcceptsValidDefs(t *testing.T) {
	defs := []*item.ItemDef{
		{ID: "sword", Name: "Sword", Kind: item.KindWeapon, Damage: 10},
		{ID: "fists", Name: "Fists", Kind: item.KindWeapon, Damage: 0},
		{ID: "shield", Name: "Shield", Kind: item.KindArmor, Defense: 8},
		{ID: "tonic", Name: "Tonic", Kind: item.KindPotion, Heal: 5},
	}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			t.Errorf("expected no error for %q, got: %v", d.ID, err)
		}
	}
}

func TestItemDef_Spawn_PerKind(t *testing.T) {
	cases := []struct {
		def  *item.ItemDef
		kind item.Kind
	}{
		{&item.ItemDef{ID: "sword", Name: "Sword", Kind: item.KindWeapon, Damage: 10}, item.KindWeapon},
		{&item.ItemDef{ID: "shield", Name: "Shield", Kind: item.KindArmor, Defense: 8}, item.KindArmor},
		{&item.ItemDef{ID: "tonic", Name: "Tonic", Kind: item.KindPotion, Heal: 5}, item.KindPotion},
	}
	for _, c := range cases {
		it, err := c.def.Spawn()
		if err != nil {
			t.Fatalf("unexpected error spawning %q: %v", c.def.ID, err)
		}
		if it.Kind() != c.kind {
			t.Errorf("got Kind=%q, want %q", it.Kind(), c.kind)
		}
		if it.Name() != c.def.Name {
			t.Errorf("got Name=%q, want %q", it.Name(), c.def.Name)
		}
	}
}

func TestItemDef_Spawn_FreshInstanceEachCall(t *testing.T) {
	d := &item.ItemDef{ID: "sword", Name: "Sword", Kind: item.KindWeapon, Damage: 10}
	first, err := d.Spawn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := d.Spawn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("Spawn should return distinct instances")
	}
	if first.ID() == second.ID() {
		t.Error("spawned instances should have distinct instance IDs")
	}
}

func TestItemDef_Spawn_RejectsUnknownKind(t *testing.T) {
	d := &item.ItemDef{ID: "thing", Name: "Thing", Kind: "junk"}
	if _, err := d.Spawn(); err == nil {
		t.Fatal("expected error for unknown kind, got nil")
	}
}

func TestLoadDefs_ReadsValidDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}
	write("sword.yaml", "id: sword\nname: Sword\nkind: weapon\ndamage: 10\n")
	write("tonic.yml", "id: tonic\nname: Tonic\nkind: potion\nheal: 5\n")
	write("notes.txt", "not yaml")

	defs, err := item.LoadDefs(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d defs, want 2", len(defs))
	}
}

func TestLoadDefs_RejectsInvalidDef(t *testing.T) {
	dir := t.TempDir()
	body := "id: sword\nname: Sword\nkind: weapon\ndamage: -5\n"
	if err := os.WriteFile(filepath.Join(dir, "sword.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := item.LoadDefs(dir); err == nil {
		t.Fatal("expected error for invalid def, got nil")
	}
}

func TestLoadDefs_RejectsMissingDirectory(t *testing.T) {
	if _, err := item.LoadDefs(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}
}
