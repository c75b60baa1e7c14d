package menu_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/menu"
	"github.com/cory-johannsen/adventure/internal/game/player"
)

func demoRegistry(t *testing.T) *item.Registry {
	t.Helper()
	reg := item.NewRegistry()
	defs := []*item.ItemDef{
		{ID: "sword", Name: "Sword", Kind: item.KindWeapon, Damage: 10},
		{ID: "shield", Name: "Shield", Kind: item.KindArmor, Defense: 8},
		{ID: "tonic", Name: "Tonic", Kind: item.KindPotion, Heal: 5},
	}
	for _, d := range defs {
		require.NoError(t, reg.Register(d))
	}
	return reg
}

func demoPlayer(t *testing.T) *player.Player {
	t.Helper()
	p, err := player.New(player.Stats{
		Name:        "Hero",
		MaxHealth:   100,
		BaseAttack:  5,
		BaseDefense: 2,
	}, nil)
	require.NoError(t, err)
	return p
}

// runSession feeds the scripted input lines to a fresh menu and returns the
// transcript plus the resulting player.
func runSession(t *testing.T, input string) (string, *player.Player) {
	t.Helper()
	p := demoPlayer(t)
	reg := demoRegistry(t)
	var out bytes.Buffer
	m := menu.New(p, reg, strings.NewReader(input), &out, nil)
	require.NoError(t, m.Run())
	return out.String(), p
}

func TestRun_QuitImmediately(t *testing.T) {
	out, _ := runSession(t, "6\n")
	assert.Contains(t, out, "Welcome, Hero!")
	assert.Contains(t, out, "Farewell, Hero.")
}

func TestRun_EndOfInputExitsCleanly(t *testing.T) {
	out, _ := runSession(t, "")
	assert.Contains(t, out, "Welcome, Hero!")
}

func TestRun_ListEmptyInventory(t *testing.T) {
	out, _ := runSession(t, "2\n6\n")
	assert.Contains(t, out, "Your inventory is empty.")
}

func TestRun_AcquireAndList(t *testing.T) {
	out, p := runSession(t, "1\n1\n2\n6\n")
	assert.Contains(t, out, "Available items:")
	assert.Contains(t, out, "You take the Sword.")
	assert.Contains(t, out, "0) Sword [Weapon] damage: 10")
	assert.Equal(t, 1, p.Count())
}

func TestRun_AcquireAndEquipWeapon(t *testing.T) {
	out, p := runSession(t, "1\n1\n3\n0\n6\n")
	assert.Contains(t, out, "You equip the Sword. Attack is now 15.")
	require.NotNil(t, p.EquippedWeapon())
	assert.Equal(t, 15, p.Attack())
}

func TestRun_AcquireAndEquipArmor(t *testing.T) {
	out, p := runSession(t, "1\n2\n3\n0\n6\n")
	assert.Contains(t, out, "You equip the Shield. Defense is now 10.")
	require.NotNil(t, p.EquippedArmor())
	assert.Equal(t, 10, p.Defense())
}

func TestRun_DrinkPotionConsumesIt(t *testing.T) {
	out, p := runSession(t, "1\n3\n3\n0\n6\n")
	assert.Contains(t, out, "You drink the Tonic. Health is now 100/100.")
	assert.Equal(t, 0, p.Count())
}

func TestRun_RemoveItem(t *testing.T) {
	out, p := runSession(t, "1\n1\n4\n0\n6\n")
	assert.Contains(t, out, "You discard the Sword.")
	assert.Equal(t, 0, p.Count())
}

func TestRun_UseOnEmptyInventory(t *testing.T) {
	out, _ := runSession(t, "3\n6\n")
	assert.Contains(t, out, "Your inventory is empty.")
}

func TestRun_InvalidInputReprompts(t *testing.T) {
	out, p := runSession(t, "banana\n9\n2\n6\n")
	assert.Contains(t, out, "Enter a number between 1 and 6.")
	assert.Contains(t, out, "Your inventory is empty.")
	assert.Equal(t, 0, p.Count())
}

func TestRun_ShowStats(t *testing.T) {
	out, _ := runSession(t, "5\n6\n")
	assert.Contains(t, out, "Health:  100/100")
	assert.Contains(t, out, "Weapon:  none")
	assert.Contains(t, out, "Armor:   none")
}

func TestRenderInventory_EmptyState(t *testing.T) {
	p := demoPlayer(t)
	assert.Equal(t, "Your inventory is empty.\n", menu.RenderInventory(p))
}

func TestRenderStats_ShowsEquippedGear(t *testing.T) {
	p := demoPlayer(t)
	w, err := item.NewWeapon("Sword", 10)
	require.NoError(t, err)
	require.NoError(t, p.AddItem(w))
	p.EquipWeapon(w)

	out := menu.RenderStats(p)
	assert.Contains(t, out, "Weapon:  Sword")
	assert.Contains(t, out, "Attack:  15")
}

func TestDefSummary_PerKind(t *testing.T) {
	cases := []struct {
		def  *item.ItemDef
		want string
	}{
		{&item.ItemDef{ID: "sword", Name: "Sword", Kind: item.KindWeapon, Damage: 10}, "Sword (weapon, damage 10)"},
		{&item.ItemDef{ID: "shield", Name: "Shield", Kind: item.KindArmor, Defense: 8}, "Shield (armor, defense 8)"},
		{&item.ItemDef{ID: "tonic", Name: "Tonic", Kind: item.KindPotion, Heal: 5}, "Tonic (potion, heals 5)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, menu.DefSummary(c.def))
	}
}
