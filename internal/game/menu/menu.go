// Package menu implements the interactive console menu that drives the
// player's inventory operations. All user-facing text lives here; input and
// output streams are injected so sessions are testable.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/player"
)

// Menu option numbers as presented to the user.
const (
	optionAcquire = 1
	optionList    = 2
	optionUse     = 3
	optionRemove  = 4
	optionStats   = 5
	optionQuit    = 6
)

// Menu drives a single player through a numbered text menu.
type Menu struct {
	player   *player.Player
	registry *item.Registry
	in       *bufio.Scanner
	out      io.Writer
	logger   *zap.Logger
}

// New constructs a Menu reading from in and writing to out.
//
// Precondition:  p, reg, in, and out must not be nil.
// Postcondition: returns a Menu ready for Run. A nil logger is replaced by
// a no-op logger.
func New(p *player.Player, reg *item.Registry, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		player:   p,
		registry: reg,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
	}
}

// Run loops until the user quits or input is exhausted. Invalid selections
// re-prompt without mutating any state.
//
// Postcondition: returns nil on quit or end of input.
func (m *Menu) Run() error {
	fmt.Fprintf(m.out, "Welcome, %s!\n", m.player.Name())
	for {
		fmt.Fprint(m.out, m.renderOptions())
		choice, err := m.readIntInRange("> ", optionAcquire, optionQuit)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		m.logger.Debug("menu selection",
			zap.String("player", m.player.Name()),
			zap.Int("choice", choice),
		)

		var msg string
		switch choice {
		case optionAcquire:
			msg, err = m.handleAcquire()
		case optionList:
			msg = RenderInventory(m.player)
		case optionUse:
			msg, err = m.handleUse()
		case optionRemove:
			msg, err = m.handleRemove()
		case optionStats:
			msg = RenderStats(m.player)
		case optionQuit:
			fmt.Fprintf(m.out, "Farewell, %s.\n", m.player.Name())
			return nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if msg != "" {
			fmt.Fprint(m.out, msg)
		}
	}
}

// renderOptions returns the numbered option block shown each iteration.
func (m *Menu) renderOptions() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("=== %s  HP %d/%d  ATK %d  DEF %d ===\n",
		m.player.Name(), m.player.Health(), m.player.MaxHealth(),
		m.player.Attack(), m.player.Defense()))
	b.WriteString("1) Acquire item\n")
	b.WriteString("2) List inventory\n")
	b.WriteString("3) Use item\n")
	b.WriteString("4) Remove item\n")
	b.WriteString("5) Show stats\n")
	b.WriteString("6) Quit\n")
	return b.String()
}

// handleAcquire lists the catalog and spawns the chosen def into the
// player's inventory.
func (m *Menu) handleAcquire() (string, error) {
	defs := m.registry.All()
	if len(defs) == 0 {
		return "There is nothing to acquire.\n", nil
	}

	var b strings.Builder
	b.WriteString("Available items:\n")
	for i, d := range defs {
		b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, DefSummary(d)))
	}
	fmt.Fprint(m.out, b.String())

	choice, err := m.readIntInRange("Take which? ", 1, len(defs))
	if err != nil {
		return "", err
	}
	def := defs[choice-1]

	it, err := def.Spawn()
	if err != nil {
		return "", fmt.Errorf("menu: spawning %q: %w", def.ID, err)
	}
	if err := m.player.AddItem(it); err != nil {
		return "", fmt.Errorf("menu: acquiring %q: %w", def.ID, err)
	}
	return fmt.Sprintf("You take the %s.\n", it.Name()), nil
}

// handleUse reads an inventory index and invokes the item's use-effect.
func (m *Menu) handleUse() (string, error) {
	index, it, err := m.chooseItem("Use which item? ")
	if err != nil {
		return "", err
	}
	if it == nil {
		return "Your inventory is empty.\n", nil
	}
	if err := m.player.UseItem(index); err != nil {
		return fmt.Sprintf("Invalid index %d.\n", index), nil
	}

	switch it.Kind() {
	case item.KindWeapon:
		return fmt.Sprintf("You equip the %s. Attack is now %d.\n", it.Name(), m.player.Attack()), nil
	case item.KindArmor:
		return fmt.Sprintf("You equip the %s. Defense is now %d.\n", it.Name(), m.player.Defense()), nil
	case item.KindPotion:
		return fmt.Sprintf("You drink the %s. Health is now %d/%d.\n",
			it.Name(), m.player.Health(), m.player.MaxHealth()), nil
	default:
		return fmt.Sprintf("You use the %s.\n", it.Name()), nil
	}
}

// handleRemove reads an inventory index and discards the item there.
func (m *Menu) handleRemove() (string, error) {
	index, it, err := m.chooseItem("Remove which item? ")
	if err != nil {
		return "", err
	}
	if it == nil {
		return "Your inventory is empty.\n", nil
	}
	if err := m.player.RemoveItemAt(index); err != nil {
		return fmt.Sprintf("Invalid index %d.\n", index), nil
	}
	return fmt.Sprintf("You discard the %s.\n", it.Name()), nil
}

// chooseItem renders the inventory and reads an item index. A nil item with
// nil error means the inventory was empty.
func (m *Menu) chooseItem(prompt string) (int, item.Item, error) {
	if m.player.Count() == 0 {
		return 0, nil, nil
	}
	fmt.Fprint(m.out, RenderInventory(m.player))
	index, err := m.readIntInRange(prompt, 0, m.player.Count()-1)
	if err != nil {
		return 0, nil, err
	}
	it, ok := m.player.ItemAt(index)
	if !ok {
		return 0, nil, fmt.Errorf("menu: no item at index %d", index)
	}
	return index, it, nil
}

// readIntInRange prompts until the user enters an integer in [lo, hi].
// Out-of-range or non-numeric input re-prompts.
//
// Postcondition: returns a value in [lo, hi], or io.EOF when input ends.
func (m *Menu) readIntInRange(prompt string, lo, hi int) (int, error) {
	for {
		fmt.Fprint(m.out, prompt)
		if !m.in.Scan() {
			if err := m.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		line := strings.TrimSpace(m.in.Text())
		n, err := strconv.Atoi(line)
		if err != nil || n < lo || n > hi {
			fmt.Fprintf(m.out, "Enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n, nil
	}
}
