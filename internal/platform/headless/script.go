// Package headless drives a farm model from an action script instead of
// an interactive view. It is the controller side of the simulation: it
// owns the model exclusively, applies one action at a time, and records
// the economy events of the run.
package headless

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/farmstead/internal/farm"
)

// ActionKind enumerates the script commands.
type ActionKind int

const (
	ActMove ActionKind = iota
	ActTill
	ActUntill
	ActPlant
	ActRemove
	ActHarvest
	ActSelect
	ActBuy
	ActSell
	ActNewDay
)

// String returns the script spelling of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActMove:
		return "move"
	case ActTill:
		return "till"
	case ActUntill:
		return "untill"
	case ActPlant:
		return "plant"
	case ActRemove:
		return "remove"
	case ActHarvest:
		return "harvest"
	case ActSelect:
		return "select"
	case ActBuy:
		return "buy"
	case ActSell:
		return "sell"
	case ActNewDay:
		return "day"
	default:
		return "unknown"
	}
}

// Action is one parsed script command.
type Action struct {
	Kind ActionKind
	Dir  farm.Direction // For ActMove
	Item farm.Item      // For ActSelect/ActBuy/ActSell
	Line int            // Source line for diagnostics
}

// ParseScript reads an action script: one command per line, '#' comments
// and blank lines ignored. Movement accepts both direction names and the
// w/a/s/d key aliases; item commands take the item's display name as the
// rest of the line (e.g. "buy Potato Seed").
func ParseScript(r io.Reader) ([]Action, error) {
	var actions []Action

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		action, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("script: reading: %w", err)
	}

	return actions, nil
}

// parseLine parses one non-empty script line.
func parseLine(line string, lineNo int) (Action, error) {
	cmd, rest, _ := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	if dir, ok := parseMove(cmd); ok {
		return Action{Kind: ActMove, Dir: dir, Line: lineNo}, nil
	}

	switch cmd {
	case "till", "t":
		return Action{Kind: ActTill, Line: lineNo}, nil
	case "untill", "u":
		return Action{Kind: ActUntill, Line: lineNo}, nil
	case "plant", "p":
		return Action{Kind: ActPlant, Line: lineNo}, nil
	case "remove", "r":
		return Action{Kind: ActRemove, Line: lineNo}, nil
	case "harvest", "h":
		return Action{Kind: ActHarvest, Line: lineNo}, nil
	case "day", "n":
		return Action{Kind: ActNewDay, Line: lineNo}, nil
	case "select", "buy", "sell":
		item, ok := farm.ParseItem(rest)
		if !ok {
			return Action{}, fmt.Errorf("script: line %d: unknown item %q", lineNo, rest)
		}
		kind := ActSelect
		switch cmd {
		case "buy":
			kind = ActBuy
		case "sell":
			kind = ActSell
		}
		return Action{Kind: kind, Item: item, Line: lineNo}, nil
	default:
		return Action{}, fmt.Errorf("script: line %d: unknown command %q", lineNo, cmd)
	}
}

// parseMove resolves movement commands and their w/a/s/d key aliases.
func parseMove(cmd string) (farm.Direction, bool) {
	switch cmd {
	case "w":
		return farm.DirUp, true
	case "s":
		return farm.DirDown, true
	case "a":
		return farm.DirLeft, true
	case "d":
		return farm.DirRight, true
	}
	return farm.ParseDirection(cmd)
}
