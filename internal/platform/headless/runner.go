package headless

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/farmstead/internal/farm"
	"github.com/vovakirdan/farmstead/internal/scenario"
	"github.com/vovakirdan/farmstead/internal/storage"
)

// Report summarizes a completed run.
type Report struct {
	ScenarioID string
	Days       int
	Money      int
	Energy     int
	Harvested  map[farm.Item]int
	Applied    int
	Rejected   int
}

// Runner applies script actions to a model one at a time. Ground actions
// (till, untill, plant, remove, harvest) target the tile the player is
// standing on, matching how the interactive controls work. Rejected
// actions are logged and counted but never abort the run.
type Runner struct {
	model      *farm.Model
	scenarioID string
	store      *storage.Store // May be nil; the run then goes unrecorded
	logger     *log.Logger

	entries   []storage.LedgerEntry
	harvested map[farm.Item]int
	applied   int
	rejected  int
}

// NewRunner constructs a fresh model from the scenario and wraps it in a
// runner.
func NewRunner(sc scenario.Scenario, tables farm.Tables, store *storage.Store) (*Runner, error) {
	model, err := sc.NewModel(tables)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "farmstead",
	})

	return &Runner{
		model:      model,
		scenarioID: sc.ID,
		store:      store,
		logger:     logger,
		harvested:  make(map[farm.Item]int),
	}, nil
}

// Model returns the model being driven.
func (r *Runner) Model() *farm.Model {
	return r.model
}

// Run applies every action in order and returns the final report.
func (r *Runner) Run(actions []Action) Report {
	for _, action := range actions {
		r.Apply(action)
	}
	return r.Report()
}

// Apply executes a single action against the model.
func (r *Runner) Apply(action Action) {
	m := r.model
	pos := m.PlayerPosition()

	switch action.Kind {
	case ActMove:
		m.MovePlayer(action.Dir)
		r.applied++

	case ActTill:
		r.track(action, m.Till(pos))

	case ActUntill:
		r.track(action, m.Untill(pos))

	case ActPlant:
		selected, ok := m.Player().SelectedItem()
		if !ok {
			r.reject(action, "no item selected")
			return
		}
		species, ok := selected.Species()
		if !ok {
			r.reject(action, "selected item is not a seed")
			return
		}
		r.track(action, m.Plant(pos, species))

	case ActRemove:
		m.RemovePlant(pos)
		r.applied++

	case ActHarvest:
		stack, err := m.Harvest(pos)
		if r.track(action, err) {
			r.harvested[stack.Item] += stack.Quantity
			r.entries = append(r.entries, storage.LedgerEntry{
				Day:      m.DaysElapsed(),
				Kind:     storage.EntryHarvest,
				Item:     stack.Item.String(),
				Quantity: stack.Quantity,
			})
		}

	case ActSelect:
		if !m.SelectItem(action.Item) {
			r.reject(action, "item not in inventory")
			return
		}
		r.applied++

	case ActBuy:
		if r.track(action, m.Buy(action.Item)) {
			price, _ := m.Price(action.Item)
			r.entries = append(r.entries, storage.LedgerEntry{
				Day:      m.DaysElapsed(),
				Kind:     storage.EntryBuy,
				Item:     action.Item.String(),
				Quantity: 1,
				Amount:   -price.Buy,
			})
		}

	case ActSell:
		if r.track(action, m.Sell(action.Item)) {
			price, _ := m.Price(action.Item)
			r.entries = append(r.entries, storage.LedgerEntry{
				Day:      m.DaysElapsed(),
				Kind:     storage.EntrySell,
				Item:     action.Item.String(),
				Quantity: 1,
				Amount:   price.Sell,
			})
		}

	case ActNewDay:
		m.NewDay()
		r.applied++
	}
}

// track counts the action as applied or rejected based on the model's
// answer. Returns true when the action applied.
func (r *Runner) track(action Action, err error) bool {
	if err != nil {
		r.rejected++
		r.logger.Warn("action rejected",
			"line", action.Line,
			"action", action.Kind.String(),
			"error", err,
		)
		return false
	}
	r.applied++
	return true
}

// reject counts a runner-level rejection that never reached the model.
func (r *Runner) reject(action Action, reason string) {
	r.rejected++
	r.logger.Warn("action rejected",
		"line", action.Line,
		"action", action.Kind.String(),
		"error", reason,
	)
}

// Report returns the run summary so far.
func (r *Runner) Report() Report {
	harvested := make(map[farm.Item]int, len(r.harvested))
	for item, n := range r.harvested {
		harvested[item] = n
	}
	return Report{
		ScenarioID: r.scenarioID,
		Days:       r.model.DaysElapsed(),
		Money:      r.model.Player().Money(),
		Energy:     r.model.Player().Energy(),
		Harvested:  harvested,
		Applied:    r.applied,
		Rejected:   r.rejected,
	}
}

// Commit persists the run and its ledger. Returns the run ID, or zero
// when no store is attached.
func (r *Runner) Commit() (int64, error) {
	if r.store == nil {
		return 0, nil
	}
	runID, err := r.store.SaveRun(r.scenarioID, r.model.DaysElapsed(), r.model.Player().Money())
	if err != nil {
		return 0, err
	}
	if err := r.store.AppendEntries(runID, r.entries); err != nil {
		return 0, err
	}
	return runID, nil
}
