package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some runs
	if _, err := store.SaveRun("meadow", 10, 150); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("meadow", 5, 80); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("meadow", 20, 400); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different scenario
	if _, err := store.SaveRun("clearing", 3, 60); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Retrieve top runs for meadow
	runs, err := store.TopRuns("meadow", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted by money descending
	if runs[0].Money != 400 {
		t.Errorf("Expected best run to have 400 money, got %d", runs[0].Money)
	}
	if runs[1].Money != 150 {
		t.Errorf("Expected second run to have 150 money, got %d", runs[1].Money)
	}
	if runs[2].Money != 80 {
		t.Errorf("Expected third run to have 80 money, got %d", runs[2].Money)
	}

	// Retrieve top runs for clearing
	clearingRuns, err := store.TopRuns("clearing", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(clearingRuns) != 1 {
		t.Errorf("Expected 1 clearing run, got %d", len(clearingRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 runs
	for i := 0; i < 5; i++ {
		store.SaveRun("test", i+1, (i+1)*100)
	}

	// Request only top 3
	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Money != 500 || runs[1].Money != 400 || runs[2].Money != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestMoney(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	best, err := store.BestMoney("meadow")
	if err != nil {
		t.Fatalf("BestMoney() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best money of 0 for empty scenario, got %d", best)
	}

	// Add runs
	store.SaveRun("meadow", 10, 100)
	store.SaveRun("meadow", 12, 300)
	store.SaveRun("meadow", 8, 200)

	best, err = store.BestMoney("meadow")
	if err != nil {
		t.Fatalf("BestMoney() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best money of 300, got %d", best)
	}
}

func TestStoreLedger(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runID, err := store.SaveRun("meadow", 3, 115)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	entries := []LedgerEntry{
		{Day: 0, Kind: EntryBuy, Item: "Potato Seed", Quantity: 1, Amount: -10},
		{Day: 2, Kind: EntryHarvest, Item: "Potato", Quantity: 1, Amount: 0},
		{Day: 2, Kind: EntrySell, Item: "Potato", Quantity: 1, Amount: 20},
	}
	if err := store.AppendEntries(runID, entries); err != nil {
		t.Fatalf("AppendEntries() failed: %v", err)
	}

	got, err := store.RunLedger(runID)
	if err != nil {
		t.Fatalf("RunLedger() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 ledger entries, got %d", len(got))
	}

	// Insertion order preserved
	if got[0].Kind != EntryBuy || got[0].Amount != -10 {
		t.Errorf("First entry wrong: %+v", got[0])
	}
	if got[1].Kind != EntryHarvest || got[1].Item != "Potato" {
		t.Errorf("Second entry wrong: %+v", got[1])
	}
	if got[2].Kind != EntrySell || got[2].Amount != 20 {
		t.Errorf("Third entry wrong: %+v", got[2])
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runID, _ := store.SaveRun("meadow", 5, 100)
	store.AppendEntries(runID, []LedgerEntry{{Day: 1, Kind: EntrySell, Item: "Potato", Quantity: 1, Amount: 20}})
	store.SaveRun("meadow", 7, 200)
	store.SaveRun("clearing", 2, 50)

	// Clear only meadow runs
	if err := store.ClearRuns("meadow"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	// Meadow should be empty, ledger included
	meadowRuns, _ := store.TopRuns("meadow", 10)
	if len(meadowRuns) != 0 {
		t.Errorf("Expected 0 meadow runs after clear, got %d", len(meadowRuns))
	}
	ledger, _ := store.RunLedger(runID)
	if len(ledger) != 0 {
		t.Errorf("Expected 0 ledger entries after clear, got %d", len(ledger))
	}

	// Clearing should still have runs
	clearingRuns, _ := store.TopRuns("clearing", 10)
	if len(clearingRuns) != 1 {
		t.Errorf("Clearing runs should not be affected by clearing meadow")
	}

	// Clearing a scenario with no runs commits cleanly
	if err := store.ClearRuns("empty"); err != nil {
		t.Errorf("ClearRuns() on empty scenario failed: %v", err)
	}
}

func TestStoreScenarioStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("meadow", 10, 100)
	store.SaveRun("meadow", 20, 300)

	stats, err := store.GetScenarioStats("meadow")
	if err != nil {
		t.Fatalf("GetScenarioStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.BestMoney != 300 {
		t.Errorf("Expected best money 300, got %d", stats.BestMoney)
	}
	if stats.TotalDays != 30 {
		t.Errorf("Expected 30 total days, got %d", stats.TotalDays)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Verify nested directory creation on open
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
