package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/abdullahosa/duo-list/internal/board"
	"github.com/abdullahosa/duo-list/internal/constants"
	"github.com/abdullahosa/duo-list/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	doc, err := ctx.Store.Fetch(context.Background())
	if err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK (%s)\n", ctx.Store.Source())
	}

	// Check 2: document normalizes
	var t board.Table
	if err == nil {
		var normErr error
		t, normErr = board.Normalize(doc)
		if normErr != nil {
			fmt.Printf("⚠ Document shape: WARNING\n")
			fmt.Printf("   %v\n", normErr)
		} else {
			fmt.Printf("✓ Document shape: OK (%d activities)\n", len(t.Records))
		}
	} else {
		fmt.Printf("⊘ Document shape: SKIPPED (store not reachable)\n")
	}

	// Check 3: record integrity (warnings only)
	if err == nil {
		if warnings := checkRecords(t); len(warnings) > 0 {
			fmt.Printf("⚠ Record integrity: WARNING\n")
			for _, w := range warnings {
				fmt.Printf("   %s\n", w)
			}
		} else {
			fmt.Printf("✓ Record integrity: OK\n")
		}
	}

	// Check 4: concurrent sessions. Writes are full-document replace with no
	// locking, so a second writer silently loses updates.
	if others, psErr := concurrentSessions(); psErr != nil {
		fmt.Printf("⊘ Concurrent sessions: SKIPPED (%v)\n", psErr)
	} else if others > 0 {
		fmt.Printf("⚠ Concurrent sessions: WARNING\n")
		fmt.Printf("   %d other %s process(es) running - simultaneous saves overwrite each other\n",
			others, constants.ProcessName)
	} else {
		fmt.Printf("✓ Concurrent sessions: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkRecords(t board.Table) []string {
	var warnings []string

	known := make(map[string]bool, len(models.Categories))
	for _, c := range models.Categories {
		known[c] = true
	}

	seen := make(map[string]bool)
	for _, rec := range t.Records {
		if !known[rec.Category] {
			warnings = append(warnings, fmt.Sprintf("unknown category %q on %q", rec.Category, rec.Activity))
		}
		if rec.Status != "" && !models.ValidStatus(rec.Status) {
			warnings = append(warnings, fmt.Sprintf("unknown status %q on %q", rec.Status, rec.Activity))
		}
		key := rec.Category + "/" + rec.Activity
		if seen[key] {
			warnings = append(warnings, fmt.Sprintf("duplicate activity %q in %s", rec.Activity, rec.Category))
		}
		seen[key] = true
	}

	return warnings
}

// concurrentSessions counts other running duolist processes.
func concurrentSessions() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, fmt.Errorf("cannot list processes: %w", err)
	}

	count := 0
	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.ProcessName) {
			count++
		}
	}
	return count, nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
