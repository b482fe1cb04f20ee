// Package validate checks fleet layout JSON files before they are used in a
// match. For every file it checks:
//   - JSON structure and the required name
//   - That every ship class appears exactly once and no unknown class is used
//   - Coordinate format of every bow and stern
//   - The placement rules: straight ships of the right length, on the board,
//     not touching each other
package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/battleship-game/game/config"
	"github.com/wricardo/battleship-game/game/coord"
	"github.com/wricardo/battleship-game/game/engine"
)

// Result captures the outcome of validating a single file. Errors lists every
// problem found; Info carries a short summary of a valid layout.
type Result struct {
	File   string
	Valid  bool
	Errors []string
	Info   []string
}

func (r *Result) fail(format string, a ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, a...))
}

// ValidateFile loads and validates a single layout file. Structural problems
// are accumulated; the placement rules are only checked once the layout is
// structurally sound.
func ValidateFile(path string) Result {
	result := Result{
		File:   filepath.Base(path),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var layout config.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if strings.TrimSpace(layout.Name) == "" {
		result.fail("Layout name is required")
	}

	seen := make(map[string]bool)
	for i, ship := range layout.Ships {
		class, ok := engine.ClassByName(ship.Class)
		if !ok {
			result.fail("Ship %d: unknown class %q", i+1, ship.Class)
		} else if seen[class.Name] {
			result.fail("Ship %d: %s appears more than once", i+1, class.Name)
		} else {
			seen[class.Name] = true
		}

		for _, text := range []string{ship.Start, ship.End} {
			if !coord.IsValidFormat(text) {
				result.fail("Ship %d: invalid coordinate %q", i+1, text)
			}
		}
	}

	for _, class := range engine.Fleet() {
		if !seen[class.Name] {
			result.fail("Missing ship: %s", class.Name)
		}
	}

	if !result.Valid {
		return result
	}

	// Structure is sound, so any remaining error is a placement rule
	if err := layout.PlaceOn(engine.NewBoard()); err != nil {
		result.fail("Placement: %v", err)
		return result
	}

	result.Info = append(result.Info, fmt.Sprintf("✓ Name: %s", layout.Name))
	for _, ship := range layout.Ships {
		result.Info = append(result.Info, fmt.Sprintf("✓ %s: %s-%s", ship.Class, ship.Start, ship.End))
	}
	result.Info = append(result.Info, fmt.Sprintf("✓ Cells: %d", engine.FleetCells()))

	return result
}

// ValidateDir validates every *.json file in dir, in name order
func ValidateDir(dir string) ([]Result, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	sort.Strings(files)

	results := make([]Result, 0, len(files))
	for _, file := range files {
		results = append(results, ValidateFile(file))
	}
	return results, nil
}

// Report prints a concise report of the results and returns whether all of
// them are valid
func Report(w io.Writer, results []Result) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(w, "  "+info)
			}
			continue
		}

		allValid = false
		fmt.Fprintln(w, "❌ INVALID")
		for _, err := range result.Errors {
			fmt.Fprintln(w, "  ❌ "+err)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All layouts are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some layouts have errors")
	}
	return allValid
}
