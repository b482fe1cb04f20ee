// Package config provides fleet layout presets for Battleship.
//
// The config package handles:
//   - Loading layout presets from JSON files
//   - Validating a layout against the placement rules of the engine
//   - Discovering and listing the presets in a directory
//
// Layout Format:
//
// A layout places the whole fixed fleet so a player can skip typing
// coordinates during the placement phase:
//
//	{
//	  "name": "Coastal",
//	  "description": "Carrier along the top edge",
//	  "ships": [
//	    {"class": "Aircraft Carrier", "start": "A1", "end": "A5"},
//	    {"class": "Battleship", "start": "C1", "end": "C4"},
//	    {"class": "Submarine", "start": "E1", "end": "E3"},
//	    {"class": "Cruiser", "start": "A10", "end": "C10"},
//	    {"class": "Destroyer", "start": "J6", "end": "J7"}
//	  ]
//	}
//
// Usage:
//
//	manager, err := config.NewManager("layouts")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	layout, err := manager.LoadLayout("coastal")
//	infos, err := manager.ListLayouts()
//
// Validation:
//
// Every layout must name each fleet class exactly once with well formed
// coordinates, and the ships must fit on an empty board without breaking
// any placement rule.
package config
