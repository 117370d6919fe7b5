// Package viewercfg persists viewer preferences across runs as a small JSON
// file. Frustum dimensions live here too so the viewer reopens with the shape
// it was closed on; flags can still override them per run.
package viewercfg

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultPath is the preferences file location, relative to the process
// working directory.
const DefaultPath = "config/viewer.json"

// Dimensions are the persisted frustum parameters, in meters
type Dimensions struct {
	TopDiameter    float64 `json:"top_diameter"`
	BottomDiameter float64 `json:"bottom_diameter"`
	Height         float64 `json:"height"`
	Segments       int     `json:"segments"`
}

// Prefs holds viewer preferences. In-memory scene state is separate and
// never persisted.
type Prefs struct {
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
	ShowGrid     bool    `json:"show_grid"`
	ShowAxes     bool    `json:"show_axes"`
	MeshColor    string  `json:"mesh_color"`
	MeshOpacity  float64 `json:"mesh_opacity"`

	Dimensions Dimensions `json:"dimensions"`

	DashboardAddr string `json:"dashboard_addr,omitempty"`
}

// Default returns the out-of-the-box preferences
func Default() Prefs {
	return Prefs{
		WindowWidth:  1280,
		WindowHeight: 720,
		ShowGrid:     true,
		ShowAxes:     false,
		MeshColor:    "#add8e6",
		MeshOpacity:  0.9,
		Dimensions: Dimensions{
			TopDiameter:    2.0,
			BottomDiameter: 1.0,
			Height:         5.0,
			Segments:       32,
		},
		DashboardAddr: ":8080",
	}
}

// Load reads preferences from path. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed
func Save(path string, p Prefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
