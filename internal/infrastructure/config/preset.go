package config

// PresetConfig is the root config for presets/<name>.json.
// A preset describes the starting contents of the playfield, one string per
// row, top row first. Runes missing from Mapping are empty cells.
type PresetConfig struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Rows    []string       `json:"rows"`
	Mapping map[string]int `json:"mapping"` // Rune -> color token
}
