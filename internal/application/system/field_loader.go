package system

import (
	"fmt"

	"github.com/younwookim/blockfall/internal/domain/entity"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

// LoadPlayfield builds the starting playfield. Without a preset the field is
// empty; with one, the preset rows are bottom-aligned in the field and any
// rune missing from the mapping is an empty cell.
func LoadPlayfield(field config.FieldConfig, preset *config.PresetConfig) (*entity.Playfield, error) {
	if preset == nil || field.Width <= 0 || field.Height <= 0 {
		return entity.NewPlayfield(field.Width, field.Height)
	}
	if len(preset.Rows) > field.Height {
		return nil, fmt.Errorf("preset %s has %d rows, field has %d", preset.ID, len(preset.Rows), field.Height)
	}

	rows := make([][]entity.Color, field.Height)
	for y := range rows {
		rows[y] = make([]entity.Color, field.Width)
	}

	top := field.Height - len(preset.Rows)
	for i, line := range preset.Rows {
		x := 0
		for _, char := range line {
			if x >= field.Width {
				break
			}
			token, ok := preset.Mapping[string(char)]
			if ok {
				if token < 0 || token > 255 {
					return nil, fmt.Errorf("preset %s maps %q to invalid token %d", preset.ID, char, token)
				}
				rows[top+i][x] = entity.Color(token)
			}
			x++
		}
	}

	for y, row := range rows {
		full := true
		for _, c := range row {
			full = full && !c.IsEmpty()
		}
		if full {
			return nil, fmt.Errorf("preset %s row %d is already full", preset.ID, y)
		}
	}

	return entity.NewPlayfieldFromRows(rows)
}
