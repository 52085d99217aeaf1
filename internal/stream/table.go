package stream

import (
	"fmt"

	"github.com/chatstream/chatstream-server/internal/presets"
	"github.com/chatstream/chatstream-server/internal/wire"
)

// Tables is pattern P6 (spec §4.5 / S3, S4): introduce one TableA
// component per selected kind, then interleave row updates across tables
// round-robin by row index so every table shows progress immediately.
func Tables(s *Stream, kinds []presets.TableKind) error {
	if len(kinds) > s.limits.MaxTablesPerResponse {
		kinds = kinds[:s.limits.MaxTablesPerResponse]
	}
	ids := make([]string, len(kinds))
	maxRows := 0
	for i, kind := range kinds {
		schema := presets.Tables[kind]
		id, err := s.Introduce(wire.TableA, map[string]any{
			"columns":    schema.Columns,
			"rows":       []any{},
			"total_rows": 0,
		})
		if err != nil {
			return err
		}
		ids[i] = id
		rows := presets.RowCount(kind)
		if rows > s.limits.MaxTableRows {
			rows = s.limits.MaxTableRows
		}
		if rows > maxRows {
			maxRows = rows
		}
	}

	if err := s.Text(fmt.Sprintf("Loading %s … ", tableNarration(kinds))); err != nil {
		return err
	}

	total := 0
	for rowIndex := 0; rowIndex < maxRows; rowIndex++ {
		for i, kind := range kinds {
			row, ok := presets.RowAt(kind, rowIndex)
			if !ok || rowIndex >= s.limits.MaxTableRows {
				continue
			}
			current, _ := s.reg.Get(ids[i])
			rows, _ := current["rows"].([]any)
			newRows := append(append([]any{}, rows...), anyRow(row))
			if err := s.Update(wire.TableA, ids[i], map[string]any{
				"rows":       newRows,
				"total_rows": len(newRows),
			}); err != nil {
				return err
			}
			total++
			if err := s.Sleep(s.timing.TableRowDelay); err != nil {
				return err
			}
		}
	}

	return s.Text(fmt.Sprintf("Loaded %d rows total.", total))
}

func anyRow(row []any) []any {
	out := make([]any, len(row))
	copy(out, row)
	return out
}

func tableNarration(kinds []presets.TableKind) string {
	if len(kinds) == 1 {
		return string(kinds[0])
	}
	return "tables"
}
