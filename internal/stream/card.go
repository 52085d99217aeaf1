package stream

import (
	"fmt"
	"time"

	"github.com/chatstream/chatstream-server/internal/presets"
	"github.com/chatstream/chatstream-server/internal/wire"
)

// CardSingleNormal is pattern P4 (spec §4.4 single-normal / S1): introduce
// empty, narrate, fill in one shot, narrate completion.
func CardSingleNormal(s *Stream) error {
	id, err := s.Introduce(wire.SimpleComponent, map[string]any{})
	if err != nil {
		return err
	}
	if err := s.Text("Generating your card … "); err != nil {
		return err
	}
	c := presets.CardAt(0)
	full := map[string]any{
		"title":       c.Title,
		"description": c.Description,
		"value":       c.Value,
		"timestamp":   now(),
	}
	if err := s.Update(wire.SimpleComponent, id, full); err != nil {
		return err
	}
	return s.Text("All set!")
}

// CardSingleDelayed is pattern P1 (spec §4.4 single-delayed): introduce
// partial, narrate, hold the hard 5s wait, then fill the remaining field.
func CardSingleDelayed(s *Stream) error {
	c := presets.CardAt(0)
	id, err := s.Introduce(wire.SimpleComponent, map[string]any{
		"title": c.Title,
		"date":  now(),
	})
	if err != nil {
		return err
	}
	if err := s.Text("Generating units … please wait."); err != nil {
		return err
	}
	if err := s.Sleep(s.timing.SingleDelayedWait); err != nil {
		return err
	}
	if err := s.Update(wire.SimpleComponent, id, map[string]any{"units": c.Units}); err != nil {
		return err
	}
	return s.Text("Units ready.")
}

// CardMultiNormal is pattern P3 (spec §4.4 multi-normal): introduce N empty
// cards, narrate once, then fill each in turn. n is already clamped to the
// configured component maximum by the caller.
func CardMultiNormal(s *Stream, n int) error {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id, err := s.Introduce(wire.SimpleComponent, map[string]any{})
		if err != nil {
			return err
		}
		ids[i] = id
	}
	if err := s.Text(fmt.Sprintf("Loading %d cards … ", n)); err != nil {
		return err
	}
	for i, id := range ids {
		c := presets.CardAt(i)
		patch := map[string]any{
			"title":       c.Title,
			"description": c.Description,
			"value":       100 * (i + 1),
			"timestamp":   now(),
		}
		if err := s.Update(wire.SimpleComponent, id, patch); err != nil {
			return err
		}
	}
	return s.Text("All cards ready!")
}

// CardMultiDelayed is pattern P2 (spec §4.4 multi-delayed / S2): same shape
// as CardMultiNormal but with a shared hard 3s wait and a narrower update
// payload per card.
func CardMultiDelayed(s *Stream, n int) error {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id, err := s.Introduce(wire.SimpleComponent, map[string]any{
			"title":       fmt.Sprintf("Delayed Card #%d", i+1),
			"date":        now(),
			"description": "Generating units … please wait.",
		})
		if err != nil {
			return err
		}
		ids[i] = id
	}
	if err := s.Text(fmt.Sprintf("Processing %d delayed cards…", n)); err != nil {
		return err
	}
	if err := s.Sleep(s.timing.MultiDelayedWait); err != nil {
		return err
	}
	for i, id := range ids {
		patch := map[string]any{
			"description": "Units added successfully!",
			"units":       50 * (i + 1),
		}
		if err := s.Update(wire.SimpleComponent, id, patch); err != nil {
			return err
		}
	}
	return s.Text("All cards ready!")
}

// CardIncremental is pattern P5 (spec §4.4 incremental): one component
// filled one field at a time, each update its own frame.
func CardIncremental(s *Stream) error {
	id, err := s.Introduce(wire.SimpleComponent, map[string]any{})
	if err != nil {
		return err
	}
	if err := s.Text("Building your card step by step … "); err != nil {
		return err
	}
	c := presets.CardAt(0)
	steps := []map[string]any{
		{"title": c.Title},
		{"description": c.Description},
		{"value": c.Value},
	}
	for _, patch := range steps {
		if err := s.Update(wire.SimpleComponent, id, patch); err != nil {
			return err
		}
	}
	return s.Text("All set!")
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }
