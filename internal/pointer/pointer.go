// Package pointer models the checkpoint pointer file: a small text record
// naming which saved model snapshot the trainer should treat as current.
// The on-disk format follows the TensorFlow checkpoint-index convention
// (model_checkpoint_path / all_model_checkpoint_paths).
package pointer

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

// Pointer is one checkpoint selection. Primary is always the first element
// of All; New is the only way callers should build one, so the invariant
// holds by construction.
type Pointer struct {
	Primary string
	All     []string
}

// New builds a pointer whose primary checkpoint is name. Any history
// entries follow it in All.
func New(name string, history ...string) Pointer {
	all := make([]string, 0, 1+len(history))
	all = append(all, name)
	all = append(all, history...)
	return Pointer{Primary: name, All: all}
}

// Name renders the canonical checkpoint name for an episode,
// "<prefix>_<episode>" with the episode as a plain decimal.
func Name(prefix string, episode int) string {
	return prefix + "_" + strconv.Itoa(episode)
}

// Encode renders the pointer file bytes: the primary path line, newline
// terminated, then one all_model_checkpoint_paths line per entry. The last
// line carries no trailing newline, matching the format consumed by the
// trainer.
func (p Pointer) Encode() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "model_checkpoint_path: %q\n", p.Primary)
	for i, path := range p.All {
		fmt.Fprintf(&buf, "all_model_checkpoint_paths: %q", path)
		if i < len(p.All)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// Write persists the pointer to path, truncating any previous content. The
// file is fully overwritten on every call; no history of earlier pointers
// survives.
func Write(path string, p Pointer) error {
	if err := os.WriteFile(path, p.Encode(), 0o644); err != nil {
		return fmt.Errorf("writing checkpoint pointer %s: %w", path, err)
	}
	return nil
}
