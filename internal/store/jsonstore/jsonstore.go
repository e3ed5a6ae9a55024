package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/shoplist/internal/model"
)

// JSON export of a session snapshot. Write-only: the list lives in memory
// and nothing here is ever loaded back.

// Stdout is the export path that stands for the caller's standard output.
// Save does not handle it; callers pass their writer to Encode instead.
const Stdout = "-"

// Encode writes the state as indented JSON.
func Encode(w io.Writer, state model.ListState) error {
	if state.Items == nil {
		state.Items = []model.ShoppingItem{}
	}
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Save writes the state to the file at path.
func Save(path string, state model.ListState) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	if err := Encode(f, state); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
