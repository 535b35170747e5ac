package fundtrack

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// EnvDataFile overrides the default location of the data file.
const EnvDataFile = "FUNDTRACK_DATA"

// DefaultDataFile resolves the data file path: the FUNDTRACK_DATA
// environment variable if set, otherwise ~/.fundtrack/funds.json.
func DefaultDataFile() string {
	if p := os.Getenv(EnvDataFile); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// fall back to the working directory
		return "funds.json"
	}
	return filepath.Join(home, ".fundtrack", "funds.json")
}

// LoadState reads the state from path. A missing file is not an error: the
// first run starts from the default dataset.
func LoadState(path string) (*State, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Printf("no data file at %s, starting from the sample dataset", path)
		return DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open data file %s: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeState(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read data file %s: %w", path, err)
	}
	return s, nil
}

// SaveState writes the state to path, creating parent directories as needed.
// The document is written to a temporary file first and renamed into place,
// so a crash mid-write never truncates the previous dataset.
func SaveState(path string, s *State) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create data directory %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".funds-*.json")
	if err != nil {
		return fmt.Errorf("cannot create temporary data file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeState(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temporary data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot save data file %s: %w", path, err)
	}
	return nil
}
