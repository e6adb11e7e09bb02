package service

import (
	"encoding/json"
	"os"
)

// SaveLastEntryPrefs writes the remembered entry-form values to the
// prefs file, replacing whatever was there.
func (s *Service) SaveLastEntryPrefs(prefs map[string]string) error {
	data, err := json.MarshalIndent(prefs, "", "    ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.prefsPath, data, 0o600); err != nil {
		logErr(err, "save prefs")
		return err
	}

	return nil
}

// LoadLastEntryPrefs reads the remembered entry-form values. A missing
// or corrupt file is not an error, it just means no preferences yet.
func (s *Service) LoadLastEntryPrefs() map[string]string {
	data, err := os.ReadFile(s.prefsPath)
	if err != nil {
		return map[string]string{}
	}

	var prefs map[string]string
	if err := json.Unmarshal(data, &prefs); err != nil || prefs == nil {
		return map[string]string{}
	}

	return prefs
}
