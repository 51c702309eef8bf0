package handlers

import (
	"testing"
)

// saveAndRestoreFactories snapshots the injectable factory variables and
// restores them when the test finishes.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()

	origNewZoneLister := newZoneLister
	origLoadValuesFile := loadValuesFile
	origFindConfigFile := findConfigFile
	origEnvOverrides := envOverrides
	origStdout := stdout
	origColored := colored
	origRunWizard := runWizard
	origSaveValues := saveValues
	origWriteFile := writeFile
	origStatFile := statFile

	t.Cleanup(func() {
		newZoneLister = origNewZoneLister
		loadValuesFile = origLoadValuesFile
		findConfigFile = origFindConfigFile
		envOverrides = origEnvOverrides
		stdout = origStdout
		colored = origColored
		runWizard = origRunWizard
		saveValues = origSaveValues
		writeFile = origWriteFile
		statFile = origStatFile
	})
}
