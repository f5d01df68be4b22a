package mixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "mixture.json")
	assert.Nil(t, os.WriteFile(file, []byte(content), 0644))
	return file
}

const validInput = `{
	"components": ["Ethane", "Propane"],
	"moleFractions": [0.25, 0.75],
	"departure": [
		{
			"pair": ["Ethane", "Propane"],
			"type": "Exponential",
			"f": 0.0130424765,
			"n": [0.3, -0.2],
			"d": [1, 2],
			"t": [0.5, 1.5],
			"l": [0, 1]
		}
	]
}`

func TestInputFromJsonRoundTrip(t *testing.T) {
	input, err := InputFromJson(writeInput(t, validInput))
	assert.Nil(t, err)
	assert.Equal(t, []string{"Ethane", "Propane"}, input.Components)
	assert.Equal(t, []float64{0.25, 0.75}, input.MoleFractions)
	assert.Len(t, input.Departure, 1)
	assert.Equal(t, 0.0130424765, input.Departure[0].F)

	s, err := input.BuildState()
	assert.Nil(t, err)

	s.Update(300, 300)
	assert.Greater(t, Fugacity(s, 0, XNIndependent), 0.0)
	assert.Greater(t, s.P(), 0.0)
}

func TestInputFromJsonMissingFile(t *testing.T) {
	_, err := InputFromJson(filepath.Join(t.TempDir(), "absent.json"))
	assert.NotNil(t, err)
}

func TestInputFromJsonMalformed(t *testing.T) {
	_, err := InputFromJson(writeInput(t, `{"components": [`))
	assert.NotNil(t, err)
}

func TestBuildStateDefaultsInteractionMatricesToOnes(t *testing.T) {
	input, err := InputFromJson(writeInput(t, validInput))
	assert.Nil(t, err)
	assert.Nil(t, input.BetaT)

	s, err := input.BuildState()
	assert.Nil(t, err)
	s.Update(300, 300)
	assert.Greater(t, s.Tr(), 0.0)
}

func TestBuildStateRejectsBadInputs(t *testing.T) {
	base, err := InputFromJson(writeInput(t, validInput))
	assert.Nil(t, err)

	unknown := base
	unknown.Components = []string{"Ethane", "Unobtainium"}
	_, err = unknown.BuildState()
	assert.NotNil(t, err)

	mismatched := base
	mismatched.MoleFractions = []float64{1.0}
	_, err = mismatched.BuildState()
	assert.NotNil(t, err)

	badPair := base
	badPair.Departure = []DepartureInput{{Pair: []string{"Ethane", "Methane"}, Type: "Exponential"}}
	_, err = badPair.BuildState()
	assert.NotNil(t, err)

	samePair := base
	samePair.Departure = []DepartureInput{{Pair: []string{"Ethane", "Ethane"}, Type: "Exponential"}}
	_, err = samePair.BuildState()
	assert.NotNil(t, err)

	badType := base
	badType.Departure = []DepartureInput{{
		Pair: []string{"Ethane", "Propane"},
		Type: "Lemmon-Jacobsen",
		N:    []float64{0.1},
		D:    []float64{1},
		T:    []float64{1},
	}}
	_, err = badType.BuildState()
	assert.NotNil(t, err)

	badLengths := base
	badLengths.Departure = []DepartureInput{{
		Pair: []string{"Ethane", "Propane"},
		Type: "Exponential",
		N:    []float64{0.1, 0.2},
		D:    []float64{1},
		T:    []float64{1, 2},
		L:    []float64{0, 1},
	}}
	_, err = badLengths.BuildState()
	assert.NotNil(t, err)
}

func TestStateConstructionValidation(t *testing.T) {
	input, err := InputFromJson(writeInput(t, validInput))
	assert.Nil(t, err)
	s, err := input.BuildState()
	assert.Nil(t, err)

	assert.NotNil(t, s.SetMoleFractions([]float64{1.0}))

	_, err = NewState(nil, nil, nil)
	assert.NotNil(t, err)
}
