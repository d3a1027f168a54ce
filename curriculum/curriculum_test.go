package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndLookup(t *testing.T) {
	require.NoError(t, Load("../data/cbc_curriculum.json"))

	subject, err := Lookup("grade4", "mathematics")
	require.NoError(t, err)

	assert.NotEmpty(t, subject.Name)
	require.NotEmpty(t, subject.Strands)
	assert.NotEmpty(t, subject.Strands[0].Substrands)
}

func TestLookup_UnknownGrade(t *testing.T) {
	require.NoError(t, Load("../data/cbc_curriculum.json"))

	_, err := Lookup("grade99", "mathematics")
	assert.Error(t, err)
}

func TestLookup_UnknownSubject(t *testing.T) {
	require.NoError(t, Load("../data/cbc_curriculum.json"))

	_, err := Lookup("grade4", "astronomy")
	assert.Error(t, err)
}

func TestGrades(t *testing.T) {
	require.NoError(t, Load("../data/cbc_curriculum.json"))

	grades := Grades()
	assert.Contains(t, grades, "grade4")
	assert.Contains(t, grades, "grade5")
}
