package stops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/stopfinder/pkg/stoperrors"
)

func TestFilterApply(t *testing.T) {
	records := []StopRecord{
		{AtcoCode: "1", CommonName: "Market Place", Status: "Active", StopType: "BCT"},
		{AtcoCode: "2", CommonName: "Market Street", Status: "inactive", StopType: "BCT"},
		{AtcoCode: "3", CommonName: "Market Hall", Status: "ACTIVE", StopType: "BCS"},
	}

	active, err := CompileFilter("IsActive()")
	require.NoError(t, err)

	filtered, err := active.Apply(records)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].AtcoCode)
	assert.Equal(t, "3", filtered[1].AtcoCode)

	onStreet, err := CompileFilter(`StopType == "BCT" && CommonName contains "Street"`)
	require.NoError(t, err)

	filtered, err = onStreet.Apply(records)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].AtcoCode)
}

func TestCompileFilterRejectsInvalidExpressions(t *testing.T) {
	for _, expression := range []string{`CommonName`, `Unknown == 1`, `Status ==`} {
		_, err := CompileFilter(expression)
		assert.True(t, stoperrors.IsValidation(err), expression)
	}
}
