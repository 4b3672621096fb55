package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples_DistinctPositiveIDs(t *testing.T) {
	samples := []User{SampleWithRequiredData(), SampleWithPartialData(), SampleWithFullData()}

	ids := make(map[int64]struct{}, len(samples))
	for _, s := range samples {
		require.Positive(t, s.ID)
		require.NotEmpty(t, s.Login)
		ids[s.ID] = struct{}{}
	}
	assert.Len(t, ids, len(samples))
}

func TestSampleWithFullData(t *testing.T) {
	require.Equal(t, User{ID: 9366, Login: "D2WmC"}, SampleWithFullData())

	b, err := json.Marshal(SampleWithFullData())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9366,"login":"D2WmC"}`, string(b))
}

func TestSamples_MutatingCopyDoesNotLeak(t *testing.T) {
	s := SampleWithRequiredData()
	s.ID = 1
	s.Login = "x"
	assert.Equal(t, User{ID: 6303, Login: "QtT"}, SampleWithRequiredData())
}

func TestSamples_Idempotent(t *testing.T) {
	assert.Equal(t, SampleWithPartialData(), SampleWithPartialData())
	assert.Equal(t, User{ID: 20081, Login: "KS-Ta"}, SampleWithPartialData())
}
