package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimdaved/toolrent/internal/common"
	"github.com/nimdaved/toolrent/internal/entities/authority"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"authority", "user"}, Names())
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("tool")
	require.ErrorIs(t, err, common.ErrUnknownEntity)
}

func TestLookup_Authority(t *testing.T) {
	s, err := Lookup("authority")
	require.NoError(t, err)
	assert.Equal(t, authority.SampleWithRequiredData(), s.Required)
	assert.Equal(t, authority.SampleWithNewData(), s.New)
}

func TestSet_MarshalJSON(t *testing.T) {
	tests := []struct {
		entity string
		want   string
	}{
		{
			entity: "authority",
			want: `{
				"sampleWithRequiredData": {"name": "a0840ef6-4b2d-4c75-bb76-f8e68982c052"},
				"sampleWithPartialData": {"name": "9a3bd5c1-da3b-45a2-8c78-40c581880941"},
				"sampleWithFullData": {"name": "238594f1-de11-472e-a409-d21437757b70"},
				"sampleWithNewData": {"name": null}
			}`,
		},
		{
			entity: "user",
			want: `{
				"sampleWithRequiredData": {"id": 6303, "login": "QtT"},
				"sampleWithPartialData": {"id": 20081, "login": "KS-Ta"},
				"sampleWithFullData": {"id": 9366, "login": "D2WmC"}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			s, err := Lookup(tt.entity)
			require.NoError(t, err)

			b, err := json.Marshal(s)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}
