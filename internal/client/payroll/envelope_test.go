package payroll

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope_ShapesNormalizeAlike(t *testing.T) {
	rows := `[{"id":1,"name":"Jo"},{"id":2,"name":"Al"}]`
	info := `{"id":5,"filename":"march.csv"}`

	tests := []struct {
		name     string
		raw      string
		shape    Shape
		wantInfo bool
	}{
		{"success data", `{"success":true,"data":` + rows + `,"upload_info":` + info + `}`, ShapeSuccessData, true},
		{"bare list", rows, ShapeBareList, false},
		{"results", `{"count":2,"results":` + rows + `}`, ShapeResults, false},
		{"employees", `{"employees":` + rows + `,"upload_info":` + info + `}`, ShapeEmployees, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := ParseEnvelope(json.RawMessage(tt.raw))
			assert.Equal(t, tt.shape, env.Shape)

			recs, up := env.Normalize()
			require.Len(t, recs, 2)
			assert.Equal(t, []string{"id", "name"}, recs[0].Keys())
			assert.Equal(t, "Jo", recs[0].Text("name"))
			assert.Equal(t, "2", recs[1].Text("id"))

			if tt.wantInfo {
				require.NotNil(t, up)
				assert.Equal(t, "march.csv", up.Filename())
				assert.Equal(t, "5", up.ID())
			} else {
				assert.Nil(t, up)
			}
		})
	}
}

func TestParseEnvelope_Unrecognized(t *testing.T) {
	for _, raw := range []string{
		`{"foo":1}`,
		`null`,
		`42`,
		`"text"`,
		`not json`,
		`{"success":false,"data":[{"id":1}]}`,
		`{"success":true,"data":{"id":1}}`,
		`{"results":"nope"}`,
	} {
		t.Run(raw, func(t *testing.T) {
			env := ParseEnvelope(json.RawMessage(raw))
			assert.Equal(t, ShapeUnrecognized, env.Shape)

			recs, up := env.Normalize()
			assert.NotNil(t, recs)
			assert.Empty(t, recs)
			assert.Nil(t, up)
		})
	}
}

func TestParseEnvelope_OrderOfPrecedence(t *testing.T) {
	env := ParseEnvelope(json.RawMessage(`{"success":false,"data":[{"id":1}],"results":[{"id":2}]}`))
	assert.Equal(t, ShapeResults, env.Shape)

	env = ParseEnvelope(json.RawMessage(`{"success":1,"data":[{"id":1}],"employees":[{"id":2}]}`))
	assert.Equal(t, ShapeSuccessData, env.Shape)
	recs, _ := env.Normalize()
	assert.Equal(t, "1", recs[0].Text("id"))

	env = ParseEnvelope(json.RawMessage(`{"results":[{"id":2}],"employees":[{"id":3}]}`))
	assert.Equal(t, ShapeResults, env.Shape)
}

func TestParseEnvelope_EmptyListAndNonObjectElements(t *testing.T) {
	env := ParseEnvelope(json.RawMessage(`[]`))
	assert.Equal(t, ShapeBareList, env.Shape)
	recs, _ := env.Normalize()
	assert.Empty(t, recs)

	env = ParseEnvelope(json.RawMessage(`[{"id":1},3,"x",null]`))
	assert.Equal(t, 3, env.NonObjects)
	recs, _ = env.Normalize()
	require.Len(t, recs, 4)
	assert.Equal(t, []string{"id"}, recs[0].Keys())
	for _, r := range recs[1:] {
		assert.Empty(t, r.Keys())
	}
}

func TestParseEnvelope_NonObjectUploadInfoIgnored(t *testing.T) {
	env := ParseEnvelope(json.RawMessage(`{"employees":[],"upload_info":"march.csv"}`))
	assert.Equal(t, ShapeEmployees, env.Shape)
	_, up := env.Normalize()
	assert.Nil(t, up)
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "success-data", ShapeSuccessData.String())
	assert.Equal(t, "bare-list", ShapeBareList.String())
	assert.Equal(t, "results", ShapeResults.String())
	assert.Equal(t, "employees", ShapeEmployees.String())
	assert.Equal(t, "unrecognized", ShapeUnrecognized.String())
}
