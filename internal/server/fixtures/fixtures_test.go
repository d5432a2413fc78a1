package fixtures

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	require.Len(t, s.Uploads, 5)
	u, ok := s.Upload("5")
	require.True(t, ok)
	assert.Equal(t, ShapeSuccessData, u.Shape)
	assert.Len(t, u.Employees, 12)
	assert.JSONEq(t, `{"id":5,"filename":"march_2024.xlsx","uploaded_at":"2024-03-31T10:00:00Z","status":"processed","employee_count":12}`, string(u.Info))

	restricted, ok := s.Upload("9")
	require.True(t, ok)
	assert.Equal(t, 401, restricted.Status)

	_, ok = s.Upload("404")
	assert.False(t, ok)

	ada, ok := s.User("ada")
	require.True(t, ok)
	assert.Equal(t, "secret", ada.Password)
	assert.NotContains(t, string(ada.Profile), "password")
}

func TestLoad_KeepsKeyOrderAndLiterals(t *testing.T) {
	s, err := Load(strings.NewReader(`
uploads:
  - upload: {id: 1, filename: a.csv}
    employees:
      - zeta: 1
        alpha: 2500.00
        mid: null
        flag: yes
        hex: 0x1F
        when: 2024-01-02
        nested: {b: 1, a: [x, 2]}
`))
	require.NoError(t, err)
	require.Len(t, s.Uploads, 1)

	assert.Equal(t,
		`{"zeta":1,"alpha":2500.00,"mid":null,"flag":"yes","hex":31,"when":"2024-01-02","nested":{"b":1,"a":["x",2]}}`,
		string(s.Uploads[0].Employees[0]))
}

func TestEmployeesBodyShapes(t *testing.T) {
	u := Upload{
		ID:        "3",
		Info:      json.RawMessage(`{"id":3}`),
		Employees: []json.RawMessage{json.RawMessage(`{"id":1}`)},
	}

	tests := []struct {
		shape string
		want  string
	}{
		{ShapeSuccessData, `{"success":true,"data":[{"id":1}],"upload_info":{"id":3}}`},
		{ShapeBareList, `[{"id":1}]`},
		{ShapeResults, `{"count":1,"results":[{"id":1}]}`},
		{ShapeEmployees, `{"employees":[{"id":1}],"upload_info":{"id":3}}`},
	}
	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			u.Shape = tt.shape
			assert.Equal(t, tt.want, string(u.EmployeesBody()))
		})
	}
}

func TestUploadList(t *testing.T) {
	s := &Set{Uploads: []Upload{{Info: json.RawMessage(`{"id":1}`)}, {Info: json.RawMessage(`{"id":2}`)}}}
	assert.Equal(t, `[{"id":1},{"id":2}]`, string(s.UploadList()))
	assert.Equal(t, `[]`, string((&Set{}).UploadList()))
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"missing id":    "uploads:\n  - upload: {filename: a}\n",
		"duplicate id":  "uploads:\n  - upload: {id: 1}\n  - upload: {id: 1}\n",
		"unknown shape": "uploads:\n  - upload: {id: 1}\n    shape: xml\n",
		"not a mapping": "uploads:\n  - upload: [1]\n",
		"no username":   "users:\n  - password: x\n",
		"merge key":     "base: &b {a: 1}\nuploads:\n  - upload: {id: 1}\n    employees:\n      - {<<: *b, c: 2}\n",
		"bad yaml":      "uploads: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Uploads)
}

func TestLoadFile_EmptyPathIsDefault(t *testing.T) {
	s, err := LoadFile("")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Uploads)

	_, err = LoadFile("/does/not/exist.yaml")
	assert.Error(t, err)
}
