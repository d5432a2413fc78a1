// Package fixtures loads the uploads, employees and users the stub server
// serves. Fixtures are YAML; every object is re-encoded as JSON in its
// document key order so clients see a stable column order.
package fixtures

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixtures []byte

// Employees response layouts an upload can be served in.
const (
	ShapeSuccessData = "success-data"
	ShapeBareList    = "bare-list"
	ShapeResults     = "results"
	ShapeEmployees   = "employees"
)

type User struct {
	Username string
	Password string
	// Profile is the user object without the password.
	Profile json.RawMessage
}

type Upload struct {
	ID    string
	Info  json.RawMessage
	Shape string
	// Status, when non-zero, replaces every response for this upload with
	// {"detail": Detail}.
	Status    int
	Detail    string
	Employees []json.RawMessage
}

type Set struct {
	Users   []User
	Uploads []Upload
}

type rawSet struct {
	Users   []yaml.Node `yaml:"users"`
	Uploads []rawUpload `yaml:"uploads"`
}

type rawUpload struct {
	Upload    yaml.Node   `yaml:"upload"`
	Shape     string      `yaml:"shape"`
	Status    int         `yaml:"status"`
	Detail    string      `yaml:"detail"`
	Employees []yaml.Node `yaml:"employees"`
}

// Default returns the built-in fixture set.
func Default() (*Set, error) {
	return Load(bytes.NewReader(defaultFixtures))
}

// LoadFile reads fixtures from path, or the built-in set when path is empty.
func LoadFile(path string) (*Set, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Load(r io.Reader) (*Set, error) {
	var raw rawSet
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	s := &Set{}
	for i := range raw.Users {
		u, err := buildUser(&raw.Users[i])
		if err != nil {
			return nil, fmt.Errorf("user %d: %w", i, err)
		}
		s.Users = append(s.Users, u)
	}

	seen := map[string]bool{}
	for i := range raw.Uploads {
		u, err := buildUpload(&raw.Uploads[i])
		if err != nil {
			return nil, fmt.Errorf("upload %d: %w", i, err)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("upload %d: duplicate id %q", i, u.ID)
		}
		seen[u.ID] = true
		s.Uploads = append(s.Uploads, u)
	}
	return s, nil
}

func buildUser(n *yaml.Node) (User, error) {
	var fields struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	}
	if err := n.Decode(&fields); err != nil {
		return User{}, err
	}
	if fields.Username == "" {
		return User{}, fmt.Errorf("username is required")
	}
	profile, err := nodeJSON(n, "password")
	if err != nil {
		return User{}, err
	}
	return User{Username: fields.Username, Password: fields.Password, Profile: profile}, nil
}

func buildUpload(ru *rawUpload) (Upload, error) {
	if ru.Upload.Kind != yaml.MappingNode {
		return Upload{}, fmt.Errorf("upload must be a mapping")
	}
	var head struct {
		ID any `yaml:"id"`
	}
	if err := ru.Upload.Decode(&head); err != nil {
		return Upload{}, err
	}
	if head.ID == nil {
		return Upload{}, fmt.Errorf("upload.id is required")
	}

	info, err := nodeJSON(&ru.Upload)
	if err != nil {
		return Upload{}, err
	}

	shape := ru.Shape
	if shape == "" {
		shape = ShapeSuccessData
	}
	switch shape {
	case ShapeSuccessData, ShapeBareList, ShapeResults, ShapeEmployees:
	default:
		return Upload{}, fmt.Errorf("unknown shape %q", shape)
	}

	emps := make([]json.RawMessage, 0, len(ru.Employees))
	for i := range ru.Employees {
		e, err := nodeJSON(&ru.Employees[i])
		if err != nil {
			return Upload{}, fmt.Errorf("employee %d: %w", i, err)
		}
		emps = append(emps, e)
	}

	return Upload{
		ID:        strings.TrimSpace(fmt.Sprint(head.ID)),
		Info:      info,
		Shape:     shape,
		Status:    ru.Status,
		Detail:    ru.Detail,
		Employees: emps,
	}, nil
}

func (s *Set) Upload(id string) (*Upload, bool) {
	for i := range s.Uploads {
		if s.Uploads[i].ID == id {
			return &s.Uploads[i], true
		}
	}
	return nil, false
}

func (s *Set) User(username string) (*User, bool) {
	for i := range s.Users {
		if s.Users[i].Username == username {
			return &s.Users[i], true
		}
	}
	return nil, false
}

// UploadList is the JSON array of every upload's info, in fixture order.
func (s *Set) UploadList() json.RawMessage {
	infos := make([]json.RawMessage, len(s.Uploads))
	for i, u := range s.Uploads {
		infos[i] = u.Info
	}
	return joinArray(infos)
}

// EmployeesBody renders the upload's employees in its configured shape.
func (u *Upload) EmployeesBody() json.RawMessage {
	list := joinArray(u.Employees)

	var buf bytes.Buffer
	switch u.Shape {
	case ShapeBareList:
		return list
	case ShapeResults:
		fmt.Fprintf(&buf, `{"count":%d,"results":%s}`, len(u.Employees), list)
	case ShapeEmployees:
		fmt.Fprintf(&buf, `{"employees":%s,"upload_info":%s}`, list, u.Info)
	default:
		fmt.Fprintf(&buf, `{"success":true,"data":%s,"upload_info":%s}`, list, u.Info)
	}
	return buf.Bytes()
}

func joinArray(items []json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(it)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
