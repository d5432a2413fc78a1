package models

// Upload is one ingested payroll file as returned by the server. Apart from
// id and filename its metadata is open-ended, so it is kept as a Record.
type Upload struct {
	Record
}

// ID returns the opaque upload identifier as text.
func (u Upload) ID() string {
	return u.Text("id")
}

// Filename returns the original file name, or "" when the server did not
// send one.
func (u Upload) Filename() string {
	return u.Text("filename")
}
