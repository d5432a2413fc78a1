package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Request describes one call. Path is relative to the client's base URL and
// may carry a query string.
//
// Body may be nil, a *FormData (multipart), an io.Reader (sent as-is),
// json.RawMessage or []byte (sent as JSON text), or any value encodable by
// encoding/json.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   any
}

// Response is a completed exchange. Data holds the decoded JSON body; a
// non-JSON body is kept as a JSON string and an empty body as nil.
type Response struct {
	Status  int
	Header  http.Header
	Data    json.RawMessage
	Request *Request
}

// FormData is a multipart/form-data body.
type FormData struct {
	parts []formPart
}

type formPart struct {
	name     string
	filename string
	value    string
	content  io.Reader
}

func (f *FormData) AddField(name, value string) *FormData {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

func (f *FormData) AddFile(name, filename string, content io.Reader) *FormData {
	f.parts = append(f.parts, formPart{name: name, filename: filename, content: content})
	return f
}

func (f *FormData) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range f.parts {
		if p.content == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", err
			}
			continue
		}
		fw, err := w.CreateFormFile(p.name, p.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(fw, p.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// encodeBody returns the wire body and, for multipart, the content type
// carrying the boundary.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *FormData:
		return b.encode()
	case io.Reader:
		return b, "", nil
	case json.RawMessage:
		return bytes.NewReader(b), "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("encode request body: %w", err)
		}
		return bytes.NewReader(raw), "", nil
	}
}

// decodeData keeps JSON bodies as-is and wraps anything else in a JSON string.
func decodeData(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	s, _ := json.Marshal(string(body))
	return s
}
