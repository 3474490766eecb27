package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FormBody accumulates fields and file parts for a multipart request.
// Field and file order is preserved.
type FormBody struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name, value string
}

type formFile struct {
	field, name string
	data        []byte
}

func NewFormBody() *FormBody {
	return &FormBody{}
}

// AddField appends a plain text field.
func (f *FormBody) AddField(name, value string) *FormBody {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddFile appends a binary part under the given field name. The same field
// may repeat, which is how multiple images are sent.
func (f *FormBody) AddFile(field, filename string, data []byte) *FormBody {
	f.files = append(f.files, formFile{field: field, name: filename, data: data})
	return f
}

// Encode serializes the accumulated parts and returns the body reader along
// with the multipart content type (including the boundary).
func (f *FormBody) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.name)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", file.field, err)
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
