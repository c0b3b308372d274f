package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
)

// FormFile is one file part of a multipart request.
type FormFile struct {
	Field    string
	FileName string
	Content  io.Reader
}

// Form is a multipart/form-data payload.
type Form struct {
	Fields map[string]string
	Files  []FormFile
}

// encode writes the form into a buffer and returns it with its content type.
// Fields are written in key order.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	keys := make([]string, 0, len(f.Fields))
	for k := range f.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := w.WriteField(k, f.Fields[k]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	for _, file := range f.Files {
		part, err := w.CreateFormFile(file.Field, file.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("copy part %s: %w", file.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
