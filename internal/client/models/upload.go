package models

import "io"

// Upload is a binary attachment sent as one part of a multipart request.
type Upload struct {
	FileName string
	Content  io.Reader
}
