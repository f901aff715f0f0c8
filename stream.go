package jotson

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf32BEBOM = []byte{0x00, 0x00, 0xFE, 0xFF}
	utf32LEBOM = []byte{0xFF, 0xFE, 0x00, 0x00}
)

// ParseStream reads in to its end and parses the bytes as one document,
// as Parse does.  If a UTF-8 byte-order-mark (BOM) exists, it will be
// stripped.  Because only UTF-8 is supported, other BOMs are errors.
// The bool result is the parse outcome; a non-nil error reports an input
// problem, not a parse failure.
func (r *Reader) ParseStream(in io.Reader, root *Value, collectComments bool) (bool, error) {
	doc, err := io.ReadAll(in)
	if err != nil {
		return false, errors.Wrap(err, "error reading json")
	}
	doc, err = stripBOM(doc)
	if err != nil {
		return false, err
	}
	return r.Parse(doc, root, collectComments), nil
}

// stripBOM discards a UTF-8 BOM and rejects the others.  The four-byte
// BOMs are checked first; UTF-32LE starts with the UTF-16LE mark.
func stripBOM(doc []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(doc, utf32BEBOM), bytes.HasPrefix(doc, utf32LEBOM):
		return nil, errors.New("detected unsupported UTF-32 BOM")
	case bytes.HasPrefix(doc, utf16BEBOM), bytes.HasPrefix(doc, utf16LEBOM):
		return nil, errors.New("detected unsupported UTF-16 BOM")
	case bytes.HasPrefix(doc, utf8BOM):
		return doc[len(utf8BOM):], nil
	}
	return doc, nil
}
