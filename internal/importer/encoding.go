package importer

import (
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// windows1252Reader decodes a Windows-1252 export into UTF-8.
func windows1252Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, charmap.Windows1252.NewDecoder())
}

// latin1Reader decodes an ISO 8859-1 export into UTF-8.
func latin1Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
}

// bomReader strips a UTF-8 byte order mark if one is present.
func bomReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
