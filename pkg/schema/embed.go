package schema

import (
	"embed"
	"io/fs"
)

// FileName is the name of the bundled schema document.
const FileName = "html5_form.schema.json"

// Version is the schema revision. Any change to field names, enumerations or
// conditional requirements must bump it.
const Version = "1.0.0"

//go:embed html5_form.schema.json
var embedded embed.FS

// EmbeddedFS exposes the bundled schema so it can be served or copied.
func EmbeddedFS() fs.FS {
	return embedded
}

// Raw returns a copy of the bundled schema bytes.
func Raw() []byte {
	data, err := fs.ReadFile(embedded, FileName)
	if err != nil {
		// The embed directive guarantees the file exists.
		panic(err)
	}
	return data
}

// Embedded returns the bundled schema wrapped in a Document.
func Embedded() Document {
	return MustNewDocument(SourceFromFS(FileName), Raw())
}
