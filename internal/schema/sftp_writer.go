package schema

import (
	_ "embed"
	"fmt"
	"sync"
)

// Canonical SFTP writer field names. The '#' prefix marks secrets.
const (
	KeyHostname   = "hostname"
	KeyPort       = "port"
	KeyUser       = "user"
	KeyPassword   = "#pass"
	KeyPrivateKey = "#private_key"
)

// DefaultPort is the default SFTP port the schema declares.
const DefaultPort = 22

//go:embed sftp_writer.json
var sftpWriterJSON []byte

var (
	sftpWriterOnce sync.Once
	sftpWriterDoc  *Document
)

// SftpWriter returns the configuration form schema of the SFTP writer
// connector. The document is parsed from the embedded canonical JSON
// once; callers must not mutate it.
func SftpWriter() *Document {
	sftpWriterOnce.Do(func() {
		doc, err := Parse(sftpWriterJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded sftp writer schema: %v", err))
		}
		sftpWriterDoc = doc
	})
	return sftpWriterDoc
}

// SftpWriterJSON returns the raw embedded schema document, byte for
// byte as it is served to the form renderer.
func SftpWriterJSON() []byte {
	return sftpWriterJSON
}
