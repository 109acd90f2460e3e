package config

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed default.yaml
var defaultYAML []byte

func bytesReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}
