package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const template = `# pbscope configuration

# raw | hex | base64 | auto
encoding = "raw"

# auto | none | gzip | zstd | snappy
decompress = "auto"

# json | tree
format = "json"
pretty = true

# Read length prefixes as full varints. Off keeps single-byte lengths.
varint_lengths = false

workers = 4
max_input_bytes = 67108864

[log]
level = "info"
`
