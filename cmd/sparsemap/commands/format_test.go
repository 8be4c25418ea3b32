package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := map[string]struct {
		input uint64
		exp   string
	}{
		"zero bytes": {
			input: 0,
			exp:   "0 B",
		},
		"small bytes": {
			input: 512,
			exp:   "512 B",
		},
		"one kibibyte": {
			input: 1024,
			exp:   "1.0 KiB",
		},
		"kibibytes": {
			input: 1536,
			exp:   "1.5 KiB",
		},
		"one mebibyte": {
			input: 1024 * 1024,
			exp:   "1.0 MiB",
		},
		"hundreds of mebibytes": {
			input: 700 * 1024 * 1024,
			exp:   "700.0 MiB",
		},
		"one gibibyte": {
			input: 1024 * 1024 * 1024,
			exp:   "1.0 GiB",
		},
		"one tebibyte": {
			input: 1024 * 1024 * 1024 * 1024,
			exp:   "1.0 TiB",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := FormatBytes(test.input)
			assert.Equal(t, test.exp, got)
		})
	}
}
