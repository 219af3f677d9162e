package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"ascii passthrough", []byte(`PCI\VEN_1022&DEV_1502&REV_00`), `PCI\VEN_1022&DEV_1502&REV_00`},
		{"empty", nil, ""},
		{"euro sign", []byte{0x80}, "€"},
		{"latin accent", []byte("Ger\xe4t"), "Gerät"},
		{"crlf preserved", []byte("a\r\nb"), "a\r\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.raw))
		})
	}
}

func TestDecode_NonUTF8StillClassifies(t *testing.T) {
	raw := append([]byte("Ger\xe4tebeschreibung: NPU\r\n"), []byte(`PCI\VEN_1022&DEV_17F0&REV_11`)...)
	assert.Equal(t, VariantSTX, Classify(Decode(raw)))
}
