package device

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnumerator struct {
	out []byte
	err error
}

func (f *fakeEnumerator) Name() string { return "fake" }

func (f *fakeEnumerator) Enumerate(context.Context) ([]byte, error) {
	return f.out, f.err
}

func TestIdentifier_Identify(t *testing.T) {
	tests := []struct {
		name        string
		out         string
		wantVariant Variant
		wantMatched int
	}{
		{"phoenix", pnputilOutput("1502", "00"), VariantPHX, 1},
		{"krackan", pnputilOutput("17F0", "20"), VariantKRK, 1},
		{"unrecognized", pnputilOutput("17F0", "99"), VariantUnknown, 0},
		{"empty output", "", VariantUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewIdentifier(&fakeEnumerator{out: []byte(tt.out)})

			det, err := id.Identify(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantVariant, det.Variant)
			assert.Len(t, det.MatchedIDs, tt.wantMatched)
			assert.Equal(t, "fake", det.Source)
		})
	}
}

func TestIdentifier_EnumerationError(t *testing.T) {
	boom := errors.New("boom")
	id := NewIdentifier(&fakeEnumerator{err: boom})

	det, err := id.Identify(context.Background())
	assert.Nil(t, det)
	assert.ErrorIs(t, err, boom)
}

func TestIdentifier_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewIdentifier(&fakeEnumerator{}).Identify(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
