package device

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/npu-quicktest/pkg/defaults"
	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
)

func TestPnPUtilEnumerator_InvokesCommand(t *testing.T) {
	var gotName string
	var gotArgs []string
	var hadDeadline bool

	e := &PnPUtilEnumerator{run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		_, hadDeadline = ctx.Deadline()
		return []byte(`PCI\VEN_1022&DEV_17F0&REV_20`), nil
	}}

	out, err := e.Enumerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pnputil", gotName)
	assert.Equal(t, []string{"/enum-devices", "/bus", "PCI", "/deviceids"}, gotArgs)
	assert.True(t, hadDeadline, "enumeration should be bounded by a timeout")
	assert.Equal(t, VariantKRK, Classify(Decode(out)))
	assert.Equal(t, "pnputil", e.Name())
}

func TestPnPUtilEnumerator_BoundedUnderLongerDeadline(t *testing.T) {
	var deadline time.Time
	e := &PnPUtilEnumerator{run: func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
		deadline, _ = ctx.Deadline()
		return nil, nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 3*defaults.EnumerationTimeout)
	defer cancel()

	start := time.Now()
	_, err := e.Enumerate(ctx)
	require.NoError(t, err)
	require.False(t, deadline.IsZero())
	assert.False(t, deadline.After(start.Add(defaults.EnumerationTimeout).Add(time.Second)),
		"deadline %v exceeds the enumeration timeout", deadline.Sub(start))
}

func TestPnPUtilEnumerator_StartFailure(t *testing.T) {
	e := &PnPUtilEnumerator{run: func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("executable file not found in %PATH%")
	}}

	_, err := e.Enumerate(context.Background())
	require.Error(t, err)
	assert.True(t, qterrors.IsCode(err, qterrors.ErrCodeEnumeration))
}

func TestPnPUtilEnumerator_Timeout(t *testing.T) {
	e := &PnPUtilEnumerator{run: func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
		<-ctx.Done()
		return nil, errors.New("signal: killed")
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := e.Enumerate(ctx)
	require.Error(t, err)
	assert.True(t, qterrors.IsCode(err, qterrors.ErrCodeTimeout))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewDefaultEnumerator(t *testing.T) {
	e := NewDefaultEnumerator()
	require.NotNil(t, e)
	assert.Contains(t, []string{"pnputil", "sysfs"}, e.Name())
}
