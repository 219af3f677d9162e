package inference

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
)

type fakeSession struct {
	runErr    error
	gotInputs map[string]Tensor
	destroyed bool
}

func (s *fakeSession) Run(_ context.Context, inputs map[string]Tensor) error {
	s.gotInputs = inputs
	return s.runErr
}

func (s *fakeSession) Destroy() error {
	s.destroyed = true
	return nil
}

type fakeRuntime struct {
	session   *fakeSession
	createErr error
	gotConfig Config
}

func (r *fakeRuntime) NewSession(_ context.Context, cfg Config) (Session, error) {
	r.gotConfig = cfg
	if r.createErr != nil {
		return nil, r.createErr
	}
	return r.session, nil
}

func newTestSmokeTest(rt Runtime, out *bytes.Buffer) *SmokeTest {
	return &SmokeTest{
		Runtime: rt,
		Config:  NewConfig("/opt/ryzen-ai/quicktest/test_model.onnx", "/opt/ryzen-ai/vaip_config.json", "modelcachekey_quicktest"),
		Out:     out,
		Rand:    rand.New(rand.NewPCG(3, 4)),
	}
}

func TestSmokeTest_Passes(t *testing.T) {
	sess := &fakeSession{}
	rt := &fakeRuntime{session: sess}
	var out bytes.Buffer

	res, err := newTestSmokeTest(rt, &out).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.Empty(t, res.Error)
	assert.Equal(t, "Test Passed", strings.TrimSpace(out.String()))
	assert.True(t, sess.destroyed, "session must be destroyed")

	assert.Equal(t, "VitisAIExecutionProvider", rt.gotConfig.Provider)
	assert.Equal(t, "modelcachekey_quicktest", rt.gotConfig.CacheKey)

	in, ok := sess.gotInputs["input"]
	require.True(t, ok, "input must be keyed by name")
	assert.Equal(t, []int64{1, 3, 32, 32}, in.Shape)
	assert.Len(t, in.Data, 3072)
	for _, v := range in.Data {
		if v < 0 || v >= 1 {
			t.Fatalf("input value %v outside [0,1)", v)
		}
	}
}

func TestSmokeTest_SessionCreateFails(t *testing.T) {
	rt := &fakeRuntime{createErr: errors.New("vaip_config.json not found")}
	var out bytes.Buffer

	res, err := newTestSmokeTest(rt, &out).Run(context.Background())
	require.Error(t, err)

	assert.True(t, qterrors.IsCode(err, qterrors.ErrCodeSessionCreate))
	assert.Equal(t, qterrors.ExitFailure, qterrors.ExitCode(err))
	assert.False(t, res.Passed)
	assert.Equal(t, "Failed to create an InferenceSession: vaip_config.json not found\n", out.String())
	assert.NotContains(t, out.String(), PassedMarker)
}

func TestSmokeTest_RunFails(t *testing.T) {
	sess := &fakeSession{runErr: errors.New("DPU timeout")}
	var out bytes.Buffer

	res, err := newTestSmokeTest(&fakeRuntime{session: sess}, &out).Run(context.Background())
	require.Error(t, err)

	assert.True(t, qterrors.IsCode(err, qterrors.ErrCodeInference))
	assert.Equal(t, qterrors.ExitFailure, qterrors.ExitCode(err))
	assert.False(t, res.Passed)
	assert.Equal(t, "DPU timeout", res.Error)
	assert.Equal(t, "Failed to run the InferenceSession: DPU timeout\n", out.String())
	assert.True(t, sess.destroyed)
}

func TestSmokeTest_NoRuntime(t *testing.T) {
	_, err := (&SmokeTest{}).Run(context.Background())
	assert.True(t, qterrors.IsCode(err, qterrors.ErrCodeInternal))
}

type versionedRuntime struct {
	fakeRuntime
}

func (r *versionedRuntime) Version() string { return "1.20.1" }

func TestSmokeTest_RecordsRuntimeVersion(t *testing.T) {
	rt := &versionedRuntime{fakeRuntime{session: &fakeSession{}}}
	var out bytes.Buffer

	res, err := newTestSmokeTest(rt, &out).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", res.RuntimeVersion)
}
