package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	c := NewConfig("/opt/ryzen-ai/quicktest/test_model.onnx", "/opt/ryzen-ai/vaip_config.json", "modelcachekey_quicktest")

	assert.Equal(t, "VitisAIExecutionProvider", c.Provider)
	assert.Equal(t, "input", c.InputName)
	assert.Equal(t, []int64{1, 3, 32, 32}, c.InputShape)
	assert.NoError(t, c.Validate())

	c.InputShape[0] = 8
	assert.Equal(t, int64(1), DefaultInputShape[0], "config must not alias the default shape")
}

func TestConfig_ProviderOptions(t *testing.T) {
	c := NewConfig("m.onnx", "vaip_config.json", "key")
	assert.Equal(t, map[string]string{
		"config_file": "vaip_config.json",
		"cacheKey":    "key",
	}, c.ProviderOptions())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no model", func(c *Config) { c.ModelPath = "" }},
		{"no input name", func(c *Config) { c.InputName = "" }},
		{"no shape", func(c *Config) { c.InputShape = nil }},
		{"zero dim", func(c *Config) { c.InputShape = []int64{1, 0, 32, 32} }},
		{"negative dim", func(c *Config) { c.InputShape = []int64{-1, 3, 32, 32} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig("m.onnx", "cfg.json", "key")
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestProviderAPIName(t *testing.T) {
	assert.Equal(t, "VitisAI", providerAPIName("VitisAIExecutionProvider"))
	assert.Equal(t, "VitisAI", providerAPIName("VitisAI"))
	assert.Equal(t, "QNN", providerAPIName("QNNExecutionProvider"))
}
