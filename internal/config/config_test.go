package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monitor.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name           string
		content        string
		expected       *Config
		expectedErrMsg string
	}{
		{
			name: "valid config",
			content: `url: https://artifactory.example.com
token: abc123
timeout: 60
`,
			expected: &Config{URL: "https://artifactory.example.com", Token: "abc123", Timeout: 60},
		},
		{
			name:     "partial config is valid",
			content:  "token: abc123\n",
			expected: &Config{Token: "abc123"},
		},
		{
			name:           "malformed yaml",
			content:        "url: [unclosed\n",
			expectedErrMsg: "failed to parse config file",
		},
		{
			name:           "url without scheme is rejected",
			content:        "url: artifactory.example.com\n",
			expectedErrMsg: "url must start with http:// or https://",
		},
		{
			name:           "negative timeout is rejected",
			content:        "timeout: -5\n",
			expectedErrMsg: "timeout must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.content))

			if tc.expectedErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
				assert.Nil(t, cfg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cfg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}
