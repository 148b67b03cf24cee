package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with separate value",
			args:    []string{"-a", "http://host:5000", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://host:5000"},
		},
		{
			name:    "keeps allowed flag with equals value",
			args:    []string{"--config=conf.json", "-t", "500"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "drops unknown flags entirely",
			args:    []string{"-z", "v", "--other=1"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag without value is kept alone",
			args:    []string{"-a", "-t", "10"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"oncall", "-c", "conf.json", "-a", "http://host"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"oncall", "--config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"oncall", "-a", "http://host"}
	require.Equal(t, "", JsonConfigFlags())
}
