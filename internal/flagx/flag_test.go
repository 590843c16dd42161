package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		owned []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-d", "trips.db", "-l", "debug"},
			owned: []string{"-d"},
			want:  []string{"-d", "trips.db"},
		},
		{
			name:  "equals form",
			args:  []string{"-config=alt.json", "-d", "trips.db"},
			owned: []string{"-c", "-config"},
			want:  []string{"-config=alt.json"},
		},
		{
			name:  "unknown flags dropped",
			args:  []string{"-x", "1", "-y=2", "positional"},
			owned: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "dangling flag at end",
			args:  []string{"-c"},
			owned: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "next token is another flag",
			args:  []string{"-c", "-d"},
			owned: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "repeated flag keeps order",
			args:  []string{"-m", "RON", "-m", "EUR"},
			owned: []string{"-m"},
			want:  []string{"-m", "RON", "-m", "EUR"},
		},
		{
			name:  "empty",
			args:  []string{},
			owned: []string{"-c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.owned)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigPath(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short", func(t *testing.T) {
		os.Args = []string{"tripbuddy", "-c", "/etc/tb.json"}
		assert.Equal(t, "/etc/tb.json", ConfigPath())
	})

	t.Run("long", func(t *testing.T) {
		os.Args = []string{"tripbuddy", "-config", "/etc/tb.json", "-d", "x.db"}
		assert.Equal(t, "/etc/tb.json", ConfigPath())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"tripbuddy", "-d", "x.db"}
		assert.Empty(t, ConfigPath())
	})
}
