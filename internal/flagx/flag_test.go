package flagx

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-a", "localhost"},
			names: []string{"-c", "--config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "long flag with equals",
			args:  []string{"--config=alt.json", "-a", "localhost"},
			names: []string{"-c", "--config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"-c", "--config"},
			want:  []string{},
		},
		{
			name:  "flag without value at end is kept as-is",
			args:  []string{"-c"},
			names: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "flag followed by another flag has no value",
			args:  []string{"-c", "-d", "dsn"},
			names: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "multiple owned flags preserve order",
			args:  []string{"-a", ":8080", "-d", "dsn", "-s", "key"},
			names: []string{"-a", "-d", "-s"},
			want:  []string{"-a", ":8080", "-d", "dsn", "-s", "key"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(tc.args, tc.names...)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Filter(%v, %v) = %v, want %v", tc.args, tc.names, got, tc.want)
			}
		})
	}
}
