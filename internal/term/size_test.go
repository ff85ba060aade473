package term

import (
	"math"
	"testing"
)

// badFD is never a terminal, so GetSize always fails and the environment
// fallback is exercised.
const badFD = uintptr(math.MaxInt32)

func TestSizeOfEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{
			name:  "both set",
			env:   map[string]string{"COLUMNS": "132", "LINES": "43"},
			wantW: 132,
			wantH: 43,
		},
		{
			name:    "missing lines",
			env:     map[string]string{"COLUMNS": "132"},
			wantErr: true,
		},
		{
			name:    "garbage",
			env:     map[string]string{"COLUMNS": "wide", "LINES": "tall"},
			wantErr: true,
		},
		{
			name:    "zero",
			env:     map[string]string{"COLUMNS": "0", "LINES": "24"},
			wantErr: true,
		},
		{
			name:    "nothing",
			env:     map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := sizeOf(badFD, func(k string) string { return tt.env[k] })
			if (err != nil) != tt.wantErr {
				t.Fatalf("sizeOf() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (w != tt.wantW || h != tt.wantH) {
				t.Errorf("sizeOf() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
