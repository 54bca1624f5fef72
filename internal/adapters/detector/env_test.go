package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zoomgrab/zoomgrab/internal/adapters/detector"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		want     detector.OutputMode
	}{
		{"explicit bar wins", detector.ModePlain, "bar", detector.ModeBar},
		{"explicit plain wins", detector.ModeBar, "plain", detector.ModePlain},
		{"ci alias maps to plain", detector.ModeBar, "ci", detector.ModePlain},
		{"auto keeps detection", detector.ModeBar, "auto", detector.ModeBar},
		{"empty keeps detection", detector.ModePlain, "", detector.ModePlain},
		{"unknown keeps detection", detector.ModeBar, "nonsense", detector.ModeBar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}

func TestDetectEnvironment_CIForcesPlain(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("NO_COLOR", "")

	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment())
}

func TestDetectEnvironment_NoColorForcesPlain(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment())
}
