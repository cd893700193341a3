package main

import (
	"testing"

	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/hy4ri/datepick/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickerRequest(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Picker.MinDate = "1/1/2020"

	req, err := pickerRequest(cfg, "3/15/2024", "", "12/31/2024", "When?")
	require.NoError(t, err)
	assert.Equal(t, "When?", req.Title)
	require.NotNil(t, req.Value)
	assert.Equal(t, "3/15/2024", req.Value.String())

	// The config's min survives when only --max is given.
	require.NotNil(t, req.Bounds)
	lo, ok := req.Bounds.Min()
	require.True(t, ok)
	assert.Equal(t, "1/1/2020", lo.String())
	hi, ok := req.Bounds.Max()
	require.True(t, ok)
	assert.Equal(t, "12/31/2024", hi.String())
}

func TestPickerRequest_NoFlags(t *testing.T) {
	req, err := pickerRequest(config.DefaultConfig(), "", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, req.Value)
	assert.Nil(t, req.Bounds, "the config's bounds apply")
}

func TestPickerRequest_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		date, min, max string
		want           string
	}{
		{"date", "2/30/2024", "", "", "--date"},
		{"min", "", "13/1/2024", "", "--min"},
		{"max", "", "", "soon", "--max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pickerRequest(config.DefaultConfig(), tt.date, tt.min, tt.max, "")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestPickerRequest_ISODate(t *testing.T) {
	req, err := pickerRequest(config.DefaultConfig(), "2024-02-29", "", "", "")
	require.NoError(t, err)
	d, ok := calendar.Parse(req.Value)
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", d.ISO())
}
