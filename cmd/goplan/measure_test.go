package main

import (
	"testing"

	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1.5, -2,0.25")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(1.5, -2, 0.25), p)

	for _, bad := range []string{"", "1,2", "1,2,3,4", "1,x,3"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatPoint(t *testing.T) {
	assert.Equal(t, "(1.000, -2.500, 0.125)", formatPoint(geometry.NewVector3(1, -2.5, 0.125)))
}
