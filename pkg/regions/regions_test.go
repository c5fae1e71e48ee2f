package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutingForPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		expected Routing
	}{
		{name: "americasPlatform", platform: "na1", expected: Americas},
		{name: "europePlatform", platform: "euw1", expected: Europe},
		{name: "asiaPlatform", platform: "kr", expected: Asia},
		{name: "russiaRoutesToEurope", platform: "ru", expected: Europe},
		{name: "unknownFallsBackToAmericas", platform: "xx9", expected: Americas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoutingForPlatform(tt.platform))
		})
	}
}

func TestScanOrderOnlyContainsValidPlatforms(t *testing.T) {
	for _, platform := range ScanOrder {
		assert.True(t, IsValidPlatform(string(platform)), "platform %s should be valid", platform)
	}
}
