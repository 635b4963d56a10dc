/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"testing"

	"github.com/spf13/viper"
)

func TestResolveFPS(t *testing.T) {
	tests := []struct {
		name     string
		flagFPS  int
		config   int
		expected int
	}{
		{"flag wins", 25, 30, 25},
		{"falls back to config", 0, 20, 20},
		{"zero config never yields zero", 0, 0, 30},
		{"negative config never yields zero", 0, -5, 30},
		{"clamped to DMX refresh ceiling", 120, 30, 44},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			viper.Set("fps", test.config)
			defer viper.Set("fps", 30)

			if got := resolveFPS(test.flagFPS); got != test.expected {
				t.Errorf("resolveFPS(%d) with fps config %d = %d, expected %d",
					test.flagFPS, test.config, got, test.expected)
			}
		})
	}
}
