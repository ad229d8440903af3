package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationsCmd_Help(t *testing.T) {
	cmd := applicationsCmd()
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()

	// Check help content
	assert.Contains(t, output, "Page through the loan applications")
	assert.Contains(t, output, "Examples:")
	assert.Contains(t, output, "creditlens applications")
	assert.Contains(t, output, "--search")
	assert.Contains(t, output, "--decision")
	assert.Contains(t, output, "--page")
	assert.Contains(t, output, "--page-size")
	assert.Contains(t, output, "--format")
}

// Test flag parsing edge cases.
func TestApplicationsCmd_FlagParsing(t *testing.T) {
	tests := []struct {
		expected  any
		name      string
		checkFlag string
		flagType  string
		args      []string
	}{
		{
			name:      "page default",
			args:      []string{},
			checkFlag: "page",
			expected:  1,
			flagType:  "int",
		},
		{
			name:      "page custom",
			args:      []string{"--page", "3"},
			checkFlag: "page",
			expected:  3,
			flagType:  "int",
		},
		{
			name:      "page-size default",
			args:      []string{},
			checkFlag: "page-size",
			expected:  15,
			flagType:  "int",
		},
		{
			name:      "page-size custom",
			args:      []string{"--page-size", "50"},
			checkFlag: "page-size",
			expected:  50,
			flagType:  "int",
		},
		{
			name:      "search default",
			args:      []string{},
			checkFlag: "search",
			expected:  "",
			flagType:  "string",
		},
		{
			name:      "search custom",
			args:      []string{"--search", "amina"},
			checkFlag: "search",
			expected:  "amina",
			flagType:  "string",
		},
		{
			name:      "decision custom",
			args:      []string{"--decision", "Rejected"},
			checkFlag: "decision",
			expected:  "Rejected",
			flagType:  "string",
		},
		{
			name:      "format default",
			args:      []string{},
			checkFlag: "format",
			expected:  "table",
			flagType:  "string",
		},
		{
			name:      "format json",
			args:      []string{"--format", "json"},
			checkFlag: "format",
			expected:  "json",
			flagType:  "string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := applicationsCmd()
			cmd.SetArgs(tt.args)

			// Parse flags without executing
			err := cmd.ParseFlags(tt.args)
			require.NoError(t, err)

			// Check flag value
			switch tt.flagType {
			case "int":
				val, err := cmd.Flags().GetInt(tt.checkFlag)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, val)
			case "string":
				val, err := cmd.Flags().GetString(tt.checkFlag)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, val)
			}
		})
	}
}
