package ctgov

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

func TestBuildExpr(t *testing.T) {
	tests := []struct {
		name     string
		params   domain.RegistryParams
		expected string
	}{
		{
			name:     "condition only",
			params:   domain.RegistryParams{Condition: "Leukemia"},
			expected: "Leukemia",
		},
		{
			name:     "condition and country",
			params:   domain.RegistryParams{Condition: "Leukemia", Country: "United Kingdom"},
			expected: "Leukemia AND COUNTRY:United Kingdom",
		},
		{
			name:     "city search",
			params:   domain.RegistryParams{Condition: "Leukemia", Country: "United Kingdom", Query: "London"},
			expected: "Leukemia AND COUNTRY:United Kingdom AND AREA[City]:London",
		},
		{
			name: "city search with status",
			params: domain.RegistryParams{
				Condition:         "Leukemia",
				Country:           "United Kingdom",
				Query:             "London",
				RecruitmentStatus: "Recruiting",
			},
			expected: "Leukemia AND COUNTRY:United Kingdom AND AREA[City]:London AND AREA[RecruitmentsStatus]:Recruiting",
		},
		{
			name:     "query without country is ignored",
			params:   domain.RegistryParams{Condition: "Asthma", Query: "Paris"},
			expected: "Asthma",
		},
		{
			name:     "unsafe city falls back to plain conjunction",
			params:   domain.RegistryParams{Condition: "Asthma", Country: "France", Query: "Paris:Nord"},
			expected: "Asthma AND COUNTRY:France AND Paris:Nord",
		},
		{
			name:     "no condition has no leading operator",
			params:   domain.RegistryParams{Country: "Kenya"},
			expected: "COUNTRY:Kenya",
		},
		{
			name:     "trial id",
			params:   domain.IDParams("NCT01234567"),
			expected: "AREA[NCTId]:NCT01234567",
		},
		{
			name:     "empty",
			params:   domain.RegistryParams{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildExpr(tt.params))
		})
	}
}
