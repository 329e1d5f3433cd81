package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

func TestExtractTrialID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid trial URI", uri: "clinical-trials://trials/NCT01234567", expected: "NCT01234567"},
		{name: "escaped ID", uri: "clinical-trials://trials/ACTRN%2012", expected: "ACTRN 12"},
		{name: "invalid prefix", uri: "file://trials/NCT01234567", expected: ""},
		{name: "nested path", uri: "clinical-trials://trials/NCT1/extra", expected: ""},
		{name: "missing ID", uri: "clinical-trials://trials/", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractTrialID(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleTrialResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rendered trial", func(t *testing.T) {
		trial := sampleTrial("NCT01234567")
		mock := &mockTrialService{trial: &trial}
		server, err := NewServer(&Ports{Trials: mock})
		require.NoError(t, err)

		uri := "clinical-trials://trials/NCT01234567"
		result, err := server.handleTrialResource(ctx, readRequest(uri))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		assert.Equal(t, uri, result.Contents[0].URI)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "Trial ID: NCT01234567")
		assert.Equal(t, "NCT01234567", mock.gotID)
	})

	t.Run("invalid URI is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Trials: &mockTrialService{}})
		require.NoError(t, err)

		_, err = server.handleTrialResource(ctx, readRequest("clinical-trials://other"))
		assert.Error(t, err)
	})

	t.Run("missing trial is not found", func(t *testing.T) {
		mock := &mockTrialService{err: fmt.Errorf("trial X: %w", domain.ErrNotFound)}
		server, err := NewServer(&Ports{Trials: mock})
		require.NoError(t, err)

		_, err = server.handleTrialResource(ctx, readRequest("clinical-trials://trials/X"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("service error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		server, err := NewServer(&Ports{Trials: &mockTrialService{err: boom}})
		require.NoError(t, err)

		_, err = server.handleTrialResource(ctx, readRequest("clinical-trials://trials/X"))
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}
