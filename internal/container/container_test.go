package container

import (
	"context"
	"testing"

	"fjacquet/sheet-ledger/internal/categorizer"
	"fjacquet/sheet-ledger/internal/config"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	withAI := config.Default()
	withAI.AI.Enabled = true
	withAI.AI.APIKey = "test-key"

	badDate := config.Default()
	badDate.Date.Delimiter = ","

	tests := []struct {
		name        string
		config      *config.Config
		expectError string
		expectAI    bool
	}{
		{name: "nil config", config: nil, expectError: "configuration cannot be nil"},
		{name: "valid config without AI", config: config.Default()},
		{name: "valid config with AI enabled", config: withAI, expectAI: true},
		{name: "invalid date settings", config: badDate, expectError: "invalid date settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config, WithLogger(logging.NewMockLogger()))
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetService())
			if tt.expectAI {
				_, ok := c.GetAIClient().(*categorizer.GeminiClient)
				assert.True(t, ok)
			} else {
				assert.Nil(t, c.GetAIClient())
			}
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainer_ServiceUsesConfiguredSheets(t *testing.T) {
	m := store.NewMemory()
	accounts := m.AddSheet("Kontoer")
	accounts.SetRow(2, "", "Brukskonto", "12345678901")

	cfg := config.Default()
	cfg.Workbook = "budsjett.xlsx"
	cfg.Sheets.Accounts = "Kontoer"

	c, err := NewContainer(cfg, WithOpener(m.Opener()), WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	got, err := c.GetService().Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Account{{Name: "Brukskonto", Number: 12345678901}}, got)
}
