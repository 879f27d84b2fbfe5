package categorize

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sheet-ledger/cmd/root"
	"fjacquet/sheet-ledger/internal/config"
	"fjacquet/sheet-ledger/internal/container"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeCommand(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "budsjett.xlsx")
	require.NoError(t, os.WriteFile(workbook, nil, 0644))
	rules := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte(`
from_type:
  - category: Overføring
    class: Intern
from_text:
  - category: Groceries
    class: Expense
    keywords: [shop]
`), 0644))

	cfg := config.Default()
	cfg.Workbook = workbook
	cfg.Rules.File = rules
	c, err := container.NewContainer(cfg, container.WithOpener(store.NewMemory().Opener()), container.WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)
	root.SetContainer(c)
	t.Cleanup(func() {
		root.SetContainer(nil)
		txType, txText = "", ""
	})

	tests := []struct {
		name    string
		typ     string
		text    string
		want    []string
		wantErr bool
	}{
		{name: "no input", wantErr: true},
		{name: "text rule", text: "big shop today", want: []string{"Category: Groceries", "Class: Expense"}},
		{name: "type beats text", typ: "Overføring", text: "shop", want: []string{"Category: Overføring"}},
		{name: "no match", text: "nothing", want: []string{"No rule matches"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txType, txText = tt.typ, tt.text
			var out bytes.Buffer
			Cmd.SetOut(&out)
			Cmd.SetContext(context.Background())

			err := Cmd.RunE(Cmd, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}
