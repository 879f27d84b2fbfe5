package update

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
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCommand(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "budsjett.xlsx")
	require.NoError(t, os.WriteFile(workbook, nil, 0644))

	m := store.NewMemory()
	l := m.AddSheet(models.DefaultLedgerSheet)
	l.SetRow(2, "01.02.2022", "01.02.2022", "R1", "", "Varekjøp", "REMA", 10.0, 0.0, -10.0, "A", "Mat", "Dagligvare")
	l.SetRow(3, "02.02.2022", "02.02.2022", "R2", "", "Overføring", "Retur", 0.0, 10.0, 10.0, "A")

	cfg := config.Default()
	cfg.Workbook = workbook
	c, err := container.NewContainer(cfg, container.WithOpener(m.Opener()), container.WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)
	root.SetContainer(c)
	t.Cleanup(func() {
		root.SetContainer(nil)
		doFill, doRegroup, doRedate = true, false, false
	})

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetContext(context.Background())

	doFill, doRegroup, doRedate = true, false, true
	require.NoError(t, Cmd.RunE(Cmd, nil))

	assert.Equal(t, "Mat", l.Value(models.ColCategory, 3))
	assert.Equal(t, "02/02/2022", l.Value(models.ColAccountingDate, 3))
	assert.Contains(t, out.String(), "fill: 1 of 2 rows changed")
	assert.Contains(t, out.String(), "redate: 2 of 2 rows changed")
	assert.Len(t, m.SavedTo, 2)

	out.Reset()
	doFill, doRedate = false, false
	require.NoError(t, Cmd.RunE(Cmd, nil))
	assert.Contains(t, out.String(), "Nothing to do")
}
