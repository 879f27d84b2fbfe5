package store

import (
	"fmt"
	"sort"
	"strconv"

	"fjacquet/sheet-ledger/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Memory is an in-memory Table for tests and dry runs. Save records the path
// instead of writing a file.
type Memory struct {
	sheets  map[string]*MemorySheet
	order   []string
	SavedTo []string
	Closed  bool
}

// NewMemory returns an empty Memory table.
func NewMemory() *Memory {
	return &Memory{sheets: make(map[string]*MemorySheet)}
}

// AddSheet creates the sheet if needed and returns it.
func (m *Memory) AddSheet(name string) *MemorySheet {
	if s, ok := m.sheets[name]; ok {
		return s
	}
	s := &MemorySheet{name: name, cells: make(map[string]memoryCell)}
	m.sheets[name] = s
	m.order = append(m.order, name)
	return s
}

func (m *Memory) Sheet(name string) (Sheet, error) {
	s, ok := m.sheets[name]
	if !ok {
		return nil, &parsererror.NotFoundError{Kind: "sheet", Name: name}
	}
	return s, nil
}

func (m *Memory) SheetNames() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Memory) Save(path string) error {
	m.SavedTo = append(m.SavedTo, path)
	return nil
}

func (m *Memory) Close() error {
	m.Closed = true
	return nil
}

// Opener returns an Opener that always hands out m, whatever the path.
func (m *Memory) Opener() Opener {
	return func(string) (Table, error) { return m, nil }
}

type memoryCell struct {
	raw       string
	formatted string
	bold      bool
}

// MemorySheet stores cells in a map keyed by A1 reference.
type MemorySheet struct {
	name  string
	cells map[string]memoryCell
}

func (s *MemorySheet) Name() string { return s.name }

func (s *MemorySheet) Value(col string, row int) string {
	return s.cells[Cell(col, row)].raw
}

// FormattedValue falls back to the raw value when no display text was set.
func (s *MemorySheet) FormattedValue(col string, row int) string {
	c := s.cells[Cell(col, row)]
	if c.formatted != "" {
		return c.formatted
	}
	return c.raw
}

func (s *MemorySheet) SetValue(col string, row int, value interface{}) error {
	key := Cell(col, row)
	c := s.cells[key]
	c.raw = render(value)
	c.formatted = ""
	s.cells[key] = c
	return nil
}

func (s *MemorySheet) IsBold(col string, row int) bool {
	return s.cells[Cell(col, row)].bold
}

// SetFormatted stores a raw value together with its display text, the way a
// date cell holds a serial number but shows a date.
func (s *MemorySheet) SetFormatted(col string, row int, raw, formatted string) {
	key := Cell(col, row)
	c := s.cells[key]
	c.raw = raw
	c.formatted = formatted
	s.cells[key] = c
}

// SetBold marks a cell bold.
func (s *MemorySheet) SetBold(col string, row int, bold bool) {
	key := Cell(col, row)
	c := s.cells[key]
	c.bold = bold
	s.cells[key] = c
}

// SetRow writes values into consecutive columns starting at A.
func (s *MemorySheet) SetRow(row int, values ...interface{}) {
	for i, v := range values {
		_ = s.SetValue(string(rune('A'+i)), row, v)
	}
}

// Cells returns the non-empty cell references, sorted.
func (s *MemorySheet) Cells() []string {
	var out []string
	for k, c := range s.cells {
		if c.raw != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func render(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case decimal.Decimal:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
