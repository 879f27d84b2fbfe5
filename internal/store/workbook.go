package store

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/parsererror"

	"github.com/xuri/excelize/v2"
)

// Workbook is an .xlsx file opened with excelize.
type Workbook struct {
	file   *excelize.File
	path   string
	logger logging.Logger
}

// Open reads the workbook at path. A missing file is a *parsererror.NotFoundError.
func Open(path string, logger logging.Logger) (*Workbook, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &parsererror.NotFoundError{Kind: "workbook", Name: path, Err: err}
		}
		return nil, fmt.Errorf("error checking workbook %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook %s: %w", path, err)
	}
	logger.Debug("Opened workbook",
		logging.Field{Key: logging.FieldWorkbook, Value: path},
		logging.Field{Key: logging.FieldCount, Value: f.SheetCount})
	return &Workbook{file: f, path: path, logger: logger}, nil
}

// OpenReader reads a workbook from r, e.g. a bank statement that is parsed and
// never saved back.
func OpenReader(r io.Reader, logger logging.Logger) (*Workbook, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error reading workbook: %w", err)
	}
	return &Workbook{file: f, logger: logger}, nil
}

// NewWorkbook creates an empty workbook holding the given sheets.
func NewWorkbook(sheets ...string) (*Workbook, error) {
	f := excelize.NewFile()
	const defaultSheet = "Sheet1"
	for _, name := range sheets {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("error creating sheet %s: %w", name, err)
		}
	}
	if len(sheets) > 0 && !contains(sheets, defaultSheet) {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("error removing default sheet: %w", err)
		}
	}
	return &Workbook{file: f, logger: logging.NewDiscardLogger()}, nil
}

// OpenWorkbook adapts Open to the Opener signature.
func OpenWorkbook(logger logging.Logger) Opener {
	return func(path string) (Table, error) {
		wb, err := Open(path, logger)
		if err != nil {
			return nil, err
		}
		return wb, nil
	}
}

func (w *Workbook) Sheet(name string) (Sheet, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("error looking up sheet %s: %w", name, err)
	}
	if idx == -1 {
		return nil, &parsererror.NotFoundError{Kind: "sheet", Name: name}
	}
	return &workbookSheet{file: w.file, name: name}, nil
}

func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *Workbook) Save(path string) error {
	if path == "" {
		path = w.path
	}
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook %s: %w", path, err)
	}
	w.logger.Debug("Saved workbook", logging.Field{Key: logging.FieldWorkbook, Value: path})
	return nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// SetBold applies a bold font to a cell. Manual overrides in the ledger are
// marked this way.
func (w *Workbook) SetBold(sheet, col string, row int) error {
	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("error creating bold style: %w", err)
	}
	cell := Cell(col, row)
	return w.file.SetCellStyle(sheet, cell, cell, style)
}

// workbookSheet reads through excelize. Cell references are built from fixed
// column letters and positive rows, so excelize's coordinate errors cannot occur
// and read errors are reported as empty cells.
type workbookSheet struct {
	file *excelize.File
	name string
}

func (s *workbookSheet) Name() string { return s.name }

func (s *workbookSheet) Value(col string, row int) string {
	v, err := s.file.GetCellValue(s.name, Cell(col, row), excelize.Options{RawCellValue: true})
	if err != nil {
		return ""
	}
	return v
}

func (s *workbookSheet) FormattedValue(col string, row int) string {
	v, err := s.file.GetCellValue(s.name, Cell(col, row))
	if err != nil {
		return ""
	}
	return v
}

func (s *workbookSheet) SetValue(col string, row int, value interface{}) error {
	if err := s.file.SetCellValue(s.name, Cell(col, row), value); err != nil {
		return fmt.Errorf("error writing %s!%s: %w", s.name, Cell(col, row), err)
	}
	return nil
}

func (s *workbookSheet) IsBold(col string, row int) bool {
	id, err := s.file.GetCellStyle(s.name, Cell(col, row))
	if err != nil || id == 0 {
		return false
	}
	style, err := s.file.GetStyle(id)
	if err != nil || style == nil || style.Font == nil {
		return false
	}
	return style.Font.Bold
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
