package logging

// Field names used in structured log output across passes.
const (
	FieldRunID     = "run_id"
	FieldPass      = "pass"
	FieldWorkbook  = "workbook"
	FieldSheet     = "sheet"
	FieldRow       = "row"
	FieldAccount   = "account"
	FieldBank      = "bank"
	FieldCategory  = "category"
	FieldClass     = "class"
	FieldStrategy  = "strategy"
	FieldReason    = "reason"
	FieldCount     = "count"
	FieldError     = "error"
	FieldInputFile = "input_file"
	FieldDuration  = "duration_ms"
)
