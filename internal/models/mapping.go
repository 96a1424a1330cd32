package models

// DateFormat identifies the day/month ordering of a source file.
type DateFormat string

const (
	DateFormatAuto   DateFormat = "auto"
	DateFormatMMDDYY DateFormat = "MM/DD/YY"
	DateFormatDDMMYY DateFormat = "DD/MM/YYYY"
)

// ColumnMapping assigns source-file column names to canonical transaction
// fields. Empty string means unassigned. Amount is mutually exclusive
// with the Cargo/Abono pair; use the setter methods to keep that
// invariant when editing a mapping.
type ColumnMapping struct {
	Date        string
	Description string
	Amount      string
	Cargo       string
	Abono       string
	DateFormat  DateFormat
}

// SetAmount assigns the single-amount column, clearing the separate
// cargo/abono columns.
func (m *ColumnMapping) SetAmount(column string) {
	m.Amount = column
	if column != "" {
		m.Cargo = ""
		m.Abono = ""
	}
}

// SetCargo assigns the debit column, clearing the single-amount column.
func (m *ColumnMapping) SetCargo(column string) {
	m.Cargo = column
	if column != "" {
		m.Amount = ""
	}
}

// SetAbono assigns the credit column, clearing the single-amount column.
func (m *ColumnMapping) SetAbono(column string) {
	m.Abono = column
	if column != "" {
		m.Amount = ""
	}
}

// IsValid reports whether the mapping can materialize transactions:
// date and description assigned, plus either a single amount column or
// at least one of cargo/abono.
func (m *ColumnMapping) IsValid() bool {
	if m.Date == "" || m.Description == "" {
		return false
	}
	return m.Amount != "" || m.Cargo != "" || m.Abono != ""
}

// MappingResult is the outcome of column inference. IsAutoDetected is
// true only when the mapping is confident enough to skip human
// confirmation.
type MappingResult struct {
	Mapping        ColumnMapping
	IsAutoDetected bool
	Confidence     float64 // mean score across matched fields, 0..1
}
