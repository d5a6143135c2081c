package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldErrorType = "error_type"
	FieldOperation = "operation"
	FieldPrompt    = "prompt"
	FieldReason    = "reason"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldIncome    = "income"
	FieldTotal     = "total"
	FieldSaving    = "saving"
	FieldOutcome   = "outcome"
	FieldEcho      = "echo_input"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentInput  = "input"
	ComponentBudget = "budget"
	ComponentReport = "report"
	ComponentConfig = "config"
)

// Operations defines standard operation names
const (
	OpCollect  = "collect"
	OpParse    = "parse"
	OpValidate = "validate"
	OpCompute  = "compute"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeInput         = "input_error"
	ErrorTypeCanceled      = "canceled"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds error type field
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithBudget adds the computed budget figures
func (f LogFields) WithBudget(income, total, saving int64, outcome string) LogFields {
	f[FieldIncome] = income
	f[FieldTotal] = total
	f[FieldSaving] = saving
	f[FieldOutcome] = outcome
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
