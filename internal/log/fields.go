package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldExpenseID = "expense_id"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldCurrency  = "currency"
	FieldDate      = "date"
	FieldCount     = "count"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldError     = "error"
	FieldSuccess   = "success"
)
