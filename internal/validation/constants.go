package validation

// Embedded schema names
const (
	SchemaPlan = "plan.schema.json"
)

const (
	schemasDir     = "schemas"
	rootLocation   = "(root)"
	maxFileSizeMiB = 1
)

// Error messages
const (
	ErrMsgReadDataFile      = "failed to read data file"
	ErrMsgDataFileTooLarge  = "data file too large"
	ErrMsgLoadSchema        = "failed to load schema"
	ErrMsgParseJSON         = "failed to parse JSON data"
	ErrMsgSchemaValidation  = "schema validation failed"
	ErrMsgCompileSchema     = "failed to compile schema"
	ErrMsgAddSchemaResource = "failed to add schema resource"
)
