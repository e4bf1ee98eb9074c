package constants

const (
	MsgUnsupportedFileType = "Unsupported file type. Upload .xlsx, .csv or .pdf"
	MsgMissingFile         = "No file found in upload"
	MsgProductLineRequired = "product_line_id is required"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgUnauthorized        = "Unauthorized"
)
