package config

const (
	// MaxAccountLength is the maximum length for account names. Accounts
	// come from the JWT subject claim; anything longer is malformed input.
	MaxAccountLength = 64

	// MaxTitleLength is the maximum length for document titles.
	MaxTitleLength = 255

	// MaxContentLength is the maximum length for document content. These
	// are short tooltip-sized texts, not articles.
	MaxContentLength = 16384

	// MaxCategoryNameLength is the maximum length for category names.
	MaxCategoryNameLength = 128

	// MaxCategoryDescriptionLength is the maximum length for category
	// descriptions.
	MaxCategoryDescriptionLength = 1024

	// MaxRequestBody caps decoded request bodies.
	MaxRequestBody = 1 << 20

	// MaxLogFiles is the number of timestamped log files kept per directory.
	MaxLogFiles = 10
)
