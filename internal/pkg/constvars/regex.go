package constvars

const (
	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexNumeric      = `^\d+$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexUUID         = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`
	// RegexBrazilPhoneNumber matches Brazilian numbers with optional +55/55/0
	// prefix, two-digit area code and an 8 or 9 digit subscriber number.
	RegexBrazilPhoneNumber = `^(?:\+55|55|0)?[\s-]?(?:\(?[1-9][0-9]\)?)[\s-]?(?:9[0-9]{4}|[2-9][0-9]{3})[\s-]?[0-9]{4}$`
)
