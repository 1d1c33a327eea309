package person

// ===============================
// Dynamic Field Types
// ===============================

type FieldType string

const (
	FieldString  FieldType = "STRING"
	FieldNumber  FieldType = "NUMBER"
	FieldBoolean FieldType = "BOOLEAN"
	FieldDate    FieldType = "DATE"
	FieldURL     FieldType = "URL"
	FieldEmail   FieldType = "EMAIL"
	FieldPhone   FieldType = "PHONE"
)

func IsValidFieldType(t string) bool {
	switch FieldType(t) {
	case FieldString, FieldNumber, FieldBoolean, FieldDate,
		FieldURL, FieldEmail, FieldPhone:
		return true
	}
	return false
}
