package types

// InternalType is the dialect-independent classification of a column's data.
// Every native database type resolves to exactly one InternalType; anything
// the normalization tables do not recognize resolves to Unknown.
type InternalType string

const (
	Number   InternalType = "number"
	Bigint   InternalType = "bigint"
	Decimal  InternalType = "decimal"
	Boolean  InternalType = "boolean"
	String   InternalType = "string"
	Date     InternalType = "date"
	Time     InternalType = "time"
	DateTime InternalType = "datetime"
	Binary   InternalType = "binary"
	JSON     InternalType = "json"
	JSONB    InternalType = "jsonb"
	UUID     InternalType = "uuid"
	Enum     InternalType = "enum"
	Set      InternalType = "set"
	Unknown  InternalType = "unknown"
)

// All returns every internal type in declaration order.
func All() []InternalType {
	return []InternalType{
		Number, Bigint, Decimal, Boolean, String,
		Date, Time, DateTime, Binary,
		JSON, JSONB, UUID, Enum, Set, Unknown,
	}
}

var valid = func() map[InternalType]bool {
	m := make(map[InternalType]bool)
	for _, t := range All() {
		m[t] = true
	}
	return m
}()

// Parse returns the InternalType named by s, reporting whether s is a
// recognized internal type name.
func Parse(s string) (InternalType, bool) {
	t := InternalType(s)
	if valid[t] {
		return t, true
	}
	return Unknown, false
}

func (t InternalType) String() string { return string(t) }
