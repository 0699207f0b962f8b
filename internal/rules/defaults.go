package rules

import "schemagen/internal/types"

var luxon = []ImportSpec{{Name: "DateTime", From: "luxon"}}

// defaults holds the built-in emission per internal type. Bigints and
// decimals are emitted as strings: drivers return them as strings to avoid
// precision loss, and the generated types mirror the runtime values.
var defaults = map[types.InternalType]Resolved{
	types.Number:   {Type: "number", Decorator: "column"},
	types.Bigint:   {Type: "string", Decorator: "column"},
	types.Decimal:  {Type: "string", Decorator: "column"},
	types.Boolean:  {Type: "boolean", Decorator: "column"},
	types.String:   {Type: "string", Decorator: "column"},
	types.Date:     {Type: "DateTime", Decorator: "column.date", Imports: luxon},
	types.Time:     {Type: "string", Decorator: "column"},
	types.DateTime: {Type: "DateTime", Decorator: "column.dateTime", Imports: luxon},
	types.Binary:   {Type: "Buffer", Decorator: "column"},
	types.JSON:     {Type: "Record<string, unknown>", Decorator: "column"},
	types.JSONB:    {Type: "Record<string, unknown>", Decorator: "column"},
	types.UUID:     {Type: "string", Decorator: "column"},
	types.Enum:     {Type: "string", Decorator: "column"},
	types.Set:      {Type: "string", Decorator: "column"},
	types.Unknown:  {Type: "unknown", Decorator: "column"},
}

func builtinDefault(it types.InternalType) Resolved {
	if r, ok := defaults[it]; ok {
		return r
	}
	return defaults[types.Unknown]
}
