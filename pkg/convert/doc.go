// Package convert provides value-level helpers: checked casts, textual
// conversion between types, membership tests and conditional pipelines.
//
//	n, err := convert.To[int]("42")            // 42
//	id, err := convert.To[uuid.UUID](raw)      // via encoding.TextUnmarshaler
//	s, ok := convert.As[fmt.Stringer](v)
//
//	total := convert.DoIf(price, member, applyDiscount)
//	convert.In(status, "active", "trial")
//
// To first tries a direct type assertion. Otherwise it renders the value as
// text and parses that text as the target type, so it only converts values
// whose textual forms agree (e.g. "3.14" to float64, 3.14 to string).
package convert
