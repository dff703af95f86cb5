package types

import "encoding/json"

// Optional distinguishes "field omitted" from "field present as null" in
// patch-style messages. The zero value is omitted. Messages holding Optional
// fields build their JSON object by hand via AppendTo so that omitted fields
// never appear as keys.
type Optional[T any] struct {
	present bool
	null    bool
	value   T
}

func Some[T any](v T) Optional[T] { return Optional[T]{present: true, value: v} }

func Null[T any]() Optional[T] { return Optional[T]{present: true, null: true} }

func (o Optional[T]) IsSet() bool  { return o.present }
func (o Optional[T]) IsNull() bool { return o.present && o.null }

func (o Optional[T]) Value() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// AppendTo writes the field into a JSON object under construction. Omitted
// fields are skipped entirely; explicit nulls become JSON null.
func (o Optional[T]) AppendTo(obj map[string]json.RawMessage, key string) error {
	if !o.present {
		return nil
	}
	if o.null {
		obj[key] = json.RawMessage("null")
		return nil
	}
	raw, err := json.Marshal(o.value)
	if err != nil {
		return err
	}
	obj[key] = raw
	return nil
}
