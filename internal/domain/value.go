package domain

import "encoding/json"

// AssetValueKind tags the shape of a bundled enumeration value.
type AssetValueKind int

const (
	ValueMissing AssetValueKind = iota // neither known shape; unwraps to ""
	ValueString                        // bare URL string
	ValueWrapped                       // object exposing the URL under "default"
)

// AssetValue is the opaque value side of a bundled enumeration pair. Build
// tooling emits either a bare URL string or a wrapper object with a
// "default" field; anything else is kept as ValueMissing so indexing never
// aborts on a malformed entry.
type AssetValue struct {
	Kind AssetValueKind
	raw  string
}

// StringValue wraps a bare URL string.
func StringValue(url string) AssetValue {
	return AssetValue{Kind: ValueString, raw: url}
}

// WrappedValue wraps a URL carried under a "default" field.
func WrappedValue(url string) AssetValue {
	return AssetValue{Kind: ValueWrapped, raw: url}
}

// URL unwraps the value to a plain URL. A ValueMissing value unwraps to the
// empty string.
func (v AssetValue) URL() string {
	switch v.Kind {
	case ValueString, ValueWrapped:
		return v.raw
	default:
		return ""
	}
}

// UnmarshalJSON decodes a manifest value. Unknown shapes decode to
// ValueMissing rather than failing, so one malformed entry cannot abort
// manifest enumeration.
func (v *AssetValue) UnmarshalJSON(data []byte) error {
	// Unmarshaling null into a *string leaves it nil; into a plain string
	// it is a silent no-op, which would mistag null as a bare URL.
	var s *string
	if err := json.Unmarshal(data, &s); err == nil && s != nil {
		*v = StringValue(*s)
		return nil
	}
	var wrapped struct {
		Default *string `json:"default"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Default != nil {
		*v = WrappedValue(*wrapped.Default)
		return nil
	}
	*v = AssetValue{}
	return nil
}
