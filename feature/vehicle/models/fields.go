package models

import (
	"fmt"
	"reflect"

	"vehicle-reconciler/core/coerce"

	"github.com/go-viper/mapstructure/v2"
)

// fieldInfo describes one canonical field discovered from struct tags.
type fieldInfo struct {
	name   string
	column string
	kind   coerce.Kind
	index  int
}

var (
	identityFields      = describe(reflect.TypeOf(Identity{}))
	configurationFields = describe(reflect.TypeOf(Configuration{}))
)

// describe reads the canonical name, column and kind of every pointer field of t.
func describe(t reflect.Type) []fieldInfo {
	out := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("mapstructure")
		if name == "" || f.Type.Kind() != reflect.Ptr {
			continue
		}
		var kind coerce.Kind
		switch f.Type.Elem().Kind() {
		case reflect.String:
			kind = coerce.KindString
		case reflect.Int:
			kind = coerce.KindInt
		case reflect.Float64:
			kind = coerce.KindFloat
		case reflect.Bool:
			kind = coerce.KindBool
		default:
			continue
		}
		column := ""
		if tag := f.Tag.Get("gorm"); len(tag) > len("column:") {
			column = tag[len("column:"):]
		}
		out = append(out, fieldInfo{name: name, column: column, kind: kind, index: i})
	}
	return out
}

func names(fields []fieldInfo) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.name
	}
	return out
}

// IdentityFields returns the canonical identity field names in declared order.
func IdentityFields() []string {
	return names(identityFields)
}

// ConfigurationFields returns the canonical configuration field names in declared order.
func ConfigurationFields() []string {
	return names(configurationFields)
}

// ConfigurationColumns maps each configuration field to its storage column.
func ConfigurationColumns() map[string]string {
	out := make(map[string]string, len(configurationFields))
	for _, f := range configurationFields {
		out[f.name] = f.column
	}
	return out
}

// IsIdentityField reports whether name is an identity field.
func IsIdentityField(name string) bool {
	for _, f := range identityFields {
		if f.name == name {
			return true
		}
	}
	return false
}

// KindOf returns the declared kind of a canonical identity or configuration field.
func KindOf(name string) (coerce.Kind, bool) {
	for _, f := range identityFields {
		if f.name == name {
			return f.kind, true
		}
	}
	for _, f := range configurationFields {
		if f.name == name {
			return f.kind, true
		}
	}
	return "", false
}

// IdentityValues returns the non-nil identity values keyed by canonical name.
func IdentityValues(id Identity) map[string]any {
	return values(reflect.ValueOf(id), identityFields)
}

// ConfigurationValues returns the non-nil configuration values keyed by canonical name.
func ConfigurationValues(cfg Configuration) map[string]any {
	return values(reflect.ValueOf(cfg), configurationFields)
}

func values(v reflect.Value, fields []fieldInfo) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		fv := v.Field(f.index)
		if fv.IsNil() {
			continue
		}
		out[f.name] = fv.Elem().Interface()
	}
	return out
}

// DecodeIdentity builds an Identity from canonical values.
func DecodeIdentity(values map[string]any) (Identity, error) {
	var id Identity
	if err := decode(values, &id); err != nil {
		return Identity{}, fmt.Errorf("failed to decode identity: %w", err)
	}
	return id, nil
}

// DecodeConfiguration builds a Configuration from canonical values.
func DecodeConfiguration(values map[string]any) (Configuration, error) {
	var cfg Configuration
	if err := decode(values, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

func decode(values map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "mapstructure",
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(values)
}
