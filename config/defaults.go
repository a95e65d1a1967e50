// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"reflect"
	"strconv"

	"cogentcore.org/spectral/base/grr"
)

// SetFromDefaults sets the values of the given config object
// from `def:` struct field tag values, recursing into struct fields.
// Only numeric, bool and string fields are supported.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return grr.Errorf("config: SetFromDefaults needs a pointer to a struct, not %T", cfg)
	}
	return setFromDefaults(v.Elem())
}

func setFromDefaults(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		f := v.Field(i)
		if f.Kind() == reflect.Struct {
			if err := setFromDefaults(f); err != nil {
				return err
			}
			continue
		}
		def, ok := sf.Tag.Lookup("def")
		if !ok {
			continue
		}
		if err := setString(f, def); err != nil {
			return grr.Errorf("config: field %s: default %q: %w", sf.Name, def, err)
		}
	}
	return nil
}

func setString(f reflect.Value, s string) error {
	switch f.Kind() {
	case reflect.String:
		f.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, f.Type().Bits())
		if err != nil {
			return err
		}
		f.SetInt(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, f.Type().Bits())
		if err != nil {
			return err
		}
		f.SetFloat(x)
	default:
		return grr.Errorf("unsupported kind %s", f.Kind())
	}
	return nil
}
