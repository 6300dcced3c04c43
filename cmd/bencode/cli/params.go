// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams returns a flag set named name whose flags write into the
// tagged fields of params, a pointer to a struct. A malformed params type
// is a programming error and panics.
//
// Commands declare their options once as a struct and build the flag set
// from it:
//
//	var params decodeCommandParams
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet {
//	        return cli.FlagsFromParams("decode", &params)
//	    },
//	    Run: func(args []string) error {
//	        return runDecode(args, params)
//	    },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags adds one flag to flagSet for every field of *params that
// carries a flag tag. Field tags:
//
//	flag:"max-depth"    long name
//	flag:"hex,x"        long name and one-letter shorthand
//	desc:"..."          usage text
//	default:"512"       default, parsed as the field's type
//
// Fields may be string, bool, int, int64, or []string (default given
// comma-separated). Embedded structs are walked, which is how commands
// share option groups such as the config and log-level flags.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	pointer := reflect.ValueOf(params)
	if pointer.Kind() != reflect.Pointer || pointer.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(pointer.Elem(), flagSet)
}

// flagTags is the parsed form of one field's tags.
type flagTags struct {
	name      string
	shorthand string
	usage     string
	def       string
}

// binder registers a flag writing into target, which is a pointer to a
// field of the binder's type.
type binder func(flagSet *pflag.FlagSet, target any, tags flagTags) error

var binders = map[reflect.Type]binder{
	reflect.TypeFor[string](): func(flagSet *pflag.FlagSet, target any, tags flagTags) error {
		flagSet.StringVarP(target.(*string), tags.name, tags.shorthand, tags.def, tags.usage)
		return nil
	},
	reflect.TypeFor[bool](): func(flagSet *pflag.FlagSet, target any, tags flagTags) error {
		value, err := parseDefault(tags, strconv.ParseBool)
		if err == nil {
			flagSet.BoolVarP(target.(*bool), tags.name, tags.shorthand, value, tags.usage)
		}
		return err
	},
	reflect.TypeFor[int](): func(flagSet *pflag.FlagSet, target any, tags flagTags) error {
		value, err := parseDefault(tags, strconv.Atoi)
		if err == nil {
			flagSet.IntVarP(target.(*int), tags.name, tags.shorthand, value, tags.usage)
		}
		return err
	},
	reflect.TypeFor[int64](): func(flagSet *pflag.FlagSet, target any, tags flagTags) error {
		value, err := parseDefault(tags, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
		if err == nil {
			flagSet.Int64VarP(target.(*int64), tags.name, tags.shorthand, value, tags.usage)
		}
		return err
	},
	reflect.TypeFor[[]string](): func(flagSet *pflag.FlagSet, target any, tags flagTags) error {
		var value []string
		if tags.def != "" {
			value = strings.Split(tags.def, ",")
		}
		flagSet.StringSliceVarP(target.(*[]string), tags.name, tags.shorthand, value, tags.usage)
		return nil
	},
}

// parseDefault parses the default tag, treating an absent tag as the zero
// value.
func parseDefault[T any](tags flagTags, parse func(string) (T, error)) (T, error) {
	var zero T
	if tags.def == "" {
		return zero, nil
	}
	value, err := parse(tags.def)
	if err != nil {
		return zero, fmt.Errorf("default for --%s: %w", tags.name, err)
	}
	return value, nil
}

func bindStruct(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	for _, field := range reflect.VisibleFields(structValue.Type()) {
		if len(field.Index) != 1 {
			// Promoted fields are reached through their embedding struct.
			continue
		}
		fieldValue := structValue.Field(field.Index[0])

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStruct(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		tag, tagged := field.Tag.Lookup("flag")
		if !tagged || tag == "" {
			continue
		}
		tags := flagTags{
			usage: field.Tag.Get("desc"),
			def:   field.Tag.Get("default"),
		}
		tags.name, tags.shorthand, _ = strings.Cut(tag, ",")

		bind, supported := binders[field.Type]
		if !supported {
			return fmt.Errorf("field %s: unsupported type %s for flag --%s", field.Name, field.Type, tags.name)
		}
		if err := bind(flagSet, fieldValue.Addr().Interface(), tags); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}
