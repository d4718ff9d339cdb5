// Package compose implements the prototype composition used by the
// cart object factories: recursive structural copying and merging of
// typed values. Composed results share no nested mutable state with
// their sources, so process-wide prototype values stay pristine no
// matter how many instances are stamped from them.
package compose

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilValue is returned when a source or destination is nil.
	ErrNilValue = errors.New("compose: nil value")
	// ErrNotPointer is returned when the merge destination is not a pointer.
	ErrNotPointer = errors.New("compose: destination must be a non-nil pointer")
	// ErrTypeMismatch is returned when source and destination types differ.
	ErrTypeMismatch = errors.New("compose: source and destination types differ")
)

// Option configures a merge.
type Option func(*options)

type options struct {
	exclude map[string]bool
}

// Exclude skips the named top-level struct fields (or string map keys)
// of every source. Used by factories so that composed defaults never
// clobber caller-supplied identity fields.
func Exclude(names ...string) Option {
	return func(o *options) {
		if o.exclude == nil {
			o.exclude = make(map[string]bool, len(names))
		}
		for _, n := range names {
			o.exclude[n] = true
		}
	}
}

// Clone returns a recursive structural copy of src. Nested structs,
// pointers, slices, maps, and interface values are copied into fresh
// storage; mutating the clone never mutates src. Unexported fields are
// left at their zero value: identity and lifecycle state is stamped by
// factories, never inherited from a prototype.
func Clone[T any](src T) (T, error) {
	var zero T
	v := reflect.ValueOf(src)
	if !v.IsValid() {
		return zero, fmt.Errorf("%w: clone source", ErrNilValue)
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return zero, fmt.Errorf("%w: clone source", ErrNilValue)
	}
	return deepCopy(v).Interface().(T), nil
}

// Merge composes src into dst, which must be a non-nil pointer to a
// value of the same type as src (src may be that type or a pointer to
// it). Calling Merge repeatedly applies sources last-write-wins.
//
// Semantics: non-zero scalar source fields overwrite the destination;
// zero-valued source fields are treated as absent and leave the
// destination untouched. Nested structs are merged recursively, never
// aliased. Maps merge per key with deep-copied values; slices are
// replaced wholesale by a deep copy.
func Merge(dst, src any, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dv := reflect.ValueOf(dst)
	if !dv.IsValid() || dv.Kind() != reflect.Ptr || dv.IsNil() {
		return ErrNotPointer
	}
	dv = dv.Elem()

	sv := reflect.ValueOf(src)
	if !sv.IsValid() {
		return fmt.Errorf("%w: merge source", ErrNilValue)
	}
	if sv.Kind() == reflect.Ptr {
		if sv.IsNil() {
			return fmt.Errorf("%w: merge source", ErrNilValue)
		}
		sv = sv.Elem()
	}
	if sv.Type() != dv.Type() {
		return fmt.Errorf("%w: %s into %s", ErrTypeMismatch, sv.Type(), dv.Type())
	}

	mergeValue(dv, sv, o.exclude)
	return nil
}

// MergeAll composes the sources into dst in order, each later source
// overwriting overlapping fields of earlier ones.
func MergeAll(dst any, sources []any, opts ...Option) error {
	for _, src := range sources {
		if err := Merge(dst, src, opts...); err != nil {
			return err
		}
	}
	return nil
}

// mergeValue merges src into the addressable dst of identical type.
// The exclude set applies only at this level; recursion drops it.
func mergeValue(dst, src reflect.Value, exclude map[string]bool) {
	switch src.Kind() {
	case reflect.Struct:
		mergeStruct(dst, src, exclude)
	case reflect.Map:
		mergeMap(dst, src, exclude)
	default:
		if !src.IsZero() {
			dst.Set(deepCopy(src))
		}
	}
}

func mergeStruct(dst, src reflect.Value, exclude map[string]bool) {
	t := src.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		if exclude[field.Name] {
			continue
		}
		sf := src.Field(i)
		if sf.IsZero() {
			continue
		}
		df := dst.Field(i)

		switch sf.Kind() {
		case reflect.Struct:
			mergeStruct(df, sf, nil)
		case reflect.Ptr:
			if sf.Elem().Kind() == reflect.Struct && !df.IsNil() {
				mergeStruct(df.Elem(), sf.Elem(), nil)
			} else {
				df.Set(deepCopy(sf))
			}
		case reflect.Map:
			if df.IsNil() {
				df.Set(deepCopy(sf))
			} else {
				mergeMap(df, sf, nil)
			}
		default:
			df.Set(deepCopy(sf))
		}
	}
}

func mergeMap(dst, src reflect.Value, exclude map[string]bool) {
	if dst.IsNil() {
		dst.Set(reflect.MakeMapWithSize(src.Type(), src.Len()))
	}
	iter := src.MapRange()
	for iter.Next() {
		key := iter.Key()
		if key.Kind() == reflect.String && exclude[key.String()] {
			continue
		}
		sv := unwrap(iter.Value())
		dv := unwrap(dst.MapIndex(key))

		// Nested maps and structs merge rather than replace.
		if dv.IsValid() && dv.Type() == sv.Type() {
			switch sv.Kind() {
			case reflect.Map:
				merged := deepCopy(dv)
				cp := reflect.New(merged.Type()).Elem()
				cp.Set(merged)
				mergeMap(cp, sv, nil)
				dst.SetMapIndex(key, rewrap(cp, dst.Type().Elem()))
				continue
			case reflect.Struct:
				cp := reflect.New(dv.Type()).Elem()
				cp.Set(deepCopy(dv))
				mergeStruct(cp, sv, nil)
				dst.SetMapIndex(key, rewrap(cp, dst.Type().Elem()))
				continue
			}
		}
		dst.SetMapIndex(deepCopy(key), rewrap(deepCopy(sv), dst.Type().Elem()))
	}
}

// unwrap peels an interface wrapper off a map value, if any.
func unwrap(v reflect.Value) reflect.Value {
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}
	return v
}

// rewrap converts a concrete value back to the map's element type.
func rewrap(v reflect.Value, elem reflect.Type) reflect.Value {
	if v.Type() != elem && v.Type().AssignableTo(elem) {
		w := reflect.New(elem).Elem()
		w.Set(v)
		return w
	}
	return v
}

// deepCopy returns an independent copy of v. Scalars copy by value;
// pointers, slices, maps, structs, and interfaces copy structurally.
func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		cp := reflect.New(v.Type().Elem())
		cp.Elem().Set(deepCopy(v.Elem()))
		return cp
	case reflect.Struct:
		t := v.Type()
		exported := false
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath == "" {
				exported = true
				break
			}
		}
		if !exported {
			// Opaque struct (e.g. time.Time): copy by value.
			return v
		}
		cp := reflect.New(t).Elem()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue // unexported fields stay zero
			}
			cp.Field(i).Set(deepCopy(v.Field(i)))
		}
		return cp
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			cp.Index(i).Set(deepCopy(v.Index(i)))
		}
		return cp
	case reflect.Array:
		cp := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			cp.Index(i).Set(deepCopy(v.Index(i)))
		}
		return cp
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			cp.SetMapIndex(deepCopy(iter.Key()), deepCopy(iter.Value()))
		}
		return cp
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		cp := reflect.New(v.Type()).Elem()
		cp.Set(deepCopy(v.Elem()))
		return cp
	default:
		return v
	}
}
