package format

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

var (
	valueType       = reflect.TypeFor[Value]()
	numberType      = reflect.TypeFor[json.Number]()
	marshalerType   = reflect.TypeFor[json.Marshaler]()
	textMarshalType = reflect.TypeFor[encoding.TextMarshaler]()
)

// walker converts Go values to Values following encoding/json's field and
// key rules, with JavaScript's treatment of values JSON has no form for:
// non-finite numbers become null, functions and channels are dropped from
// objects and become null inside arrays.
type walker struct {
	// visiting holds the pointers, maps and slices on the current path.
	visiting map[any]struct{}
}

func (w *walker) value(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Null()
	}

	t := rv.Type()
	switch {
	case !rv.CanInterface():
		// Fields promoted from unexported embedded structs are walked by kind.
	case t == valueType:
		return rv.Interface().(Value)
	case t == numberType:
		return w.number(rv.String())
	case t.Implements(marshalerType) && !(t.Kind() == reflect.Pointer && rv.IsNil()):
		return w.marshaled(rv)
	case t.Kind() != reflect.Pointer && rv.CanAddr() && reflect.PointerTo(t).Implements(marshalerType):
		return w.marshaled(rv.Addr())
	case t.Implements(textMarshalType) && !(t.Kind() == reflect.Pointer && rv.IsNil()):
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return Unrepresentable(err)
		}
		return String(string(text))
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindNumber, num: strconv.FormatUint(rv.Uint(), 10)}
	case reflect.Float32, reflect.Float64:
		return w.float(rv)
	case reflect.String:
		return String(rv.String())
	case reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return w.value(rv.Elem())
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		return w.enter(rv.UnsafePointer(), func() Value { return w.value(rv.Elem()) })
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		return w.enter(rv.UnsafePointer(), func() Value { return w.mapValue(rv) })
	case reflect.Slice:
		if rv.IsNil() {
			return Null()
		}
		if t.Elem().Kind() == reflect.Uint8 {
			// Bytes encode as a base64 string.
			return w.raw(json.Marshal(rv.Bytes()))
		}
		if rv.Len() == 0 {
			return Array()
		}
		key := struct {
			ptr uintptr
			len int
		}{uintptr(rv.UnsafePointer()), rv.Len()}
		return w.enter(key, func() Value { return w.items(rv) })
	case reflect.Array:
		return w.items(rv)
	case reflect.Struct:
		return w.structValue(rv)
	default:
		// func, chan, complex and unsafe pointers have no JSON form.
		return Undefined()
	}
}

// enter guards a pointer-like value against cycles.
func (w *walker) enter(key any, visit func() Value) Value {
	if _, ok := w.visiting[key]; ok {
		return Unrepresentable(fmt.Errorf("encountered a cycle"))
	}
	if w.visiting == nil {
		w.visiting = make(map[any]struct{})
	}
	w.visiting[key] = struct{}{}
	defer delete(w.visiting, key)
	return visit()
}

func (w *walker) float(rv reflect.Value) Value {
	f := rv.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	// Marshal the original width so float32 keeps its shortest form.
	if rv.Kind() == reflect.Float32 {
		return w.raw(json.Marshal(float32(f)))
	}
	return w.raw(json.Marshal(f))
}

func (w *walker) number(s string) Value {
	if s == "" {
		return Int(0)
	}
	if !json.Valid([]byte(s)) {
		return Unrepresentable(fmt.Errorf("invalid number literal %q", s))
	}
	return Value{kind: KindNumber, num: s}
}

// marshaled defers to the value's own JSON encoding.
func (w *walker) marshaled(rv reflect.Value) Value {
	return w.raw(json.Marshal(rv.Interface()))
}

// raw decodes already-encoded JSON.
func (w *walker) raw(raw []byte, err error) Value {
	if err != nil {
		return Unrepresentable(err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Unrepresentable(err)
	}
	return v
}

func (w *walker) items(rv reflect.Value) Value {
	items := make([]Value, rv.Len())
	for i := range items {
		item := w.value(rv.Index(i))
		if item.kind == KindUndefined {
			item = Null()
		}
		items[i] = item
	}
	return Value{kind: KindArray, items: items}
}

func (w *walker) mapValue(rv reflect.Value) Value {
	fields := make([]Field, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return Unrepresentable(err)
		}
		val := w.value(iter.Value())
		if val.kind == KindUndefined {
			continue
		}
		fields = append(fields, Field{Key: key, Value: val})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return Value{kind: KindObject, fields: fields}
}

// mapKey renders a map key the way encoding/json does. Interface keys,
// which yaml produces, are resolved through their dynamic value.
func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "null", nil
		}
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if !k.CanInterface() {
		return k.String(), nil
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		if k.Kind() == reflect.Pointer && k.IsNil() {
			return "", nil
		}
		b, err := tm.MarshalText()
		return string(b), err
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	default:
		return fmt.Sprint(k.Interface()), nil
	}
}

type structField struct {
	name   string
	depth  int
	tagged bool
	value  Value
}

func (w *walker) structValue(rv reflect.Value) Value {
	var collected []structField
	w.collect(rv, 0, &collected)

	// Resolve duplicate names: the shallowest field wins, a tagged field
	// breaks a tie, and an unbroken tie drops the name altogether.
	byName := make(map[string][]int)
	for i, f := range collected {
		byName[f.name] = append(byName[f.name], i)
	}
	fields := make([]Field, 0, len(collected))
	for i, f := range collected {
		if winner(collected, byName[f.name]) != i {
			continue
		}
		if f.value.kind == KindUndefined {
			continue
		}
		fields = append(fields, Field{Key: f.name, Value: f.value})
	}
	return Value{kind: KindObject, fields: fields}
}

func winner(fields []structField, idx []int) int {
	if len(idx) == 1 {
		return idx[0]
	}
	minDepth := fields[idx[0]].depth
	for _, i := range idx {
		minDepth = min(minDepth, fields[i].depth)
	}
	var shallow, tagged []int
	for _, i := range idx {
		if fields[i].depth != minDepth {
			continue
		}
		shallow = append(shallow, i)
		if fields[i].tagged {
			tagged = append(tagged, i)
		}
	}
	switch {
	case len(shallow) == 1:
		return shallow[0]
	case len(tagged) == 1:
		return tagged[0]
	default:
		return -1
	}
}

func (w *walker) collect(rv reflect.Value, depth int, out *[]structField) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		fv := rv.Field(i)
		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if fv.Kind() == reflect.Pointer {
					if fv.IsNil() {
						continue
					}
					fv = fv.Elem()
				}
				w.collect(fv, depth+1, out)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if hasOption(opts, "omitempty") && isEmpty(fv) {
			continue
		}

		tagged := name != ""
		if !tagged {
			name = sf.Name
		}
		*out = append(*out, structField{name: name, depth: depth, tagged: tagged, value: w.value(fv)})
	}
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	default:
		return false
	}
}
