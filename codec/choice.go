package codec

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ChoiceValue is one variant of a choice group. Each concrete variant knows
// its type suffix ("String", "Quantity", ...) and how to write itself under
// the full member name.
type ChoiceValue interface {
	ChoiceSuffix() string
	EncodeChoice(e *ObjectEncoder, key string)
}

// ChoiceType is one (suffix, type) row of a choice group table.
type ChoiceType struct {
	// Suffix is appended to the group name to form the member name.
	Suffix string

	// Primitive marks variants that may also appear as "_" + member name.
	Primitive bool

	// Decode reads the variant from the member key of o. It returns nil when
	// o has recorded a failure.
	Decode func(o *Object, key string) ChoiceValue
}

// ChoiceGroup is the static table of a field[x] element.
type ChoiceGroup struct {
	Name     string
	Required bool
	Types    []ChoiceType
}

// Key returns the member name of the variant with the given suffix.
func (g *ChoiceGroup) Key(suffix string) string {
	return g.Name + suffix
}

// Suffixes lists the type suffixes of the group in table order.
func (g *ChoiceGroup) Suffixes() []string {
	out := make([]string, len(g.Types))
	for i, t := range g.Types {
		out[i] = t.Suffix
	}
	return out
}

func (g *ChoiceGroup) lookup(suffix string) *ChoiceType {
	for i := range g.Types {
		if g.Types[i].Suffix == suffix {
			return &g.Types[i]
		}
	}
	return nil
}

// present returns the member names of g found in o, in table order.
func (o *Object) present(g *ChoiceGroup) ([]string, []*ChoiceType) {
	var keys []string
	var types []*ChoiceType
	for i := range g.Types {
		t := &g.Types[i]
		key := g.Name + t.Suffix
		if o.Has(key) || (t.Primitive && o.Has("_"+key)) {
			keys = append(keys, key)
			types = append(types, t)
		}
	}
	return keys, types
}

// foreign returns the members named like a variant of g ("value" plus a
// capitalized suffix, or its "_" sibling) whose suffix is not in the table.
func (o *Object) foreign(g *ChoiceGroup) []string {
	var keys []string
	for key := range o.fields {
		name := strings.TrimPrefix(key, "_")
		if len(name) <= len(g.Name) || !strings.HasPrefix(name, g.Name) {
			continue
		}
		suffix := name[len(g.Name):]
		if suffix[0] < 'A' || suffix[0] > 'Z' {
			continue
		}
		if g.lookup(suffix) == nil {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Choice decodes the single variant of g present in o. It returns nil for an
// absent optional group and records MissingRequiredChoice or AmbiguousChoice
// otherwise. A member whose type suffix is outside the table is a
// TypeMismatch in every mode.
func (o *Object) Choice(g *ChoiceGroup) ChoiceValue {
	if o.err != nil {
		return nil
	}
	if stray := o.foreign(g); len(stray) > 0 {
		de := o.fail(ErrTypeMismatch, g.Name)
		de.Value = stray[0]
		de.Keys = stray
		de.Expected = "one of " + strings.Join(g.Suffixes(), ", ")
		return nil
	}
	keys, types := o.present(g)
	switch len(keys) {
	case 0:
		if g.Required {
			o.fail(ErrMissingRequiredChoice, g.Name)
		}
		return nil
	case 1:
		v := types[0].Decode(o, keys[0])
		if o.err != nil {
			return nil
		}
		return v
	default:
		de := o.fail(ErrAmbiguousChoice, g.Name)
		de.Keys = keys
		return nil
	}
}

// DecodeChoice is Choice narrowed to the group's Go interface.
func DecodeChoice[T ChoiceValue](o *Object, g *ChoiceGroup) T {
	var zero T
	v := o.Choice(g)
	if v == nil {
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("codec: %s%s decodes to %T, which is not a %s variant", g.Name, v.ChoiceSuffix(), v, g.Name))
	}
	return t
}

// Choice writes the member for v. Nothing is written for an absent optional
// group. An absent required group or a variant outside the table violates
// the encoding contract and panics.
func (e *ObjectEncoder) Choice(g *ChoiceGroup, v ChoiceValue) {
	if isNilValue(v) {
		if g.Required {
			panic(fmt.Sprintf("codec: required choice %s[x] has no value", g.Name))
		}
		return
	}
	suffix := v.ChoiceSuffix()
	if g.lookup(suffix) == nil {
		panic(fmt.Sprintf("codec: %s is not a type of %s[x]", suffix, g.Name))
	}
	v.EncodeChoice(e, g.Name+suffix)
}

func isNilValue(v ChoiceValue) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
