/*
Package registry maps Go values onto the closed set of value types nodeconf can
persist, and each value type onto the node kind that holds it.

Value types:

	TypeNil        nil                       -> ObjectValue
	TypeBool       bool                      -> BoolValue
	TypeNumber     float32, float64          -> NumberValue   (stored as float64)
	TypeInt        int*, uint8..uint32,      -> IntValue      (stored as int64)
	               uint, uint64 up to MaxInt64
	TypeString     string                    -> StringValue
	TypeReference  tree.Node                 -> ObjectValue
	TypeVector3    tree.Vector3              -> Vector3Value
	TypeColor3     tree.Color3               -> Color3Value

Kind is total over the enumeration; TypeOf is partial and reports
errors.ErrUnsupportedType for anything else:

	vt, err := registry.TypeOf(10)       // TypeInt
	kind := vt.Kind()                    // tree.KindIntValue
	_, err = registry.TypeOf([]int{1})   // errors.IsUnsupportedType(err) == true

Alias Registry:
Named Go types can be recognized as an existing value type. The set of tags
does not grow; values are converted to the canonical stored type:

	type Celsius float64

	registry.RegisterAlias[Celsius](registry.TypeNumber)
	vt, stored, _ := registry.Normalize(Celsius(21.5)) // TypeNumber, float64(21.5)
	c, ok := registry.As[Celsius](stored)              // Celsius(21.5), true

The alias registry is thread-safe and should be populated during
initialization, typically in init() functions.
*/
package registry
