package types

// A Null is the null type: the type of the null literal and of
// otherwise typeless constructs. There is exactly one Null value,
// NullType.
type Null struct{ typ }

// A UniversalInteger is the type of integer literals before they adopt
// a concrete integer type. There is exactly one value,
// UniversalIntegerType.
type UniversalInteger struct{ typ }

// A UniversalReal is the type of floating-point literals before they
// adopt a concrete floating-point type. There is exactly one value,
// UniversalRealType.
type UniversalReal struct{ typ }

func (*Null) String() string             { return "null" }
func (*UniversalInteger) String() string { return "{integer}" }
func (*UniversalReal) String() string    { return "{real}" }

// Singleton instances of the field-less types. All code shares these;
// an Arena hands them out instead of allocating.
var (
	NullType             = &Null{}
	UniversalIntegerType = &UniversalInteger{}
	UniversalRealType    = &UniversalReal{}
)
