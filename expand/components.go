package expand

// AddressComponents selects which address component categories take part in
// normalization. Bit positions follow the native ABI exactly; bits 10-12 are
// reserved there and stay clear in every value this package produces.
type AddressComponents uint16

const (
	ComponentNone AddressComponents = 0
	ComponentAny  AddressComponents = 1 << 0
	ComponentName AddressComponents = 1 << 1

	ComponentHouseNumber AddressComponents = 1 << 2
	ComponentStreet      AddressComponents = 1 << 3
	ComponentUnit        AddressComponents = 1 << 4
	ComponentLevel       AddressComponents = 1 << 5
	ComponentStaircase   AddressComponents = 1 << 6
	ComponentEntrance    AddressComponents = 1 << 7
	ComponentCategory    AddressComponents = 1 << 8
	ComponentNear        AddressComponents = 1 << 9

	ComponentToponym    AddressComponents = 1 << 13
	ComponentPostalCode AddressComponents = 1 << 14
	ComponentPOBox      AddressComponents = 1 << 15

	// componentReserved marks the bit positions the native ABI keeps unused.
	componentReserved AddressComponents = 1<<10 | 1<<11 | 1<<12

	// ComponentAll is every defined category with the reserved bits clear.
	ComponentAll = AddressComponents(1<<16-1) &^ componentReserved
)

// Has reports whether every category in c is set.
func (a AddressComponents) Has(c AddressComponents) bool {
	return a&c == c
}

// Toggle flips the given categories and returns the result with reserved
// bits cleared.
func (a AddressComponents) Toggle(c AddressComponents) AddressComponents {
	return (a ^ c) &^ componentReserved
}

// With returns a with the given categories set.
func (a AddressComponents) With(c AddressComponents) AddressComponents {
	return (a | c) &^ componentReserved
}

// Without returns a with the given categories cleared.
func (a AddressComponents) Without(c AddressComponents) AddressComponents {
	return a &^ c
}
