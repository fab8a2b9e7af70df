package randomizer

import "stackcore/internal/prng"

// Name identifies one of the randomizer families the Options.randomizer
// enum can select.
type Name string

const (
	Memoryless    Name = "Memoryless"
	Nes           Name = "Nes"
	Bag7          Name = "Bag7"
	Bag7SeamCheck Name = "Bag7SeamCheck"
	MultiBag2     Name = "MultiBag2"
	MultiBag4     Name = "MultiBag4"
	MultiBag9     Name = "MultiBag9"
	Tgm1          Name = "Tgm1"
	Tgm2          Name = "Tgm2"
	Tgm3          Name = "Tgm3"
)

// New constructs the randomizer named by n over p. Panics on an unknown
// name; callers validate Options.randomizer during option parsing (spec
// §7, UnknownEnum) before this is ever reached.
func New(n Name, p *prng.PRNG) Randomizer {
	switch n {
	case Memoryless:
		return NewMemoryless(p)
	case Nes:
		return NewNES(p)
	case Bag7:
		return NewBagN(p, 7, false)
	case Bag7SeamCheck:
		return NewBagN(p, 7, true)
	case MultiBag2:
		return NewMultiBag(p, 2)
	case MultiBag4:
		return NewMultiBag(p, 4)
	case MultiBag9:
		return NewMultiBag(p, 9)
	case Tgm1:
		return NewTGM1(p)
	case Tgm2:
		return NewTGM2(p)
	case Tgm3:
		return NewTGM35(p)
	default:
		panic("randomizer: unknown family " + string(n))
	}
}
