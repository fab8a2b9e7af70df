package rotation

// Name identifies one of the seven pluggable rotation systems spec §2
// lists, matching the Options.rotation_system enum values.
type Name string

const (
	Srs    Name = "Srs"
	Sega   Name = "Sega"
	Dtet   Name = "Dtet"
	Nes    Name = "Nes"
	Arika  Name = "Arika"
	Tgm    Name = "Tgm"
	Tgm3   Name = "Tgm3"
)

// New constructs the rotation system named by n. Panics on an unknown name;
// callers validate rotation_system during option parsing (spec §7,
// UnknownEnum) before this is ever called.
func New(n Name) Rotator {
	switch n {
	case Srs:
		return NewSRS()
	case Sega:
		return NewSega()
	case Dtet:
		return NewDTET()
	case Nes:
		return NewNES()
	case Arika:
		return NewArikaSRS()
	case Tgm:
		return NewTGM()
	case Tgm3:
		return NewTGM3()
	default:
		panic("rotation: unknown system " + string(n))
	}
}
