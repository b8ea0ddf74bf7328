package equipment

import "strings"

type ProductType string

const (
	ProductJetSki ProductType = "JetSki"
	ProductATV    ProductType = "ATV"
)

// NormalizeProductType maps the backend's product type onto the known
// rider-capable constants, leaving any other type untouched.
func NormalizeProductType(s string) ProductType {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, string(ProductJetSki)):
		return ProductJetSki
	case strings.EqualFold(s, string(ProductATV)):
		return ProductATV
	default:
		return ProductType(s)
	}
}

func (p ProductType) String() string {
	return string(p)
}

func (p ProductType) RiderCapable() bool {
	return p == ProductJetSki || p == ProductATV
}

type Kind string

const (
	KindHelmet     Kind = "Helmet"
	KindLifeJacket Kind = "LifeJacket"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindHelmet, KindLifeJacket:
		return true
	default:
		return false
	}
}

func (k Kind) label() string {
	if k == KindLifeJacket {
		return "life jackets"
	}
	return "helmets"
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

type Size string

const (
	SizeXS Size = "XS"
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

// Sizes lists every size from smallest to largest.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL}

func (s Size) String() string {
	return string(s)
}

func (s Size) IsValid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL:
		return true
	default:
		return false
	}
}

func NewSize(s string) (Size, error) {
	size := Size(strings.ToUpper(strings.TrimSpace(s)))
	if !size.IsValid() {
		return "", ErrInvalidSize
	}
	return size, nil
}
