package equipment

// Distribution assigns a quantity to each size of one equipment kind.
type Distribution map[Size]int

func (d Distribution) Total() int {
	total := 0
	for _, qty := range d {
		total += qty
	}
	return total
}

func (d Distribution) clone() Distribution {
	out := make(Distribution, len(d))
	for size, qty := range d {
		out[size] = qty
	}
	return out
}

// Adjust applies delta to size and returns the new distribution; d is left
// untouched. With a single rider an increase replaces whatever was chosen.
func (d Distribution) Adjust(size Size, delta, riders int) (Distribution, error) {
	if !size.IsValid() {
		return d, ErrInvalidSize
	}
	if delta == 0 {
		return d.clone(), nil
	}

	if delta < 0 {
		if d[size]+delta < 0 {
			return d, ErrBelowZero
		}
		next := d.clone()
		next[size] += delta
		if next[size] == 0 {
			delete(next, size)
		}
		return next, nil
	}

	if riders < 1 {
		return d, ErrRidersRequired
	}
	if riders == 1 {
		return Distribution{size: 1}, nil
	}
	if d.Total()+delta > riders {
		return d, ErrKindFull
	}
	next := d.clone()
	next[size] += delta
	return next, nil
}

type Distributions map[Kind]Distribution

func (ds Distributions) Adjust(req Requirement, kind Kind, size Size, delta, riders int) (Distributions, error) {
	if !kind.IsValid() {
		return ds, ErrInvalidKind
	}
	if !req.Requires(kind) {
		return ds, ErrKindNotRequired
	}
	dist, err := ds[kind].Adjust(size, delta, riders)
	if err != nil {
		return ds, err
	}
	next := make(Distributions, len(ds)+1)
	for k, v := range ds {
		next[k] = v
	}
	next[kind] = dist
	return next, nil
}
