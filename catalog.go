package qcircuit

import "strings"

/*
Catalog maps gate names to their descriptors. It is built once by the caller
and only read afterwards, so a single instance can be shared by reference.
*/
type Catalog struct {
	ordered []GateInfo
	byName  map[string]GateInfo
}

func NewCatalog() *Catalog {
	kinds := gateKinds()
	aliases := map[string]GateKind{
		"id":       GateI,
		"not":      GateX,
		"hadamard": GateH,
		"cx":       GateCNOT,
		"phase":    GatePhase,
		"s†":       GateSdg,
		"t†":       GateTdg,
	}

	catalog := &Catalog{
		ordered: make([]GateInfo, 0, len(kinds)),
		byName:  make(map[string]GateInfo, len(kinds)+len(aliases)),
	}

	for _, kind := range kinds {
		info := kind.Info()
		catalog.ordered = append(catalog.ordered, info)
		catalog.byName[strings.ToLower(info.Name)] = info
	}

	for alias, kind := range aliases {
		catalog.byName[alias] = kind.Info()
	}

	return catalog
}

// Lookup resolves a case-insensitive gate name, returning the unknown descriptor on a miss.
func (c *Catalog) Lookup(name string) GateInfo {
	if info, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return info
	}
	return GateUnknown.Info()
}

// Gates lists every known gate in display order.
func (c *Catalog) Gates() []GateInfo {
	out := make([]GateInfo, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Matrix resolves name and builds its operator.
func (c *Catalog) Matrix(name string, angle float64) (*Matrix, error) {
	return c.Lookup(name).Kind.Matrix(angle)
}
