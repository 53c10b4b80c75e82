// Package baseproduct defines the B=6 base products a recipe starts from,
// each carrying a base sell price and an inherent starting effect set.
//
// Grounded on original_source/src/main.rs's Drugs/WeedType enums and its
// base_price/inherent_effects functions (four weed strains share the
// "Weed" base price but differ in their inherent effect; some base
// products share a starting state only in that an empty inherent set is
// possible — Meth and Cocaine both start from ∅ here).
package baseproduct

import (
	"fmt"

	"github.com/mixgraph/mixgraph/effect"
)

// Product identifies one of the six base products.
type Product uint8

const (
	OGKush Product = iota
	SourDiesel
	GreenCrack
	GranddaddyPurple
	Meth
	Cocaine

	count
)

// Count is the size of the base-product catalog.
const Count = int(count)

// All lists every base product in catalog order.
var All = [Count]Product{OGKush, SourDiesel, GreenCrack, GranddaddyPurple, Meth, Cocaine}

var names = [Count]string{
	OGKush:           "OGKush",
	SourDiesel:       "SourDiesel",
	GreenCrack:       "GreenCrack",
	GranddaddyPurple: "GranddaddyPurple",
	Meth:             "Meth",
	Cocaine:          "Cocaine",
}

// BasePrice is the undoctored sell price before any effect multiplier is
// applied, indexed by Product.
var BasePrice = [Count]float64{
	OGKush:           35.0,
	SourDiesel:       35.0,
	GreenCrack:       35.0,
	GranddaddyPurple: 35.0,
	Meth:             70.0,
	Cocaine:          150.0,
}

// InherentEffects is the starting effect set a fresh base product carries
// before any substance is applied, indexed by Product.
var InherentEffects = [Count]effect.Set{
	OGKush:           effect.NewSet(effect.Calming),
	SourDiesel:       effect.NewSet(effect.Refreshing),
	GreenCrack:       effect.NewSet(effect.Energizing),
	GranddaddyPurple: effect.NewSet(effect.Sedating),
	Meth:             effect.Empty,
	Cocaine:          effect.Empty,
}

// String returns the product's declared name.
func (p Product) String() string {
	if int(p) < 0 || int(p) >= Count {
		return fmt.Sprintf("Product(%d)", p)
	}
	return names[p]
}
