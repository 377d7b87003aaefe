// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"fmt"
	"sort"
)

// DefaultCommodityPrice is the farm-gate price in Rp/kg used for any
// commodity that the price table does not list.
const DefaultCommodityPrice = 5000

// PriceTable maps commodity names to nominal farm-gate prices in Rp/kg.
// The historical dataset carries no sale prices, so revenue estimates use
// this fixed table.
type PriceTable struct {
	// Prices holds the known commodities, keyed by exact commodity name.
	Prices map[string]float64 `json:"prices"`

	// Default applies to commodities absent from Prices.
	Default float64 `json:"default"`
}

// DefaultPriceTable returns the nominal prices for the main food crops.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Prices: map[string]float64{
			"Padi":         6000,
			"Jagung":       4500,
			"Kedelai":      8000,
			"Bawang Merah": 25000,
			"Cabai":        30000,
		},
		Default: DefaultCommodityPrice,
	}
}

// Lookup returns the price for commodity, falling back to Default.
func (t PriceTable) Lookup(commodity string) float64 {
	if p, ok := t.Prices[commodity]; ok {
		return p
	}
	return t.Default
}

// Commodities returns the listed commodity names in sorted order.
func (t PriceTable) Commodities() []string {
	names := make([]string, 0, len(t.Prices))
	for name := range t.Prices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate rejects negative prices.
func (t PriceTable) Validate() error {
	if t.Default < 0 {
		return fmt.Errorf("default price must be non-negative, got %f", t.Default)
	}
	for _, name := range t.Commodities() {
		if p := t.Prices[name]; p < 0 {
			return fmt.Errorf("price of %q must be non-negative, got %f", name, p)
		}
	}
	return nil
}

// Clone returns a copy that shares no map with t.
func (t PriceTable) Clone() PriceTable {
	prices := make(map[string]float64, len(t.Prices))
	for k, v := range t.Prices {
		prices[k] = v
	}
	return PriceTable{Prices: prices, Default: t.Default}
}
