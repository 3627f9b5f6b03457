// Package feed decorates transaction feed entries with provider display info.
package feed

import (
	"sort"

	"github.com/mrz1836/cashin/internal/fiatexchange"
)

// Item is one transaction feed entry.
type Item struct {
	TxHash   string                    `json:"tx_hash"`
	Provider *fiatexchange.DisplayInfo `json:"provider,omitempty"`
}

// Decorate returns one item per hash, in input order, carrying the provider info when known.
func Decorate(hashes []string, info fiatexchange.TxHashToDisplayInfo) []Item {
	items := make([]Item, 0, len(hashes))
	for _, h := range hashes {
		item := Item{TxHash: h}
		if di, ok := info[h]; ok {
			item.Provider = &di
		}
		items = append(items, item)
	}
	return items
}

// All returns an item for every hash with provider info, sorted by hash.
func All(info fiatexchange.TxHashToDisplayInfo) []Item {
	hashes := make([]string, 0, len(info))
	for h := range info {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)
	return Decorate(hashes, info)
}

// ProviderName returns the provider name of the item, or fallback when none is known.
func (i Item) ProviderName(fallback string) string {
	if i.Provider == nil {
		return fallback
	}
	return i.Provider.Name
}
