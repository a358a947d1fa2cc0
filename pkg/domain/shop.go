package domain

// ShopItem is one catalog entry as returned by the shop endpoint.
// Read-only snapshot: the catalog is refreshed on open and after each
// purchase rather than patched locally.
type ShopItem struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	SportType    string `json:"sport_type"`
	CurrentLevel int    `json:"current_level"`
	MaxLevel     int    `json:"max_level"`
	NextPrice    int    `json:"next_price"`
	IsLocked     bool   `json:"is_locked"`
	IsMaxed      bool   `json:"is_maxed"`
}

// Buyable reports whether the item can be purchased with the given gold.
func (i ShopItem) Buyable(gold int) bool {
	return !i.IsLocked && !i.IsMaxed && gold >= i.NextPrice
}
