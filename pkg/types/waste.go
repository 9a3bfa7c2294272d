package types

// WasteRecord is a value snapshot of a discarded item. It keeps no reference
// to the item it was taken from.
type WasteRecord struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// WasteLedger is a snapshot of the waste ledger as delivered to subscribers.
// Total always equals the sum of the record prices.
type WasteLedger struct {
	Records []WasteRecord `json:"records"`
	Total   Price         `json:"totalWasteCost"`
}
