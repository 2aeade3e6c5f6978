// model/unit.go
package model

import "github.com/shopspring/decimal"

// Unit is one rentable house in the fixed inventory.
type Unit struct {
	ID           int64           `json:"id"`
	NightlyPrice decimal.Decimal `json:"nightly_price"`
	Available    bool            `json:"available"`
}

// SetAvailable flips the coarse availability flag. This is a global
// flag, not a per-date one; date conflicts are the registry's job.
func (u *Unit) SetAvailable(available bool) {
	u.Available = available
}
