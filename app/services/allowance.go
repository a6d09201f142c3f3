package services

import (
	"github.com/usage-billing/app/config"
)

// AllowanceTable resolves the monthly allowance for a flat. Lookup is an
// exact match on the address string: special limits first, then the
// room-count table through per-room-count limits, then the default. It is
// independent of the parsing engine: parsing decides whether a row is
// billable, this table decides how much.
type AllowanceTable struct {
	special    map[string]float64
	rooms      map[string]int
	roomLimits map[int]float64
	def        float64
}

// NewAllowanceTable builds an AllowanceTable from configuration.
func NewAllowanceTable(cfg config.AllowanceCfg) *AllowanceTable {
	t := &AllowanceTable{
		special:    cfg.Special,
		rooms:      cfg.Rooms,
		roomLimits: cfg.RoomLimits,
		def:        cfg.Default,
	}
	if t.def == 0 {
		t.def = 50
	}
	return t
}

// ForAddress returns the allowance in euros for an address string.
func (t *AllowanceTable) ForAddress(addr string) float64 {
	if limit, ok := t.special[addr]; ok {
		return limit
	}
	if rooms, ok := t.rooms[addr]; ok {
		if limit, ok := t.roomLimits[rooms]; ok {
			return limit
		}
		return t.def
	}
	return t.def
}
