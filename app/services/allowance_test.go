package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/usage-billing/app/config"
)

func TestAllowanceTable(t *testing.T) {
	tbl := NewAllowanceTable(config.AllowanceCfg{
		Default:    50,
		RoomLimits: map[int]float64{1: 50, 2: 70, 3: 100},
		Rooms: map[string]int{
			"Aribau 1º 1ª": 2,
			"Padilla 2-2":  5, // room count without a configured limit
		},
		Special: map[string]float64{"Padilla 1º 3ª": 150},
	})

	// Special limits win over everything.
	assert.Equal(t, 150.0, tbl.ForAddress("Padilla 1º 3ª"))
	// Room count resolved through the per-room-count limits.
	assert.Equal(t, 70.0, tbl.ForAddress("Aribau 1º 1ª"))
	// Known room count, no limit for it.
	assert.Equal(t, 50.0, tbl.ForAddress("Padilla 2-2"))
	// Unknown address.
	assert.Equal(t, 50.0, tbl.ForAddress("Valencia 9-9"))
}

func TestAllowanceTableExactStringLookup(t *testing.T) {
	tbl := NewAllowanceTable(config.AllowanceCfg{
		Default: 50,
		Special: map[string]float64{"Aribau 1º 1ª": 120},
	})

	// Lookup is by the raw address string. A spelling variant of the same
	// flat does not inherit the special limit.
	assert.Equal(t, 120.0, tbl.ForAddress("Aribau 1º 1ª"))
	assert.Equal(t, 50.0, tbl.ForAddress("Aribau 1-1"))
}

func TestAllowanceTableZeroDefault(t *testing.T) {
	tbl := NewAllowanceTable(config.AllowanceCfg{})
	assert.Equal(t, 50.0, tbl.ForAddress("anything"))
}
