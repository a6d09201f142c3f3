package parser

import (
	"github.com/usage-billing/app/models"
	"go.uber.org/zap"
)

// AddressParser turns free-form address strings into canonical
// (building key, floor code) tuples. It is stateless; every call re-parses
// its input from scratch.
type AddressParser struct {
	logger *zap.Logger
}

// NewAddressParser creates an AddressParser.
func NewAddressParser(logger *zap.Logger) *AddressParser {
	return &AddressParser{logger: logger}
}

// ParseDataset parses one provider export row into its canonical tuple.
func (p *AddressParser) ParseDataset(raw string) models.DatasetRecord {
	building, floor := SplitAddress(raw, VariantDataset)
	code := ParseFloorCode(floor)
	base, letter := SplitBaseCode(code)
	rec := models.DatasetRecord{
		Raw:         raw,
		BuildingKey: BuildingKey(building),
		FloorCode:   code,
		BaseCode:    base,
		Letter:      letter,
	}
	p.logger.Debug("parsed dataset address",
		zap.String("raw", raw),
		zap.String("building_key", rec.BuildingKey),
		zap.String("floor_code", rec.FloorCode))
	return rec
}

// ParseRoster parses one curated roster entry into its building key and
// floor code. Synonym expansion into dataset keys happens in the matcher.
func (p *AddressParser) ParseRoster(raw string) (buildingKey, floorCode string) {
	building, floor := SplitAddress(raw, VariantRoster)
	buildingKey = BuildingKey(building)
	floorCode = ParseFloorCode(floor)
	p.logger.Debug("parsed roster address",
		zap.String("raw", raw),
		zap.String("building_key", buildingKey),
		zap.String("floor_code", floorCode))
	return buildingKey, floorCode
}
