package model

// PriceMove is a human-friendly label for the direction of a price change.
// Keep these values stable; they are intended for CSV/JSON output.
type PriceMove string

const (
	PriceMoveCut       PriceMove = "CUT"
	PriceMoveUnchanged PriceMove = "UNCHANGED"
	PriceMoveHike      PriceMove = "HIKE"
)

func PriceMoveFromDelta(priceDelta float64) PriceMove {
	switch {
	case priceDelta < 0:
		return PriceMoveCut
	case priceDelta > 0:
		return PriceMoveHike
	default:
		return PriceMoveUnchanged
	}
}
