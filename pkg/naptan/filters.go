package naptan

// Filter decides whether a parsed StopPoint is kept
type Filter func(*StopPoint) bool

func AllFilter(*StopPoint) bool {
	return true
}

// BusFilter keeps only the stop types a bus passenger can board from
func BusFilter(stopPoint *StopPoint) bool {
	switch stopPoint.StopClassification.StopType {
	case "BCT", "BCS", "BCQ", "BST", "BCE", "BCP":
		return true
	}

	// Older exports leave StopType blank on some on-street stops
	return stopPoint.StopClassification.StopType == "" && stopPoint.StopClassification.BusStopType != ""
}

// BasicFilter drops station entrances, which are never boarding points
func BasicFilter(stopPoint *StopPoint) bool {
	switch stopPoint.StopClassification.StopType {
	case "RSE": // ignore rail entrances
		return false
	case "TMU": // ignore tramMetroOrUndergroundEntrance
		return false
	case "FTD": // ferryTerminalDockEntrance
		return false
	}

	return true
}
