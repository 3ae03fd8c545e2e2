package gs1

import "strings"

// Application identifiers used by logistics labels.
const (
	AISSCC           = "00"
	AIGTIN           = "01"
	AIContent        = "02"
	AIBatchLot       = "10"
	AIProductionDate = "11"
	AIDueDate        = "12"
	AIPackagingDate  = "13"
	AIBestBefore     = "15"
	AIExpiry         = "17"
	AIVariant        = "20"
	AISerial         = "21"
	AICount          = "37"

	// AINetWeightKgBase takes the implied decimal position as its fourth digit, see MeasureAI.
	AINetWeightKgBase = "310"
)

// separatedAIs are followed by a group separator unless they end the element string.
var separatedAIs = map[string]struct{}{
	"00": {}, "01": {}, "02": {}, "10": {}, "11": {}, "12": {}, "13": {}, "15": {},
	"17": {}, "20": {}, "21": {}, "22": {}, "30": {}, "37": {}, "90": {}, "91": {},
	"92": {}, "93": {}, "94": {}, "95": {}, "96": {}, "97": {}, "98": {}, "99": {},
}

var aliases = map[string]string{
	"sscc":        AISSCC,
	"gtin":        AIGTIN,
	"content":     AIContent,
	"lot":         AIBatchLot,
	"batch":       AIBatchLot,
	"prod_date":   AIProductionDate,
	"due_date":    AIDueDate,
	"pack_date":   AIPackagingDate,
	"best_before": AIBestBefore,
	"expiry":      AIExpiry,
	"variant":     AIVariant,
	"serial":      AISerial,
	"count":       AICount,
}

var titles = map[string]string{
	AISSCC:           "SSCC",
	AIGTIN:           "GTIN",
	AIContent:        "CONTENT",
	AIBatchLot:       "BATCH/LOT",
	AIProductionDate: "PROD DATE",
	AIDueDate:        "DUE DATE",
	AIPackagingDate:  "PACK DATE",
	AIBestBefore:     "BEST BEFORE",
	AIExpiry:         "USE BY",
	AIVariant:        "VARIANT",
	AISerial:         "SERIAL",
	AICount:          "COUNT",
}

// IsSeparated reports whether ai must be followed by a group separator when
// another element comes after it.
func IsSeparated(ai string) bool {
	_, ok := separatedAIs[ai]
	return ok
}

// ResolveAI maps a key to its application identifier. Numeric keys are returned
// verbatim; names are looked up case-insensitively among the known aliases.
func ResolveAI(key string) (string, bool) {
	if isDigits(key) {
		return key, true
	}
	ai, ok := aliases[strings.ToLower(strings.TrimSpace(key))]
	return ai, ok
}

// Title returns the human-readable data title printed next to an AI, or the
// AI itself when no title is known.
func Title(ai string) string {
	if t, ok := titles[ai]; ok {
		return t
	}
	if len(ai) == 4 && strings.HasPrefix(ai, AINetWeightKgBase) {
		return "NET WEIGHT (kg)"
	}
	return ai
}
