package usecase

import (
	"regexp"

	"bookie-console/internal/domain"
)

// Display sub-category labels. Together with the number patterns below they
// form the validation vocabulary this core exposes to callers.
const (
	LabelSingle     = "Single"
	LabelJodi       = "Jodi"
	LabelSinglePana = "Single Pana"
	LabelDoublePana = "Double Pana"
	LabelTriplePana = "Triple Pana"
	LabelHalfSangam = "Half Sangam"
	LabelFullSangam = "Full Sangam"

	// LabelPanna is the soft fallback when a panna number is malformed and
	// the Single/Double/Triple split cannot be determined.
	LabelPanna = "Panna"
)

var (
	singlePattern     = regexp.MustCompile(`^\d$`)
	jodiPattern       = regexp.MustCompile(`^\d{2}$`)
	pannaPattern      = regexp.MustCompile(`^\d{3}$`)
	halfSangamPattern = regexp.MustCompile(`^\d{3}-\d$`)
	fullSangamPattern = regexp.MustCompile(`^\d{3}-\d{3}$`)
)

var fixedLabels = map[domain.BetType]string{
	domain.BetTypeSingle:     LabelSingle,
	domain.BetTypeJodi:       LabelJodi,
	domain.BetTypeHalfSangam: LabelHalfSangam,
	domain.BetTypeFullSangam: LabelFullSangam,
}

// ClassifySubType maps a bet's raw type and number to its display
// sub-category. Panna numbers are split by digit repetition, so the result
// is invariant under digit permutation. Classification never fails: a
// malformed panna number yields the generic "Panna" label and an unknown
// bet type is echoed back as-is.
func ClassifySubType(betType domain.BetType, betNumber string) string {
	if betType == domain.BetTypePanna {
		return classifyPanna(betNumber)
	}
	if label, ok := fixedLabels[betType]; ok {
		return label
	}
	return string(betType)
}

func classifyPanna(betNumber string) string {
	if !pannaPattern.MatchString(betNumber) {
		return LabelPanna
	}
	a, b, c := betNumber[0], betNumber[1], betNumber[2]
	switch {
	case a == b && b == c:
		return LabelTriplePana
	case a == b || b == c || a == c:
		return LabelDoublePana
	default:
		return LabelSinglePana
	}
}

// ValidateNumberFormat reports whether a bet number is well-formed for the
// given game type. It returns false on any mismatch or unknown type, never
// an error; surfacing the field-level message is the caller's job. The
// three panna sub-categories share one pattern — the split is determined
// post hoc by ClassifySubType.
func ValidateNumberFormat(betType domain.BetType, number string) bool {
	switch betType {
	case domain.BetTypeSingle:
		return singlePattern.MatchString(number)
	case domain.BetTypeJodi:
		return jodiPattern.MatchString(number)
	case domain.BetTypePanna:
		return pannaPattern.MatchString(number)
	case domain.BetTypeHalfSangam:
		return halfSangamPattern.MatchString(number)
	case domain.BetTypeFullSangam:
		return fullSangamPattern.MatchString(number)
	default:
		return false
	}
}
