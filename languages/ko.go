package languages

// Korean message table.
var koreanMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}'은(는) 유효한 이메일 주소가 아닙니다.",
	"GreaterThanOrEqualValidator": "'{PropertyName}'은(는) '{ComparisonValue}' 이상이어야 합니다.",
	"GreaterThanValidator":        "'{PropertyName}'은(는) '{ComparisonValue}'보다 커야 합니다.",
	"LengthValidator":             "'{PropertyName}'은(는) {MinLength}자에서 {MaxLength}자 사이여야 합니다. {TotalLength}자를 입력했습니다.",
	"MinimumLengthValidator":      "'{PropertyName}'은(는) 최소 {MinLength}자 이상이어야 합니다. {TotalLength}자를 입력했습니다.",
	"MaximumLengthValidator":      "'{PropertyName}'은(는) 최대 {MaxLength}자 이하여야 합니다. {TotalLength}자를 입력했습니다.",
	"LessThanOrEqualValidator":    "'{PropertyName}'은(는) '{ComparisonValue}' 이하여야 합니다.",
	"LessThanValidator":           "'{PropertyName}'은(는) '{ComparisonValue}'보다 작아야 합니다.",
	"NotEmptyValidator":           "'{PropertyName}'은(는) 비어 있으면 안 됩니다.",
	"NotEqualValidator":           "'{PropertyName}'은(는) '{ComparisonValue}'와 달라야 합니다.",
	"NotNullValidator":            "'{PropertyName}'은(는) 비어 있으면 안 됩니다.",
	"PredicateValidator":          "'{PropertyName}'에 대해 지정된 조건이 충족되지 않았습니다.",
	"AsyncPredicateValidator":     "'{PropertyName}'에 대해 지정된 조건이 충족되지 않았습니다.",
	"RegularExpressionValidator":  "'{PropertyName}'의 형식이 올바르지 않습니다.",
	"EqualValidator":              "'{PropertyName}'은(는) '{ComparisonValue}'와 같아야 합니다.",
	"ExactLengthValidator":        "'{PropertyName}'은(는) 정확히 {MaxLength}자여야 합니다. {TotalLength}자를 입력했습니다.",
	"InclusiveBetweenValidator":   "'{PropertyName}'은(는) {From}에서 {To} 사이여야 합니다. {PropertyValue}을(를) 입력했습니다.",
	"ExclusiveBetweenValidator":   "'{PropertyName}'은(는) {From}에서 {To} 사이여야 합니다(양 끝 제외). {PropertyValue}을(를) 입력했습니다.",
	"CreditCardValidator":         "'{PropertyName}'은(는) 유효한 신용카드 번호가 아닙니다.",
	"ScalePrecisionValidator":     "'{PropertyName}'은(는) 전체 {ExpectedPrecision}자리를 넘을 수 없으며 소수점 이하 {ExpectedScale}자리까지 허용됩니다. {Digits}자리와 소수점 이하 {ActualScale}자리가 발견되었습니다.",
	"EmptyValidator":              "'{PropertyName}'은(는) 비어 있어야 합니다.",
	"NullValidator":               "'{PropertyName}'은(는) 비어 있어야 합니다.",
	"EnumValidator":               "'{PropertyName}'의 값 범위에 '{PropertyValue}'이(가) 포함되지 않습니다.",
	"Length_Simple":               "'{PropertyName}'은(는) {MinLength}자에서 {MaxLength}자 사이여야 합니다.",
	"MinimumLength_Simple":        "'{PropertyName}'은(는) 최소 {MinLength}자 이상이어야 합니다.",
	"MaximumLength_Simple":        "'{PropertyName}'은(는) 최대 {MaxLength}자 이하여야 합니다.",
	"ExactLength_Simple":          "'{PropertyName}'은(는) 정확히 {MaxLength}자여야 합니다.",
	"InclusiveBetween_Simple":     "'{PropertyName}'은(는) {From}에서 {To} 사이여야 합니다.",
}
