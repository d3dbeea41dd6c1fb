package languages

// Ukrainian message table.
var ukrainianMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' не є дійсною адресою електронної пошти.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' має бути більшим або рівним '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' має бути більшим за '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' має містити від {MinLength} до {MaxLength} символів. Введено {TotalLength} символів.",
	"MinimumLengthValidator":      "'{PropertyName}' має містити щонайменше {MinLength} символів. Введено {TotalLength} символів.",
	"MaximumLengthValidator":      "'{PropertyName}' має містити не більше {MaxLength} символів. Введено {TotalLength} символів.",
	"LessThanOrEqualValidator":    "'{PropertyName}' має бути меншим або рівним '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' має бути меншим за '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' не має бути порожнім.",
	"NotEqualValidator":           "'{PropertyName}' не має дорівнювати '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' не має бути порожнім.",
	"PredicateValidator":          "Задану умову не виконано для '{PropertyName}'.",
	"AsyncPredicateValidator":     "Задану умову не виконано для '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' має неправильний формат.",
	"EqualValidator":              "'{PropertyName}' має дорівнювати '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' має містити рівно {MaxLength} символів. Введено {TotalLength} символів.",
	"InclusiveBetweenValidator":   "'{PropertyName}' має бути в межах від {From} до {To}. Введено {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' має бути в межах від {From} до {To} (виключно). Введено {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' не є дійсним номером кредитної картки.",
	"ScalePrecisionValidator":     "'{PropertyName}' не має містити більше {ExpectedPrecision} цифр загалом, з них {ExpectedScale} після коми. Знайдено {Digits} цифр і {ActualScale} після коми.",
	"EmptyValidator":              "'{PropertyName}' має бути порожнім.",
	"NullValidator":               "'{PropertyName}' має бути порожнім.",
	"EnumValidator":               "'{PropertyName}' має діапазон значень, який не містить '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' має містити від {MinLength} до {MaxLength} символів.",
	"MinimumLength_Simple":        "'{PropertyName}' має містити щонайменше {MinLength} символів.",
	"MaximumLength_Simple":        "'{PropertyName}' має містити не більше {MaxLength} символів.",
	"ExactLength_Simple":          "'{PropertyName}' має містити рівно {MaxLength} символів.",
	"InclusiveBetween_Simple":     "'{PropertyName}' має бути в межах від {From} до {To}.",
}
