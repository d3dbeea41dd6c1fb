package languages

// Russian message table.
var russianMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' не является действительным адресом электронной почты.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' должно быть больше или равно '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' должно быть больше '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' должно содержать от {MinLength} до {MaxLength} символов. Введено {TotalLength} символов.",
	"MinimumLengthValidator":      "'{PropertyName}' должно содержать не менее {MinLength} символов. Введено {TotalLength} символов.",
	"MaximumLengthValidator":      "'{PropertyName}' должно содержать не более {MaxLength} символов. Введено {TotalLength} символов.",
	"LessThanOrEqualValidator":    "'{PropertyName}' должно быть меньше или равно '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' должно быть меньше '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' не должно быть пустым.",
	"NotEqualValidator":           "'{PropertyName}' не должно быть равно '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' не должно быть пустым.",
	"PredicateValidator":          "Указанное условие не было выполнено для '{PropertyName}'.",
	"AsyncPredicateValidator":     "Указанное условие не было выполнено для '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' имеет неверный формат.",
	"EqualValidator":              "'{PropertyName}' должно быть равно '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' должно содержать ровно {MaxLength} символов. Введено {TotalLength} символов.",
	"InclusiveBetweenValidator":   "'{PropertyName}' должно быть в диапазоне от {From} до {To}. Введено {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' должно быть в диапазоне от {From} до {To} (исключительно). Введено {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' не является действительным номером кредитной карты.",
	"ScalePrecisionValidator":     "'{PropertyName}' не должно содержать более {ExpectedPrecision} цифр всего, из них {ExpectedScale} после запятой. Найдено {Digits} цифр и {ActualScale} после запятой.",
	"EmptyValidator":              "'{PropertyName}' должно быть пустым.",
	"NullValidator":               "'{PropertyName}' должно быть пустым.",
	"EnumValidator":               "'{PropertyName}' имеет диапазон значений, который не содержит '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' должно содержать от {MinLength} до {MaxLength} символов.",
	"MinimumLength_Simple":        "'{PropertyName}' должно содержать не менее {MinLength} символов.",
	"MaximumLength_Simple":        "'{PropertyName}' должно содержать не более {MaxLength} символов.",
	"ExactLength_Simple":          "'{PropertyName}' должно содержать ровно {MaxLength} символов.",
	"InclusiveBetween_Simple":     "'{PropertyName}' должно быть в диапазоне от {From} до {To}.",
}
