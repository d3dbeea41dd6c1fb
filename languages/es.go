package languages

// Spanish message table.
var spanishMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' no es una dirección de correo electrónico válida.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' debe ser mayor o igual que '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' debe ser mayor que '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' debe tener entre {MinLength} y {MaxLength} caracteres. Se introdujeron {TotalLength} caracteres.",
	"MinimumLengthValidator":      "'{PropertyName}' debe tener al menos {MinLength} caracteres. Se introdujeron {TotalLength} caracteres.",
	"MaximumLengthValidator":      "'{PropertyName}' debe tener como máximo {MaxLength} caracteres. Se introdujeron {TotalLength} caracteres.",
	"LessThanOrEqualValidator":    "'{PropertyName}' debe ser menor o igual que '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' debe ser menor que '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' no debe estar vacío.",
	"NotEqualValidator":           "'{PropertyName}' no debe ser igual a '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' no debe estar vacío.",
	"PredicateValidator":          "No se cumplió la condición especificada para '{PropertyName}'.",
	"AsyncPredicateValidator":     "No se cumplió la condición especificada para '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' no tiene el formato correcto.",
	"EqualValidator":              "'{PropertyName}' debe ser igual a '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' debe tener exactamente {MaxLength} caracteres. Se introdujeron {TotalLength} caracteres.",
	"InclusiveBetweenValidator":   "'{PropertyName}' debe estar entre {From} y {To}. Se introdujo {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' debe estar entre {From} y {To} (exclusivo). Se introdujo {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' no es un número de tarjeta de crédito válido.",
	"ScalePrecisionValidator":     "'{PropertyName}' no debe tener más de {ExpectedPrecision} dígitos en total, con {ExpectedScale} decimales permitidos. Se encontraron {Digits} dígitos y {ActualScale} decimales.",
	"EmptyValidator":              "'{PropertyName}' debe estar vacío.",
	"NullValidator":               "'{PropertyName}' debe estar vacío.",
	"EnumValidator":               "'{PropertyName}' tiene un rango de valores que no incluye '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' debe tener entre {MinLength} y {MaxLength} caracteres.",
	"MinimumLength_Simple":        "'{PropertyName}' debe tener al menos {MinLength} caracteres.",
	"MaximumLength_Simple":        "'{PropertyName}' debe tener como máximo {MaxLength} caracteres.",
	"ExactLength_Simple":          "'{PropertyName}' debe tener exactamente {MaxLength} caracteres.",
	"InclusiveBetween_Simple":     "'{PropertyName}' debe estar entre {From} y {To}.",
}
