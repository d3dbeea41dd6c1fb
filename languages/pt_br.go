package languages

// Brazilian Portuguese message table. Registered as "pt-BR"; anything it
// omits falls back to the base "pt" table before reaching the default.
var brazilianPortugueseMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' não é um endereço de email válido.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' deve ser maior ou igual a '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' deve ser maior que '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' deve ter entre {MinLength} e {MaxLength} caracteres. Você digitou {TotalLength} caracteres.",
	"MinimumLengthValidator":      "'{PropertyName}' deve ter no mínimo {MinLength} caracteres. Você digitou {TotalLength} caracteres.",
	"MaximumLengthValidator":      "'{PropertyName}' deve ter no máximo {MaxLength} caracteres. Você digitou {TotalLength} caracteres.",
	"LessThanOrEqualValidator":    "'{PropertyName}' deve ser menor ou igual a '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' deve ser menor que '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' não pode ser vazio.",
	"NotEqualValidator":           "'{PropertyName}' não pode ser igual a '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' não pode ser vazio.",
	"PredicateValidator":          "A condição especificada não foi atendida para '{PropertyName}'.",
	"AsyncPredicateValidator":     "A condição especificada não foi atendida para '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' não está no formato correto.",
	"EqualValidator":              "'{PropertyName}' deve ser igual a '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' deve ter exatamente {MaxLength} caracteres. Você digitou {TotalLength} caracteres.",
	"InclusiveBetweenValidator":   "'{PropertyName}' deve estar entre {From} e {To}. Você digitou {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' deve estar entre {From} e {To} (exclusivo). Você digitou {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' não é um número de cartão de crédito válido.",
	"ScalePrecisionValidator":     "'{PropertyName}' não pode ter mais de {ExpectedPrecision} dígitos no total, com {ExpectedScale} casas decimais permitidas. Foram encontrados {Digits} dígitos e {ActualScale} casas decimais.",
	"EmptyValidator":              "'{PropertyName}' deve ser vazio.",
	"NullValidator":               "'{PropertyName}' deve ser vazio.",
	"EnumValidator":               "'{PropertyName}' possui um intervalo de valores que não inclui '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' deve ter entre {MinLength} e {MaxLength} caracteres.",
	"MinimumLength_Simple":        "'{PropertyName}' deve ter no mínimo {MinLength} caracteres.",
	"MaximumLength_Simple":        "'{PropertyName}' deve ter no máximo {MaxLength} caracteres.",
	"ExactLength_Simple":          "'{PropertyName}' deve ter exatamente {MaxLength} caracteres.",
	"InclusiveBetween_Simple":     "'{PropertyName}' deve estar entre {From} e {To}.",
}
