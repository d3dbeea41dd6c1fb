package languages

// Portuguese message table.
var portugueseMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' não é um endereço de email válido.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' deve ser superior ou igual a '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' deve ser superior a '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' deve ter entre {MinLength} e {MaxLength} caracteres. Introduziu {TotalLength} caracteres.",
	"MinimumLengthValidator":      "'{PropertyName}' deve ter pelo menos {MinLength} caracteres. Introduziu {TotalLength} caracteres.",
	"MaximumLengthValidator":      "'{PropertyName}' deve ter no máximo {MaxLength} caracteres. Introduziu {TotalLength} caracteres.",
	"LessThanOrEqualValidator":    "'{PropertyName}' deve ser inferior ou igual a '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' deve ser inferior a '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' não deve estar vazio.",
	"NotEqualValidator":           "'{PropertyName}' não deve ser igual a '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' não deve estar vazio.",
	"PredicateValidator":          "A condição especificada não foi cumprida para '{PropertyName}'.",
	"AsyncPredicateValidator":     "A condição especificada não foi cumprida para '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' não está no formato correto.",
	"EqualValidator":              "'{PropertyName}' deve ser igual a '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' deve ter exatamente {MaxLength} caracteres. Introduziu {TotalLength} caracteres.",
	"InclusiveBetweenValidator":   "'{PropertyName}' deve estar entre {From} e {To}. Introduziu {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' deve estar entre {From} e {To} (exclusivo). Introduziu {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' não é um número de cartão de crédito válido.",
	"ScalePrecisionValidator":     "'{PropertyName}' não deve ter mais de {ExpectedPrecision} dígitos no total, com {ExpectedScale} casas decimais permitidas. Foram encontrados {Digits} dígitos e {ActualScale} casas decimais.",
	"EmptyValidator":              "'{PropertyName}' deve estar vazio.",
	"NullValidator":               "'{PropertyName}' deve estar vazio.",
	"EnumValidator":               "'{PropertyName}' tem um intervalo de valores que não inclui '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' deve ter entre {MinLength} e {MaxLength} caracteres.",
	"MinimumLength_Simple":        "'{PropertyName}' deve ter pelo menos {MinLength} caracteres.",
	"MaximumLength_Simple":        "'{PropertyName}' deve ter no máximo {MaxLength} caracteres.",
	"ExactLength_Simple":          "'{PropertyName}' deve ter exatamente {MaxLength} caracteres.",
	"InclusiveBetween_Simple":     "'{PropertyName}' deve estar entre {From} e {To}.",
}
