package languages

// French message table.
var frenchMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' n'est pas une adresse email valide.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' doit être supérieur ou égal à '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' doit être supérieur à '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' doit contenir entre {MinLength} et {MaxLength} caractères. {TotalLength} caractères ont été saisis.",
	"MinimumLengthValidator":      "'{PropertyName}' doit contenir au moins {MinLength} caractères. {TotalLength} caractères ont été saisis.",
	"MaximumLengthValidator":      "'{PropertyName}' doit contenir au plus {MaxLength} caractères. {TotalLength} caractères ont été saisis.",
	"LessThanOrEqualValidator":    "'{PropertyName}' doit être inférieur ou égal à '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' doit être inférieur à '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' ne doit pas être vide.",
	"NotEqualValidator":           "'{PropertyName}' ne doit pas être égal à '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' ne doit pas avoir la valeur null.",
	"PredicateValidator":          "La condition spécifiée n'a pas été respectée pour '{PropertyName}'.",
	"AsyncPredicateValidator":     "La condition spécifiée n'a pas été respectée pour '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' n'a pas le bon format.",
	"EqualValidator":              "'{PropertyName}' doit être égal à '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' doit contenir exactement {MaxLength} caractères. {TotalLength} caractères ont été saisis.",
	"InclusiveBetweenValidator":   "'{PropertyName}' doit être entre {From} et {To}. {PropertyValue} a été saisi.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' doit être strictement entre {From} et {To}. {PropertyValue} a été saisi.",
	"CreditCardValidator":         "'{PropertyName}' n'est pas un numéro de carte de crédit valide.",
	"ScalePrecisionValidator":     "'{PropertyName}' ne doit pas dépasser {ExpectedPrecision} chiffres au total, dont {ExpectedScale} décimales. {Digits} chiffres et {ActualScale} décimales ont été trouvés.",
	"EmptyValidator":              "'{PropertyName}' doit être vide.",
	"NullValidator":               "'{PropertyName}' doit être vide.",
	"EnumValidator":               "'{PropertyName}' a une plage de valeurs qui n'inclut pas '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' doit contenir entre {MinLength} et {MaxLength} caractères.",
	"MinimumLength_Simple":        "'{PropertyName}' doit contenir au moins {MinLength} caractères.",
	"MaximumLength_Simple":        "'{PropertyName}' doit contenir au plus {MaxLength} caractères.",
	"ExactLength_Simple":          "'{PropertyName}' doit contenir exactement {MaxLength} caractères.",
	"InclusiveBetween_Simple":     "'{PropertyName}' doit être entre {From} et {To}.",
}
