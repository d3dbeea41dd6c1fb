package languages

// Italian message table.
var italianMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' non è un indirizzo email valido.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' deve essere maggiore o uguale a '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' deve essere maggiore di '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' deve contenere tra {MinLength} e {MaxLength} caratteri. Sono stati inseriti {TotalLength} caratteri.",
	"MinimumLengthValidator":      "'{PropertyName}' deve contenere almeno {MinLength} caratteri. Sono stati inseriti {TotalLength} caratteri.",
	"MaximumLengthValidator":      "'{PropertyName}' deve contenere al massimo {MaxLength} caratteri. Sono stati inseriti {TotalLength} caratteri.",
	"LessThanOrEqualValidator":    "'{PropertyName}' deve essere minore o uguale a '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' deve essere minore di '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' non deve essere vuoto.",
	"NotEqualValidator":           "'{PropertyName}' non deve essere uguale a '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' non deve essere vuoto.",
	"PredicateValidator":          "La condizione specificata non è stata soddisfatta per '{PropertyName}'.",
	"AsyncPredicateValidator":     "La condizione specificata non è stata soddisfatta per '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' non è nel formato corretto.",
	"EqualValidator":              "'{PropertyName}' deve essere uguale a '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' deve contenere esattamente {MaxLength} caratteri. Sono stati inseriti {TotalLength} caratteri.",
	"InclusiveBetweenValidator":   "'{PropertyName}' deve essere compreso tra {From} e {To}. È stato inserito {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' deve essere compreso tra {From} e {To} (esclusivo). È stato inserito {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' non è un numero di carta di credito valido.",
	"ScalePrecisionValidator":     "'{PropertyName}' non deve avere più di {ExpectedPrecision} cifre in totale, con {ExpectedScale} decimali consentiti. Sono state trovate {Digits} cifre e {ActualScale} decimali.",
	"EmptyValidator":              "'{PropertyName}' deve essere vuoto.",
	"NullValidator":               "'{PropertyName}' deve essere vuoto.",
	"EnumValidator":               "'{PropertyName}' ha un intervallo di valori che non include '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' deve contenere tra {MinLength} e {MaxLength} caratteri.",
	"MinimumLength_Simple":        "'{PropertyName}' deve contenere almeno {MinLength} caratteri.",
	"MaximumLength_Simple":        "'{PropertyName}' deve contenere al massimo {MaxLength} caratteri.",
	"ExactLength_Simple":          "'{PropertyName}' deve contenere esattamente {MaxLength} caratteri.",
	"InclusiveBetween_Simple":     "'{PropertyName}' deve essere compreso tra {From} e {To}.",
}
