package languages

// Romanian message table.
var romanianMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' nu este o adresă de email validă.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' trebuie să fie mai mare sau egal cu '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' trebuie să fie mai mare decât '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' trebuie să aibă între {MinLength} și {MaxLength} caractere. Ați introdus {TotalLength} caractere.",
	"MinimumLengthValidator":      "'{PropertyName}' trebuie să aibă cel puțin {MinLength} caractere. Ați introdus {TotalLength} caractere.",
	"MaximumLengthValidator":      "'{PropertyName}' trebuie să aibă cel mult {MaxLength} caractere. Ați introdus {TotalLength} caractere.",
	"LessThanOrEqualValidator":    "'{PropertyName}' trebuie să fie mai mic sau egal cu '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' trebuie să fie mai mic decât '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' nu trebuie să fie gol.",
	"NotEqualValidator":           "'{PropertyName}' nu trebuie să fie egal cu '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' nu trebuie să fie gol.",
	"PredicateValidator":          "Condiția specificată nu a fost îndeplinită pentru '{PropertyName}'.",
	"AsyncPredicateValidator":     "Condiția specificată nu a fost îndeplinită pentru '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' nu are formatul corect.",
	"EqualValidator":              "'{PropertyName}' trebuie să fie egal cu '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' trebuie să aibă exact {MaxLength} caractere. Ați introdus {TotalLength} caractere.",
	"InclusiveBetweenValidator":   "'{PropertyName}' trebuie să fie între {From} și {To}. Ați introdus {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' trebuie să fie între {From} și {To} (exclusiv). Ați introdus {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' nu este un număr de card de credit valid.",
	"ScalePrecisionValidator":     "'{PropertyName}' nu trebuie să aibă mai mult de {ExpectedPrecision} cifre în total, cu {ExpectedScale} zecimale permise. S-au găsit {Digits} cifre și {ActualScale} zecimale.",
	"EmptyValidator":              "'{PropertyName}' trebuie să fie gol.",
	"NullValidator":               "'{PropertyName}' trebuie să fie gol.",
	"EnumValidator":               "'{PropertyName}' are un interval de valori care nu include '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' trebuie să aibă între {MinLength} și {MaxLength} caractere.",
	"MinimumLength_Simple":        "'{PropertyName}' trebuie să aibă cel puțin {MinLength} caractere.",
	"MaximumLength_Simple":        "'{PropertyName}' trebuie să aibă cel mult {MaxLength} caractere.",
	"ExactLength_Simple":          "'{PropertyName}' trebuie să aibă exact {MaxLength} caractere.",
	"InclusiveBetween_Simple":     "'{PropertyName}' trebuie să fie între {From} și {To}.",
}
