package languages

// Polish message table.
var polishMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' nie jest poprawnym adresem email.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' musi być większe lub równe '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' musi być większe niż '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' musi mieć od {MinLength} do {MaxLength} znaków. Wprowadzono {TotalLength} znaków.",
	"MinimumLengthValidator":      "'{PropertyName}' musi mieć co najmniej {MinLength} znaków. Wprowadzono {TotalLength} znaków.",
	"MaximumLengthValidator":      "'{PropertyName}' może mieć najwyżej {MaxLength} znaków. Wprowadzono {TotalLength} znaków.",
	"LessThanOrEqualValidator":    "'{PropertyName}' musi być mniejsze lub równe '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' musi być mniejsze niż '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' nie może być puste.",
	"NotEqualValidator":           "'{PropertyName}' nie może być równe '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' nie może być puste.",
	"PredicateValidator":          "Określony warunek nie został spełniony dla '{PropertyName}'.",
	"AsyncPredicateValidator":     "Określony warunek nie został spełniony dla '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' ma niepoprawny format.",
	"EqualValidator":              "'{PropertyName}' musi być równe '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' musi mieć dokładnie {MaxLength} znaków. Wprowadzono {TotalLength} znaków.",
	"InclusiveBetweenValidator":   "'{PropertyName}' musi zawierać się pomiędzy {From} a {To}. Wprowadzono {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' musi zawierać się pomiędzy {From} a {To} (wyłącznie). Wprowadzono {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' nie jest poprawnym numerem karty kredytowej.",
	"ScalePrecisionValidator":     "'{PropertyName}' nie może mieć więcej niż {ExpectedPrecision} cyfr łącznie, z dopuszczalnymi {ExpectedScale} miejscami dziesiętnymi. Znaleziono {Digits} cyfr i {ActualScale} miejsc dziesiętnych.",
	"EmptyValidator":              "'{PropertyName}' musi być puste.",
	"NullValidator":               "'{PropertyName}' musi być puste.",
	"EnumValidator":               "'{PropertyName}' ma zakres wartości, który nie obejmuje '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' musi mieć od {MinLength} do {MaxLength} znaków.",
	"MinimumLength_Simple":        "'{PropertyName}' musi mieć co najmniej {MinLength} znaków.",
	"MaximumLength_Simple":        "'{PropertyName}' może mieć najwyżej {MaxLength} znaków.",
	"ExactLength_Simple":          "'{PropertyName}' musi mieć dokładnie {MaxLength} znaków.",
	"InclusiveBetween_Simple":     "'{PropertyName}' musi zawierać się pomiędzy {From} a {To}.",
}
