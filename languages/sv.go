package languages

// Swedish message table.
var swedishMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' är inte en giltig e-postadress.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' måste vara större än eller lika med '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' måste vara större än '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' måste vara mellan {MinLength} och {MaxLength} tecken. Du angav {TotalLength} tecken.",
	"MinimumLengthValidator":      "'{PropertyName}' måste vara minst {MinLength} tecken. Du angav {TotalLength} tecken.",
	"MaximumLengthValidator":      "'{PropertyName}' får vara högst {MaxLength} tecken. Du angav {TotalLength} tecken.",
	"LessThanOrEqualValidator":    "'{PropertyName}' måste vara mindre än eller lika med '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' måste vara mindre än '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' får inte vara tomt.",
	"NotEqualValidator":           "'{PropertyName}' får inte vara lika med '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' får inte vara tomt.",
	"PredicateValidator":          "Det angivna villkoret uppfylldes inte för '{PropertyName}'.",
	"AsyncPredicateValidator":     "Det angivna villkoret uppfylldes inte för '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' har inte rätt format.",
	"EqualValidator":              "'{PropertyName}' måste vara lika med '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' måste vara exakt {MaxLength} tecken. Du angav {TotalLength} tecken.",
	"InclusiveBetweenValidator":   "'{PropertyName}' måste vara mellan {From} och {To}. Du angav {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' måste vara mellan {From} och {To} (exklusivt). Du angav {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' är inte ett giltigt kreditkortsnummer.",
	"ScalePrecisionValidator":     "'{PropertyName}' får inte ha fler än {ExpectedPrecision} siffror totalt, med {ExpectedScale} decimaler tillåtna. {Digits} siffror och {ActualScale} decimaler hittades.",
	"EmptyValidator":              "'{PropertyName}' måste vara tomt.",
	"NullValidator":               "'{PropertyName}' måste vara tomt.",
	"EnumValidator":               "'{PropertyName}' har ett värdeintervall som inte innehåller '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' måste vara mellan {MinLength} och {MaxLength} tecken.",
	"MinimumLength_Simple":        "'{PropertyName}' måste vara minst {MinLength} tecken.",
	"MaximumLength_Simple":        "'{PropertyName}' får vara högst {MaxLength} tecken.",
	"ExactLength_Simple":          "'{PropertyName}' måste vara exakt {MaxLength} tecken.",
	"InclusiveBetween_Simple":     "'{PropertyName}' måste vara mellan {From} och {To}.",
}
