package languages

// Dutch message table.
var dutchMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' is geen geldig e-mailadres.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' moet groter zijn dan of gelijk zijn aan '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' moet groter zijn dan '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' moet tussen {MinLength} en {MaxLength} tekens lang zijn. U heeft {TotalLength} tekens ingevoerd.",
	"MinimumLengthValidator":      "'{PropertyName}' moet minimaal {MinLength} tekens lang zijn. U heeft {TotalLength} tekens ingevoerd.",
	"MaximumLengthValidator":      "'{PropertyName}' mag maximaal {MaxLength} tekens lang zijn. U heeft {TotalLength} tekens ingevoerd.",
	"LessThanOrEqualValidator":    "'{PropertyName}' moet kleiner zijn dan of gelijk zijn aan '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' moet kleiner zijn dan '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' mag niet leeg zijn.",
	"NotEqualValidator":           "'{PropertyName}' mag niet gelijk zijn aan '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' mag niet leeg zijn.",
	"PredicateValidator":          "Er is niet voldaan aan de opgegeven voorwaarde voor '{PropertyName}'.",
	"AsyncPredicateValidator":     "Er is niet voldaan aan de opgegeven voorwaarde voor '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' heeft niet het juiste formaat.",
	"EqualValidator":              "'{PropertyName}' moet gelijk zijn aan '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' moet precies {MaxLength} tekens lang zijn. U heeft {TotalLength} tekens ingevoerd.",
	"InclusiveBetweenValidator":   "'{PropertyName}' moet tussen {From} en {To} liggen. U heeft {PropertyValue} ingevoerd.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' moet tussen {From} en {To} liggen (exclusief). U heeft {PropertyValue} ingevoerd.",
	"CreditCardValidator":         "'{PropertyName}' is geen geldig creditcardnummer.",
	"ScalePrecisionValidator":     "'{PropertyName}' mag in totaal niet meer dan {ExpectedPrecision} cijfers bevatten, met {ExpectedScale} decimalen toegestaan. Er zijn {Digits} cijfers en {ActualScale} decimalen gevonden.",
	"EmptyValidator":              "'{PropertyName}' moet leeg zijn.",
	"NullValidator":               "'{PropertyName}' moet leeg zijn.",
	"EnumValidator":               "'{PropertyName}' heeft een waardenbereik dat '{PropertyValue}' niet bevat.",
	"Length_Simple":               "'{PropertyName}' moet tussen {MinLength} en {MaxLength} tekens lang zijn.",
	"MinimumLength_Simple":        "'{PropertyName}' moet minimaal {MinLength} tekens lang zijn.",
	"MaximumLength_Simple":        "'{PropertyName}' mag maximaal {MaxLength} tekens lang zijn.",
	"ExactLength_Simple":          "'{PropertyName}' moet precies {MaxLength} tekens lang zijn.",
	"InclusiveBetween_Simple":     "'{PropertyName}' moet tussen {From} en {To} liggen.",
}
