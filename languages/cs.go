package languages

// Czech message table.
var czechMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' není platná emailová adresa.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' musí být větší nebo rovno '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' musí být větší než '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' musí mít délku {MinLength} až {MaxLength} znaků. Zadáno {TotalLength} znaků.",
	"MinimumLengthValidator":      "'{PropertyName}' musí mít alespoň {MinLength} znaků. Zadáno {TotalLength} znaků.",
	"MaximumLengthValidator":      "'{PropertyName}' smí mít nejvýše {MaxLength} znaků. Zadáno {TotalLength} znaků.",
	"LessThanOrEqualValidator":    "'{PropertyName}' musí být menší nebo rovno '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' musí být menší než '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' nesmí být prázdné.",
	"NotEqualValidator":           "'{PropertyName}' nesmí být rovno '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' nesmí být prázdné.",
	"PredicateValidator":          "Zadaná podmínka nebyla splněna pro '{PropertyName}'.",
	"AsyncPredicateValidator":     "Zadaná podmínka nebyla splněna pro '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' nemá správný formát.",
	"EqualValidator":              "'{PropertyName}' musí být rovno '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' musí mít přesně {MaxLength} znaků. Zadáno {TotalLength} znaků.",
	"InclusiveBetweenValidator":   "'{PropertyName}' musí být mezi {From} a {To}. Zadáno {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' musí být mezi {From} a {To} (mimo krajní hodnoty). Zadáno {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' není platné číslo platební karty.",
	"ScalePrecisionValidator":     "'{PropertyName}' nesmí mít celkem více než {ExpectedPrecision} číslic, z toho {ExpectedScale} desetinných míst. Nalezeno {Digits} číslic a {ActualScale} desetinných míst.",
	"EmptyValidator":              "'{PropertyName}' musí být prázdné.",
	"NullValidator":               "'{PropertyName}' musí být prázdné.",
	"EnumValidator":               "'{PropertyName}' má rozsah hodnot, který neobsahuje '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' musí mít délku {MinLength} až {MaxLength} znaků.",
	"MinimumLength_Simple":        "'{PropertyName}' musí mít alespoň {MinLength} znaků.",
	"MaximumLength_Simple":        "'{PropertyName}' smí mít nejvýše {MaxLength} znaků.",
	"ExactLength_Simple":          "'{PropertyName}' musí mít přesně {MaxLength} znaků.",
	"InclusiveBetween_Simple":     "'{PropertyName}' musí být mezi {From} a {To}.",
}
