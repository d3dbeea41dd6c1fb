package languages

// German message table.
var germanMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' ist keine gültige E-Mail-Adresse.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' muss größer oder gleich '{ComparisonValue}' sein.",
	"GreaterThanValidator":        "'{PropertyName}' muss größer als '{ComparisonValue}' sein.",
	"LengthValidator":             "'{PropertyName}' muss zwischen {MinLength} und {MaxLength} Zeichen lang sein. Es wurden {TotalLength} Zeichen eingegeben.",
	"MinimumLengthValidator":      "'{PropertyName}' muss mindestens {MinLength} Zeichen lang sein. Es wurden {TotalLength} Zeichen eingegeben.",
	"MaximumLengthValidator":      "'{PropertyName}' darf höchstens {MaxLength} Zeichen lang sein. Es wurden {TotalLength} Zeichen eingegeben.",
	"LessThanOrEqualValidator":    "'{PropertyName}' muss kleiner oder gleich '{ComparisonValue}' sein.",
	"LessThanValidator":           "'{PropertyName}' muss kleiner als '{ComparisonValue}' sein.",
	"NotEmptyValidator":           "'{PropertyName}' darf nicht leer sein.",
	"NotEqualValidator":           "'{PropertyName}' darf nicht gleich '{ComparisonValue}' sein.",
	"NotNullValidator":            "'{PropertyName}' darf nicht leer sein.",
	"PredicateValidator":          "Die angegebene Bedingung wurde für '{PropertyName}' nicht erfüllt.",
	"AsyncPredicateValidator":     "Die angegebene Bedingung wurde für '{PropertyName}' nicht erfüllt.",
	"RegularExpressionValidator":  "'{PropertyName}' hat nicht das richtige Format.",
	"EqualValidator":              "'{PropertyName}' muss gleich '{ComparisonValue}' sein.",
	"ExactLengthValidator":        "'{PropertyName}' muss genau {MaxLength} Zeichen lang sein. Es wurden {TotalLength} Zeichen eingegeben.",
	"InclusiveBetweenValidator":   "'{PropertyName}' muss zwischen {From} und {To} liegen. Es wurde {PropertyValue} eingegeben.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' muss zwischen {From} und {To} liegen (exklusiv). Es wurde {PropertyValue} eingegeben.",
	"CreditCardValidator":         "'{PropertyName}' ist keine gültige Kreditkartennummer.",
	"ScalePrecisionValidator":     "'{PropertyName}' darf insgesamt nicht mehr als {ExpectedPrecision} Ziffern enthalten, davon {ExpectedScale} Dezimalstellen. Es wurden {Digits} Ziffern und {ActualScale} Dezimalstellen gefunden.",
	"EmptyValidator":              "'{PropertyName}' muss leer sein.",
	"NullValidator":               "'{PropertyName}' muss leer sein.",
	"EnumValidator":               "'{PropertyName}' hat einen Wertebereich, der '{PropertyValue}' nicht enthält.",
	"Length_Simple":               "'{PropertyName}' muss zwischen {MinLength} und {MaxLength} Zeichen lang sein.",
	"MinimumLength_Simple":        "'{PropertyName}' muss mindestens {MinLength} Zeichen lang sein.",
	"MaximumLength_Simple":        "'{PropertyName}' darf höchstens {MaxLength} Zeichen lang sein.",
	"ExactLength_Simple":          "'{PropertyName}' muss genau {MaxLength} Zeichen lang sein.",
	"InclusiveBetween_Simple":     "'{PropertyName}' muss zwischen {From} und {To} liegen.",
}
