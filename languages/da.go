package languages

// Danish message table.
var danishMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' er ikke en gyldig e-mailadresse.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' skal være større end eller lig med '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' skal være større end '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' skal være mellem {MinLength} og {MaxLength} tegn. Du har indtastet {TotalLength} tegn.",
	"MinimumLengthValidator":      "'{PropertyName}' skal være mindst {MinLength} tegn. Du har indtastet {TotalLength} tegn.",
	"MaximumLengthValidator":      "'{PropertyName}' må højst være {MaxLength} tegn. Du har indtastet {TotalLength} tegn.",
	"LessThanOrEqualValidator":    "'{PropertyName}' skal være mindre end eller lig med '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' skal være mindre end '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' må ikke være tom.",
	"NotEqualValidator":           "'{PropertyName}' må ikke være lig med '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' må ikke være tom.",
	"PredicateValidator":          "Den angivne betingelse var ikke opfyldt for '{PropertyName}'.",
	"AsyncPredicateValidator":     "Den angivne betingelse var ikke opfyldt for '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' har ikke det korrekte format.",
	"EqualValidator":              "'{PropertyName}' skal være lig med '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' skal være præcis {MaxLength} tegn. Du har indtastet {TotalLength} tegn.",
	"InclusiveBetweenValidator":   "'{PropertyName}' skal være mellem {From} og {To}. Du har indtastet {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' skal være mellem {From} og {To} (eksklusiv). Du har indtastet {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' er ikke et gyldigt kreditkortnummer.",
	"ScalePrecisionValidator":     "'{PropertyName}' må ikke have mere end {ExpectedPrecision} cifre i alt, med {ExpectedScale} decimaler tilladt. Der blev fundet {Digits} cifre og {ActualScale} decimaler.",
	"EmptyValidator":              "'{PropertyName}' skal være tom.",
	"NullValidator":               "'{PropertyName}' skal være tom.",
	"EnumValidator":               "'{PropertyName}' har et værdiområde, der ikke omfatter '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' skal være mellem {MinLength} og {MaxLength} tegn.",
	"MinimumLength_Simple":        "'{PropertyName}' skal være mindst {MinLength} tegn.",
	"MaximumLength_Simple":        "'{PropertyName}' må højst være {MaxLength} tegn.",
	"ExactLength_Simple":          "'{PropertyName}' skal være præcis {MaxLength} tegn.",
	"InclusiveBetween_Simple":     "'{PropertyName}' skal være mellem {From} og {To}.",
}
