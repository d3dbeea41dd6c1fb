package languages

// English message table. This is the default table: every key used by the
// library must have an entry here, it is the terminal fallback for all
// locales.
var englishMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' is not a valid email address.",
	"GreaterThanOrEqualValidator": "'{PropertyName}' must be greater than or equal to '{ComparisonValue}'.",
	"GreaterThanValidator":        "'{PropertyName}' must be greater than '{ComparisonValue}'.",
	"LengthValidator":             "'{PropertyName}' must be between {MinLength} and {MaxLength} characters. You entered {TotalLength} characters.",
	"MinimumLengthValidator":      "The length of '{PropertyName}' must be at least {MinLength} characters. You entered {TotalLength} characters.",
	"MaximumLengthValidator":      "The length of '{PropertyName}' must be {MaxLength} characters or fewer. You entered {TotalLength} characters.",
	"LessThanOrEqualValidator":    "'{PropertyName}' must be less than or equal to '{ComparisonValue}'.",
	"LessThanValidator":           "'{PropertyName}' must be less than '{ComparisonValue}'.",
	"NotEmptyValidator":           "'{PropertyName}' must not be empty.",
	"NotEqualValidator":           "'{PropertyName}' must not be equal to '{ComparisonValue}'.",
	"NotNullValidator":            "'{PropertyName}' must not be empty.",
	"PredicateValidator":          "The specified condition was not met for '{PropertyName}'.",
	"AsyncPredicateValidator":     "The specified condition was not met for '{PropertyName}'.",
	"RegularExpressionValidator":  "'{PropertyName}' is not in the correct format.",
	"EqualValidator":              "'{PropertyName}' must be equal to '{ComparisonValue}'.",
	"ExactLengthValidator":        "'{PropertyName}' must be {MaxLength} characters in length. You entered {TotalLength} characters.",
	"InclusiveBetweenValidator":   "'{PropertyName}' must be between {From} and {To}. You entered {PropertyValue}.",
	"ExclusiveBetweenValidator":   "'{PropertyName}' must be between {From} and {To} (exclusive). You entered {PropertyValue}.",
	"CreditCardValidator":         "'{PropertyName}' is not a valid credit card number.",
	"ScalePrecisionValidator":     "'{PropertyName}' must not be more than {ExpectedPrecision} digits in total, with allowance for {ExpectedScale} decimals. {Digits} digits and {ActualScale} decimals were found.",
	"EmptyValidator":              "'{PropertyName}' must be empty.",
	"NullValidator":               "'{PropertyName}' must be empty.",
	"EnumValidator":               "'{PropertyName}' has a range of values which does not include '{PropertyValue}'.",
	"Length_Simple":               "'{PropertyName}' must be between {MinLength} and {MaxLength} characters.",
	"MinimumLength_Simple":        "The length of '{PropertyName}' must be at least {MinLength} characters.",
	"MaximumLength_Simple":        "The length of '{PropertyName}' must be {MaxLength} characters or fewer.",
	"ExactLength_Simple":          "'{PropertyName}' must be {MaxLength} characters in length.",
	"InclusiveBetween_Simple":     "'{PropertyName}' must be between {From} and {To}.",
}
