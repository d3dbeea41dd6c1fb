package languages

// Turkish message table.
var turkishMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' geçerli bir e-posta adresi değil.",
	"GreaterThanOrEqualValidator": "'{PropertyName}', '{ComparisonValue}' değerinden büyük veya eşit olmalı.",
	"GreaterThanValidator":        "'{PropertyName}', '{ComparisonValue}' değerinden büyük olmalı.",
	"LengthValidator":             "'{PropertyName}', {MinLength} ile {MaxLength} karakter arasında olmalı. {TotalLength} karakter girdiniz.",
	"MinimumLengthValidator":      "'{PropertyName}' en az {MinLength} karakter olmalı. {TotalLength} karakter girdiniz.",
	"MaximumLengthValidator":      "'{PropertyName}' en fazla {MaxLength} karakter olmalı. {TotalLength} karakter girdiniz.",
	"LessThanOrEqualValidator":    "'{PropertyName}', '{ComparisonValue}' değerinden küçük veya eşit olmalı.",
	"LessThanValidator":           "'{PropertyName}', '{ComparisonValue}' değerinden küçük olmalı.",
	"NotEmptyValidator":           "'{PropertyName}' boş olmamalı.",
	"NotEqualValidator":           "'{PropertyName}', '{ComparisonValue}' değerine eşit olmamalı.",
	"NotNullValidator":            "'{PropertyName}' boş olmamalı.",
	"PredicateValidator":          "'{PropertyName}' için belirtilen koşul sağlanmadı.",
	"AsyncPredicateValidator":     "'{PropertyName}' için belirtilen koşul sağlanmadı.",
	"RegularExpressionValidator":  "'{PropertyName}' doğru biçimde değil.",
	"EqualValidator":              "'{PropertyName}', '{ComparisonValue}' değerine eşit olmalı.",
	"ExactLengthValidator":        "'{PropertyName}' tam olarak {MaxLength} karakter olmalı. {TotalLength} karakter girdiniz.",
	"InclusiveBetweenValidator":   "'{PropertyName}', {From} ile {To} arasında olmalı. {PropertyValue} girdiniz.",
	"ExclusiveBetweenValidator":   "'{PropertyName}', {From} ile {To} arasında olmalı (sınırlar hariç). {PropertyValue} girdiniz.",
	"CreditCardValidator":         "'{PropertyName}' geçerli bir kredi kartı numarası değil.",
	"ScalePrecisionValidator":     "'{PropertyName}' toplamda {ExpectedPrecision} basamaktan fazla olmamalı, {ExpectedScale} ondalık basamağa izin verilir. {Digits} basamak ve {ActualScale} ondalık basamak bulundu.",
	"EmptyValidator":              "'{PropertyName}' boş olmalı.",
	"NullValidator":               "'{PropertyName}' boş olmalı.",
	"EnumValidator":               "'{PropertyName}', '{PropertyValue}' değerini içermeyen bir değer aralığına sahip.",
	"Length_Simple":               "'{PropertyName}', {MinLength} ile {MaxLength} karakter arasında olmalı.",
	"MinimumLength_Simple":        "'{PropertyName}' en az {MinLength} karakter olmalı.",
	"MaximumLength_Simple":        "'{PropertyName}' en fazla {MaxLength} karakter olmalı.",
	"ExactLength_Simple":          "'{PropertyName}' tam olarak {MaxLength} karakter olmalı.",
	"InclusiveBetween_Simple":     "'{PropertyName}', {From} ile {To} arasında olmalı.",
}
