package languages

// Simplified Chinese message table. Registered as "zh-CN".
var simplifiedChineseMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' 不是有效的电子邮件地址。",
	"GreaterThanOrEqualValidator": "'{PropertyName}' 必须大于或等于 '{ComparisonValue}'。",
	"GreaterThanValidator":        "'{PropertyName}' 必须大于 '{ComparisonValue}'。",
	"LengthValidator":             "'{PropertyName}' 的长度必须在 {MinLength} 到 {MaxLength} 个字符之间。您输入了 {TotalLength} 个字符。",
	"MinimumLengthValidator":      "'{PropertyName}' 的长度至少为 {MinLength} 个字符。您输入了 {TotalLength} 个字符。",
	"MaximumLengthValidator":      "'{PropertyName}' 的长度不能超过 {MaxLength} 个字符。您输入了 {TotalLength} 个字符。",
	"LessThanOrEqualValidator":    "'{PropertyName}' 必须小于或等于 '{ComparisonValue}'。",
	"LessThanValidator":           "'{PropertyName}' 必须小于 '{ComparisonValue}'。",
	"NotEmptyValidator":           "'{PropertyName}' 不能为空。",
	"NotEqualValidator":           "'{PropertyName}' 不能等于 '{ComparisonValue}'。",
	"NotNullValidator":            "'{PropertyName}' 不能为空。",
	"PredicateValidator":          "'{PropertyName}' 不满足指定的条件。",
	"AsyncPredicateValidator":     "'{PropertyName}' 不满足指定的条件。",
	"RegularExpressionValidator":  "'{PropertyName}' 的格式不正确。",
	"EqualValidator":              "'{PropertyName}' 必须等于 '{ComparisonValue}'。",
	"ExactLengthValidator":        "'{PropertyName}' 的长度必须为 {MaxLength} 个字符。您输入了 {TotalLength} 个字符。",
	"InclusiveBetweenValidator":   "'{PropertyName}' 必须在 {From} 和 {To} 之间。您输入了 {PropertyValue}。",
	"ExclusiveBetweenValidator":   "'{PropertyName}' 必须在 {From} 和 {To} 之间（不含边界）。您输入了 {PropertyValue}。",
	"CreditCardValidator":         "'{PropertyName}' 不是有效的信用卡号。",
	"ScalePrecisionValidator":     "'{PropertyName}' 总位数不能超过 {ExpectedPrecision} 位，其中允许 {ExpectedScale} 位小数。发现 {Digits} 位数字和 {ActualScale} 位小数。",
	"EmptyValidator":              "'{PropertyName}' 必须为空。",
	"NullValidator":               "'{PropertyName}' 必须为空。",
	"EnumValidator":               "'{PropertyName}' 的取值范围不包含 '{PropertyValue}'。",
	"Length_Simple":               "'{PropertyName}' 的长度必须在 {MinLength} 到 {MaxLength} 个字符之间。",
	"MinimumLength_Simple":        "'{PropertyName}' 的长度至少为 {MinLength} 个字符。",
	"MaximumLength_Simple":        "'{PropertyName}' 的长度不能超过 {MaxLength} 个字符。",
	"ExactLength_Simple":          "'{PropertyName}' 的长度必须为 {MaxLength} 个字符。",
	"InclusiveBetween_Simple":     "'{PropertyName}' 必须在 {From} 和 {To} 之间。",
}
