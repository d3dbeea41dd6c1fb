package languages

// Japanese message table.
var japaneseMessages = map[string]string{
	"EmailValidator":              "'{PropertyName}' は有効なメールアドレスではありません。",
	"GreaterThanOrEqualValidator": "'{PropertyName}' は '{ComparisonValue}' 以上でなければなりません。",
	"GreaterThanValidator":        "'{PropertyName}' は '{ComparisonValue}' より大きくなければなりません。",
	"LengthValidator":             "'{PropertyName}' は {MinLength} から {MaxLength} 文字の間でなければなりません。{TotalLength} 文字入力されています。",
	"MinimumLengthValidator":      "'{PropertyName}' は {MinLength} 文字以上でなければなりません。{TotalLength} 文字入力されています。",
	"MaximumLengthValidator":      "'{PropertyName}' は {MaxLength} 文字以下でなければなりません。{TotalLength} 文字入力されています。",
	"LessThanOrEqualValidator":    "'{PropertyName}' は '{ComparisonValue}' 以下でなければなりません。",
	"LessThanValidator":           "'{PropertyName}' は '{ComparisonValue}' より小さくなければなりません。",
	"NotEmptyValidator":           "'{PropertyName}' は空であってはなりません。",
	"NotEqualValidator":           "'{PropertyName}' は '{ComparisonValue}' と等しくてはなりません。",
	"NotNullValidator":            "'{PropertyName}' は空であってはなりません。",
	"PredicateValidator":          "'{PropertyName}' は指定された条件を満たしていません。",
	"AsyncPredicateValidator":     "'{PropertyName}' は指定された条件を満たしていません。",
	"RegularExpressionValidator":  "'{PropertyName}' の形式が正しくありません。",
	"EqualValidator":              "'{PropertyName}' は '{ComparisonValue}' と等しくなければなりません。",
	"ExactLengthValidator":        "'{PropertyName}' はちょうど {MaxLength} 文字でなければなりません。{TotalLength} 文字入力されています。",
	"InclusiveBetweenValidator":   "'{PropertyName}' は {From} から {To} の間でなければなりません。{PropertyValue} が入力されています。",
	"ExclusiveBetweenValidator":   "'{PropertyName}' は {From} から {To} の間でなければなりません（両端を除く）。{PropertyValue} が入力されています。",
	"CreditCardValidator":         "'{PropertyName}' は有効なクレジットカード番号ではありません。",
	"ScalePrecisionValidator":     "'{PropertyName}' は合計 {ExpectedPrecision} 桁以内で、小数は {ExpectedScale} 桁まで許可されます。{Digits} 桁と小数 {ActualScale} 桁が見つかりました。",
	"EmptyValidator":              "'{PropertyName}' は空でなければなりません。",
	"NullValidator":               "'{PropertyName}' は空でなければなりません。",
	"EnumValidator":               "'{PropertyName}' の値の範囲に '{PropertyValue}' は含まれていません。",
	"Length_Simple":               "'{PropertyName}' は {MinLength} から {MaxLength} 文字の間でなければなりません。",
	"MinimumLength_Simple":        "'{PropertyName}' は {MinLength} 文字以上でなければなりません。",
	"MaximumLength_Simple":        "'{PropertyName}' は {MaxLength} 文字以下でなければなりません。",
	"ExactLength_Simple":          "'{PropertyName}' はちょうど {MaxLength} 文字でなければなりません。",
	"InclusiveBetween_Simple":     "'{PropertyName}' は {From} から {To} の間でなければなりません。",
}
