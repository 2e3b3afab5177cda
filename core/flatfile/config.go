package flatfile

// Config holds the delimiter settings for the flat-file layer.
type Config struct {
	// Delimiter is the single character separating columns.
	Delimiter string `mapstructure:"delimiter" default:","`
	// PairDelimiter separates a product ID from its quantity within one
	// productId:quantity entry.
	PairDelimiter string `mapstructure:"pair_delimiter" default:":"`
	// PairSeparator separates repeated productId:quantity entries within
	// one order field.
	PairSeparator string `mapstructure:"pair_separator" default:";"`
}

// DelimiterRune returns the column delimiter as a rune, falling back to a
// comma when the configured value is empty.
func (c Config) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	return []rune(c.Delimiter)[0]
}
