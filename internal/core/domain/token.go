package domain

// MetaToken is a token listed by a currency plugin.
type MetaToken struct {
	CurrencyCode    CurrencyCode
	CurrencyName    string
	Denominations   []Denomination
	ContractAddress string
}

// CustomToken is a token added by the user at account level.
type CustomToken struct {
	MetaToken
	Multiplier string
	// Visible is nil when never set, which counts as visible.
	Visible *bool
}

// IsVisible returns false only if the token was explicitly hidden.
func (t CustomToken) IsVisible() bool {
	return t.Visible == nil || *t.Visible
}

// MergeTokens returns the plugin tokens followed by the custom tokens whose
// currency code is not already listed. Plugin tokens take precedence and the
// order of both lists is preserved.
func MergeTokens(preferred []MetaToken, custom []CustomToken) []MetaToken {
	return mergeTokens(preferred, custom, false)
}

// MergeTokensRemoveInvisible is like MergeTokens but skips the custom tokens
// explicitly marked as not visible.
func MergeTokensRemoveInvisible(
	preferred []MetaToken, custom []CustomToken,
) []MetaToken {
	return mergeTokens(preferred, custom, true)
}

func mergeTokens(
	preferred []MetaToken, custom []CustomToken, skipInvisible bool,
) []MetaToken {
	merged := make([]MetaToken, 0, len(preferred)+len(custom))
	merged = append(merged, preferred...)

	listed := make(map[CurrencyCode]struct{}, len(preferred))
	for _, t := range preferred {
		listed[t.CurrencyCode] = struct{}{}
	}

	for _, t := range custom {
		if skipInvisible && !t.IsVisible() {
			continue
		}
		if _, ok := listed[t.CurrencyCode]; ok {
			continue
		}
		merged = append(merged, t.MetaToken)
		listed[t.CurrencyCode] = struct{}{}
	}
	return merged
}
