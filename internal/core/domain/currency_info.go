package domain

// CurrencyInfo describes a currency supported by a plugin.
type CurrencyInfo struct {
	CurrencyCode  CurrencyCode
	CurrencyName  string
	Denominations []Denomination
	MetaTokens    []MetaToken
}

// GetCurrencyInfo returns the info of the plugin handling the given code.
// Parent currencies are looked up before meta tokens, so they take
// precedence.
func GetCurrencyInfo(infos []CurrencyInfo, code CurrencyCode) (CurrencyInfo, bool) {
	for _, info := range infos {
		if _, ok := denominationByName(info.Denominations, code); ok {
			return info, true
		}
	}
	for _, info := range infos {
		for _, token := range info.MetaTokens {
			if _, ok := denominationByName(token.Denominations, code); ok {
				return info, true
			}
		}
	}
	return CurrencyInfo{}, false
}
