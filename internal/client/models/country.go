package models

// Country describes a locale accounts can be held in.
type Country struct {
	Name           string `json:"name"`
	Code           string `json:"code"`          // ISO 3166-1 alpha-2
	CurrencyCode   string `json:"currencyCode"`  // ISO 4217
	CurrencySymbol string `json:"currencySymbol"`
}

// DefaultCountry is the locale every account is held in.
var DefaultCountry = Country{
	Name:           "Ghana",
	Code:           "GH",
	CurrencyCode:   "GHS",
	CurrencySymbol: "GH₵",
}
