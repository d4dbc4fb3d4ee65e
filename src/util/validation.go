package util

import (
	"regexp"
)

var supportedCurrencies = map[string]bool{
	"RON": true,
	"EUR": true,
	"USD": true,
	"GBP": true,
}

var accountTypes = map[string]bool{
	"CHECKING": true,
	"SAVINGS":  true,
	"CREDIT":   true,
	"CASH":     true,
}

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateName(name string) bool {
	return len(name) >= 2
}

func ValidatePassword(password string) bool {
	return len(password) >= 6
}

func ValidateCurrency(currency string) bool {
	return supportedCurrencies[currency]
}

func ValidateAccountType(accountType string) bool {
	return accountTypes[accountType]
}

func ValidateTransactionType(txType string) bool {
	return txType == "INCOME" || txType == "EXPENSE"
}
