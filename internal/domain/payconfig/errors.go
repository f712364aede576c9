package payconfig

import "errors"

var (
	ErrTierNotFound = errors.New("pay rate tier not found")
	ErrRuleNotFound = errors.New("pay rule not found")
)
