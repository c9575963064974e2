// Package validators holds the pure field predicates that gate writes before
// they reach persistence. The first failing validator aborts the request.
package validators

import (
	"errors"
	"net/mail"
	"net/url"
	"time"
)

var (
	ErrBadEmail = errors.New("invalid email address")
	ErrBadDate  = errors.New("invalid date of birth")
	ErrUnderage = errors.New("user is not of legal age")
	ErrBadPIN   = errors.New("pin must be a 6-digit number")
	ErrBadURL   = errors.New("invalid video url")
)

const dateLayout = "2006-01-02"

func Email(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return ErrBadEmail
	}
	return nil
}

// LegalAge checks that the birth date ("2006-01-02") puts the user at 18 or
// older today. Calendar-aware: the year delta is decremented when today's
// month/day precedes the birthday.
func LegalAge(dateBirth string, now time.Time) error {
	birth, err := time.Parse(dateLayout, dateBirth)
	if err != nil {
		return ErrBadDate
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 18 {
		return ErrUnderage
	}
	return nil
}

func SixDigitPIN(pin int) error {
	if pin < 100000 || pin > 999999 {
		return ErrBadPIN
	}
	return nil
}

func VideoURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrBadURL
	}
	return nil
}
