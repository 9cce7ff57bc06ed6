package card

import (
	"strings"
	"unicode"
)

const (
	whatsAppBase = "https://wa.me/"
	telegramBase = "https://t.me/"
)

// FormatPhoneDisplay renders French mobile numbers as "+33 6 12 34 56 78".
// Inputs that are not "+33" followed by exactly nine digits once whitespace is
// removed are returned unchanged. The stored value is never affected.
func FormatPhoneDisplay(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
	if len(cleaned) != 12 || !strings.HasPrefix(cleaned, "+33") || !allDigits(cleaned[3:]) {
		return phone
	}
	d := cleaned[3:]
	var b strings.Builder
	b.Grow(len(cleaned) + 5)
	b.WriteString("+33 ")
	b.WriteString(d[0:1])
	for i := 1; i < len(d); i += 2 {
		b.WriteByte(' ')
		b.WriteString(d[i : i+2])
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// WhatsAppLink builds a wa.me deep link from a phone number in any notation.
func WhatsAppLink(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return whatsAppBase + digits
}

// TelegramLink builds a t.me deep link from a handle with or without "@".
func TelegramLink(handle string) string {
	return telegramBase + strings.TrimPrefix(handle, "@")
}

// TrimDisplayURL drops the scheme and a following "www." for display.
func TrimDisplayURL(url string) string {
	rest, ok := strings.CutPrefix(url, "https://")
	if !ok {
		rest, ok = strings.CutPrefix(url, "http://")
	}
	if !ok {
		return url
	}
	return strings.TrimPrefix(rest, "www.")
}

// Initials returns the upper-cased first letters of the first and last name,
// shown in place of a missing avatar.
func Initials(c Card) string {
	return firstLetter(c.FirstName) + firstLetter(c.LastName)
}

func firstLetter(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}

// Subtitle joins title and company with a middle dot when both are present.
func Subtitle(c Card) string {
	switch {
	case c.Title != "" && c.Company != "":
		return c.Title + " · " + c.Company
	case c.Title != "":
		return c.Title
	default:
		return c.Company
	}
}

// DisplayName returns "First Last" without stray spaces.
func DisplayName(c Card) string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
