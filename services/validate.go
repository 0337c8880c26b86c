package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Bossnapi119/pakawinasiayam/entity"
)

const specialRequestMax = 100

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s\-']+$`)
	phoneRe = regexp.MustCompile(`^(01|03)\d{7,10}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitRe = regexp.MustCompile(`\D`)
)

// ValidationError is recoverable client input trouble; no side effects were
// performed when one is returned.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// CustomerDetails is the checkout form as submitted by the customer.
type CustomerDetails struct {
	Name           string `json:"customerName"`
	Phone          string `json:"customerPhone"`
	Email          string `json:"customerEmail"`
	TableNumber    string `json:"tableNumber"`
	SpecialRequest string `json:"specialRequest"`
}

// NormalizePhone strips every non-digit before validation, so "012-345 6789"
// passes the same as "0123456789".
func NormalizePhone(phone string) string {
	return digitRe.ReplaceAllString(phone, "")
}

// ValidateCustomer is the submission gate. Order of checks matches the
// checkout flow: name, phone, email, table, special request.
func ValidateCustomer(d *CustomerDetails, orderType entity.OrderType) *ValidationError {
	if !orderType.Valid() {
		return &ValidationError{Field: "orderType", Msg: "must be dine-in or take-away"}
	}

	name := strings.TrimSpace(d.Name)
	if name == "" || !nameRe.MatchString(name) {
		return &ValidationError{Field: "customerName", Msg: "use letters, spaces, hyphens and apostrophes only"}
	}

	phone := NormalizePhone(d.Phone)
	if !phoneRe.MatchString(phone) {
		return &ValidationError{Field: "customerPhone", Msg: "must start with 01 or 03 and be 9-12 digits"}
	}

	if d.Email != "" && !emailRe.MatchString(d.Email) {
		return &ValidationError{Field: "customerEmail", Msg: "invalid email address"}
	}

	if orderType == entity.OrderTypeDineIn && strings.TrimSpace(d.TableNumber) == "" {
		return &ValidationError{Field: "tableNumber", Msg: "required for dine-in orders"}
	}

	// Enforced here, not just in the input widget: over-long requests are
	// rejected rather than silently truncated.
	if utf8.RuneCountInString(d.SpecialRequest) > specialRequestMax {
		return &ValidationError{Field: "specialRequest", Msg: fmt.Sprintf("at most %d characters", specialRequestMax)}
	}

	return nil
}
