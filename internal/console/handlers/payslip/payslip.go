// Package payslip печатает сводку по участнику после входа.
package payslip

import (
	"fmt"
	"io"
	"strings"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Print выводит username, имя, название абонемента и платёжные данные участника.
func Print(w io.Writer, u models.User) error {
	const op = "payslip.Print"

	var b strings.Builder
	b.WriteString("--- PRINT PAYSLIP ---\n")
	fmt.Fprintf(&b, "Username: %s\n", u.Username)
	fmt.Fprintf(&b, "Customer's Name: %s\n", u.Name)
	b.WriteString("--- Subscription Type ---\n")
	fmt.Fprintf(&b, "Type: %s\n", u.SubscriptionType.Label())
	b.WriteString("--- Billing Information ---\n")
	fmt.Fprintf(&b, "Mode of Payment: %s\n", u.Billing.ModeOfPayment)
	fmt.Fprintf(&b, "Email Address: %s\n", u.Billing.Email)
	fmt.Fprintf(&b, "Contact Number: %s\n", u.Billing.ContactNumber)
	b.WriteString("--- LOG OUT USER ---\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
