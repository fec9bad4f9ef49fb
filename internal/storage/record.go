package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// linesPerRecord — количество строк на одного участника в файле:
// name, username, subscriptionType, modeOfPayment, email, contactNumber.
const linesPerRecord = 6

// maxLineSize ограничивает длину одной строки файла.
const maxLineSize = 1 << 20

// encodeUser дописывает в buf шесть строк записи участника.
func encodeUser(buf *bytes.Buffer, u models.User) error {
	fields := [linesPerRecord]string{
		u.Name,
		u.Username,
		strconv.Itoa(int(u.SubscriptionType)),
		u.Billing.ModeOfPayment,
		u.Billing.Email,
		u.Billing.ContactNumber,
	}
	for i, f := range fields {
		if strings.ContainsAny(f, "\r\n") {
			return fmt.Errorf("%w: field %d contains a line break", ErrMalformedRecord, i+1)
		}
	}
	for _, f := range fields {
		buf.WriteString(f)
		buf.WriteByte('\n')
	}
	return nil
}

// decodeUsers читает поток целиком и разбирает его на группы по шесть строк.
// Неполная последняя группа считается повреждением файла.
func decodeUsers(r io.Reader) ([]models.User, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	var (
		users  []models.User
		group  [linesPerRecord]string
		n      int
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		group[n] = strings.TrimSuffix(sc.Text(), "\r")
		n++
		if n < linesPerRecord {
			continue
		}
		u, err := parseRecord(group, lineNo-linesPerRecord+1)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
		n = 0
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, lineNo+1, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if n != 0 {
		return nil, fmt.Errorf("%w: record %d is truncated: expected %d lines, got %d",
			ErrMalformedRecord, len(users)+1, linesPerRecord, n)
	}
	return users, nil
}

// parseRecord собирает участника из группы строк; first — номер первой строки группы.
func parseRecord(group [linesPerRecord]string, first int) (models.User, error) {
	tier, err := strconv.Atoi(strings.TrimSpace(group[2]))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: line %d: subscription type %q is not an integer",
			ErrMalformedRecord, first+2, group[2])
	}
	return models.User{
		Name:             group[0],
		Username:         group[1],
		SubscriptionType: models.Tier(tier),
		Billing: models.BillingInfo{
			ModeOfPayment: group[3],
			Email:         group[4],
			ContactNumber: group[5],
		},
	}, nil
}
