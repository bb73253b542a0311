package invoice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// NextInvoiceNumber derives the next sequential invoice number from the set
// of existing numbers. It scans for the "INV-" prefix, takes the highest
// numeric suffix and increments it. Numbers without the prefix and malformed
// suffixes count as 0, so a corrupt record can never block numbering.
func NextInvoiceNumber(existing []string) string {
	max := 0

	for _, number := range existing {
		suffix, ok := strings.CutPrefix(number, entity.InvoiceNumberPrefix)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}

		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%04d", entity.InvoiceNumberPrefix, max+1)
}
