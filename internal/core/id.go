package core

import (
	"fmt"
	"strconv"
	"strings"
)

const idPrefix = "EXP"

// NextID generates a fresh expense id of the form EXP-YYYYMMDD-NNNN for
// the given date. It scans the current record set for the day's highest
// sequence number and increments it, so ids stay unique even when several
// expenses are created on the same day. Pure function: no counter state
// survives between calls.
func NextID(date Date, records map[string]Expense) string {
	prefix := fmt.Sprintf("%s-%s-", idPrefix, date.Format("20060102"))
	highest := 0
	for id := range records {
		seq, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(seq)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, highest+1)
}
