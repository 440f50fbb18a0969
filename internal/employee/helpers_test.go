package employee_test

import (
	"strconv"
	"strings"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}
