package flagutil

import (
	"fmt"
	"strconv"
	"strings"
)

func (ul *UintList) String() string {
	fields := make([]string, 0, len(*ul))
	for _, value := range *ul {
		fields = append(fields, strconv.FormatUint(uint64(value), 10))
	}
	return strings.Join(fields, ",")
}

// Set replaces the list. Whitespace around each value is ignored; empty
// values are rejected.
func (ul *UintList) Set(value string) error {
	newList := make(UintList, 0)
	if strings.TrimSpace(value) == "" {
		*ul = newList
		return nil
	}
	for index, field := range strings.Split(value, ",") {
		parsed, err := strconv.ParseUint(strings.TrimSpace(field), 10, 0)
		if err != nil {
			return fmt.Errorf("bad value at position %d: %w", index, err)
		}
		newList = append(newList, uint(parsed))
	}
	*ul = newList
	return nil
}
