package swiftlogger

import "strings"

// NameCollection is a read-only list of names exposed to Swift.
// gomobile cannot return slices, so Swift walks it with Size and Get.
type NameCollection interface {
	Get(i int) string
	Size() int
	Contains(name string) bool
}

type nameList []string

func (n nameList) Get(i int) string {
	if i < 0 || i >= len(n) {
		return ""
	}

	return n[i]
}

func (n nameList) Size() int {
	return len(n)
}

// Contains matches case-insensitively, like the config parsers.
func (n nameList) Contains(name string) bool {
	for _, item := range n {
		if strings.EqualFold(item, name) {
			return true
		}
	}

	return false
}
