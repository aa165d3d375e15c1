package indirection

import (
	"fmt"
	"strings"
)

type Lang int

const (
	English Lang = iota
	Chinese
)

func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en", "english":
		return English, nil
	case "zh", "cn", "chinese":
		return Chinese, nil
	}
	return English, fmt.Errorf("unknown language: %q", s)
}

func (l Lang) String() string {
	if l == Chinese {
		return "zh"
	}
	return "en"
}

type catalog struct {
	addresses  string
	values     string
	deref      string
	derefDeref string
	notes      [2]string
}

var catalogs = map[Lang]catalog{
	English: {
		addresses:  "addresses of a, b, c",
		values:     "values of a, b, c",
		deref:      "b and c are pointers, dereferencing reads what they point at",
		derefDeref: "c is a pointer to a pointer, it can be dereferenced twice",
		notes: [2]string{
			"b holds the address of a, so *b yields the value of a",
			"c holds the address of b, so *c yields the value of b, and **c yields *b, which is the value of a",
		},
	},
	Chinese: {
		addresses:  "a,b,c三个变量的地址",
		values:     "a,b,c三个变量的值",
		deref:      "b,c是指针，可以取出值所代表的地址中的值",
		derefDeref: "c是二级指针，可以二级连跳",
		notes: [2]string{
			"b中的值是a的地址，*b可以返回a的值",
			"c中的值是b的地址，*c可以返回b的值；**c可以返回*b的值，也就是a的值",
		},
	},
}
