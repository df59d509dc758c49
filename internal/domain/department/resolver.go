package department

import (
	"errors"
	"strings"
)

// InstitutionPrefix is the fixed leading segment of every USN issued by the college.
const InstitutionPrefix = "4HG"

const codeLen = 2

var ErrNoDepartment = errors.New("no department to resolve")
var ErrInvalidUSN = errors.New("invalid usn")

// codeByName maps a department's display name to the code segment embedded in its
// students' USNs. Names without an entry resolve to themselves.
var codeByName = map[string]string{
	"CSE": "CS",
	"EEE": "EE",
	"ECE": "EC",
	"CVE": "CV",
	"ME":  "ME",
}

// USN is the parsed form of a student identifier:
// institution prefix, two-digit enrollment year, department code, then the serial.
type USN struct {
	Year     int
	DeptCode string
	Serial   string
}

func ResolveCode(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNoDepartment
	}
	if code, ok := codeByName[strings.ToUpper(name)]; ok {
		return code, nil
	}
	return strings.ToUpper(name), nil
}

func ParseUSN(raw string) (USN, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(InstitutionPrefix)+2+codeLen {
		return USN{}, ErrInvalidUSN
	}
	if !strings.EqualFold(raw[:len(InstitutionPrefix)], InstitutionPrefix) {
		return USN{}, ErrInvalidUSN
	}

	rest := raw[len(InstitutionPrefix):]
	year := 0
	for i := 0; i < 2; i++ {
		d := rest[i]
		if d < '0' || d > '9' {
			return USN{}, ErrInvalidUSN
		}
		year = year*10 + int(d-'0')
	}

	code := rest[2 : 2+codeLen]
	for i := 0; i < codeLen; i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return USN{}, ErrInvalidUSN
		}
	}

	return USN{
		Year:     year,
		DeptCode: strings.ToUpper(code),
		Serial:   rest[2+codeLen:],
	}, nil
}

// Matches reports whether the USN's department-code segment equals code.
// The code must sit in the fixed window after the year digits; an identifier
// that merely contains the code elsewhere does not match.
func Matches(usn, code string) bool {
	if len(code) != codeLen {
		return false
	}
	parsed, err := ParseUSN(usn)
	if err != nil {
		return false
	}
	return parsed.DeptCode == strings.ToUpper(code)
}
