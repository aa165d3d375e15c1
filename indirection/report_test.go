package indirection

import (
	"bytes"
	"errors"
	"io/ioutil"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addrRe = regexp.MustCompile(`0x[0-9a-f]+`)

func normalize(s string) string {
	s = strings.Replace(s, "\r\n", "\n", -1)
	return strings.TrimSpace(addrRe.ReplaceAllString(s, "0xADDR"))
}

func TestRunGolden(t *testing.T) {
	for _, lang := range []Lang{English, Chinese} {
		t.Run(lang.String(), func(t *testing.T) {
			expect, err := ioutil.ReadFile("testdata/" + lang.String() + ".golden")
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Run(&buf, Options{Lang: lang}))

			assert.Equal(t, normalize(string(expect)), normalize(buf.String()))
		})
	}
}

var (
	addrLine   = regexp.MustCompile(`&a: (0x[0-9a-f]+), &b: (0x[0-9a-f]+), &c: (0x[0-9a-f]+)`)
	valLine    = regexp.MustCompile(`a: (\d+), b: (0x[0-9a-f]+), c: (0x[0-9a-f]+)`)
	derefLine  = regexp.MustCompile(`\*b: (\d+), \*c: (0x[0-9a-f]+)`)
	deref2Line = regexp.MustCompile(`\*\*c: (\d+)`)
)

func TestReportRelations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, Options{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)

	addrs := addrLine.FindStringSubmatch(lines[0])
	vals := valLine.FindStringSubmatch(lines[1])
	derefs := derefLine.FindStringSubmatch(lines[2])
	deref2 := deref2Line.FindStringSubmatch(lines[3])
	require.NotNil(t, addrs)
	require.NotNil(t, vals)
	require.NotNil(t, derefs)
	require.NotNil(t, deref2)

	assert.Equal(t, "3", vals[1])
	assert.Equal(t, addrs[1], vals[2], "b holds &a")
	assert.Equal(t, addrs[2], vals[3], "c holds &b")
	assert.Equal(t, "3", derefs[1])
	assert.Equal(t, vals[2], derefs[2], "*c is b")
	assert.Equal(t, "3", deref2[1])
}

func TestReportColor(t *testing.T) {
	obs := Observe(NewChain(Value))

	var plain, colored bytes.Buffer
	require.NoError(t, Report(&plain, obs, Options{Color: false}))
	require.NoError(t, Report(&colored, obs, Options{Color: true}))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")

	// notes are never colored
	assert.Contains(t, colored.String(), "\nb holds the address of a, so *b yields the value of a\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestReportWriteError(t *testing.T) {
	err := Run(failingWriter{}, Options{})
	assert.EqualError(t, err, "writing report: closed")
}
