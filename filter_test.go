package logwatch

import (
	"regexp"
	"testing"

	. "github.com/onsi/gomega"
)

func TestFilterLinesKeepsMatchesInOrder(t *testing.T) {
	g := NewGomegaWithT(t)

	in := make(chan string, 6)
	for _, line := range []string{
		"ERROR boom",
		"all fine",
		"late ERROR here",
		"panic: oops",
		"nothing",
		"ERROR again",
	} {
		in <- line
	}
	close(in)

	out := FilterLines(regexp.MustCompile(`ERROR|panic`), in)

	var got []string
	for line := range out {
		got = append(got, line)
	}
	g.Expect(got).To(Equal([]string{
		"ERROR boom",
		"late ERROR here",
		"panic: oops",
		"ERROR again",
	}))
}

func TestFilterLinesMatchesUnanchored(t *testing.T) {
	g := NewGomegaWithT(t)

	in := make(chan string, 2)
	in <- "prefix ERROR suffix"
	in <- "error lowercase"
	close(in)

	out := FilterLines(regexp.MustCompile(`ERROR`), in)

	g.Expect(<-out).To(Equal("prefix ERROR suffix"))
	g.Eventually(out, "1s", "1ms").Should(BeClosed())
}
