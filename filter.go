package logwatch

import "regexp"

// FilterLines forwards the lines on which pattern matches somewhere,
// preserving order. The returned channel closes when in closes.
func FilterLines(pattern *regexp.Regexp, in <-chan string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for line := range in {
			if pattern.MatchString(line) {
				out <- line
			}
		}
	}()
	return out
}
