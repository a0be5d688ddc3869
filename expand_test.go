package logwatch

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

func TestExpandPathsVisitsFilesAndDirectories(t *testing.T) {
	g := NewGomegaWithT(t)
	fs := afero.NewMemMapFs()

	afero.WriteFile(fs, "/logs/a.log", []byte("a"), 0o644)
	afero.WriteFile(fs, "/logs/sub/b.log", []byte("b"), 0o644)
	afero.WriteFile(fs, "/logs/sub/deep/c.txt", []byte("c"), 0o644)
	afero.WriteFile(fs, "/single.log", []byte("s"), 0o644)

	var got []string
	expandPaths(fs, []string{"/logs", "/single.log"}, func(p string) {
		got = append(got, p)
	})

	g.Expect(got).To(ConsistOf(
		"/logs/a.log",
		"/logs/sub/b.log",
		"/logs/sub/deep/c.txt",
		"/single.log",
	))
}

func TestExpandPathsSkipsMissingRoots(t *testing.T) {
	g := NewGomegaWithT(t)
	fs := afero.NewMemMapFs()

	afero.WriteFile(fs, "/logs/a.log", []byte("a"), 0o644)

	var got []string
	expandPaths(fs, []string{"/nope", "/logs", "/also/missing"}, func(p string) {
		got = append(got, p)
	})

	g.Expect(got).To(Equal([]string{"/logs/a.log"}))
}

func TestExpandPathsVisitsFilesBeforeSubdirectories(t *testing.T) {
	g := NewGomegaWithT(t)
	fs := afero.NewMemMapFs()

	afero.WriteFile(fs, "/logs/aaa/inner.log", []byte("i"), 0o644)
	afero.WriteFile(fs, "/logs/zzz.log", []byte("z"), 0o644)

	var got []string
	expandPaths(fs, []string{"/logs"}, func(p string) {
		got = append(got, p)
	})

	g.Expect(got).To(Equal([]string{"/logs/zzz.log", "/logs/aaa/inner.log"}))
}
