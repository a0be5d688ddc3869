package main

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

func TestResolveConfigUsesDefaults(t *testing.T) {
	g := NewGomegaWithT(t)
	cmd := newRootCommand()

	cfg, err := resolveConfig(cmd, []string{"ERROR"}, afero.NewMemMapFs())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg.Paths).To(Equal([]string{"."}))
	g.Expect(cfg.Words).To(Equal([]string{"ERROR"}))
	g.Expect(cfg.IntervalSeconds).To(Equal(1))
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	g := NewGomegaWithT(t)
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/cfg.yaml", []byte(`
paths: ["/var/log"]
words: ["panic"]
interval_seconds: 5
`), 0o644)

	cmd := newRootCommand()
	g.Expect(cmd.Flags().Set("config", "/cfg.yaml")).To(Succeed())
	g.Expect(cmd.Flags().Set("interval", "2")).To(Succeed())

	cfg, err := resolveConfig(cmd, nil, fs)
	g.Expect(err).ToNot(HaveOccurred())
	// File values survive where no flag was set.
	g.Expect(cfg.Paths).To(Equal([]string{"/var/log"}))
	g.Expect(cfg.Words).To(Equal([]string{"panic"}))
	// The set flag wins over the file.
	g.Expect(cfg.IntervalSeconds).To(Equal(2))
}

func TestResolveConfigArgsReplaceConfiguredWords(t *testing.T) {
	g := NewGomegaWithT(t)
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/cfg.yaml", []byte(`
words: ["panic"]
line_pattern: "configured"
`), 0o644)

	cmd := newRootCommand()
	g.Expect(cmd.Flags().Set("config", "/cfg.yaml")).To(Succeed())

	cfg, err := resolveConfig(cmd, []string{"ERROR", "fatal"}, fs)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg.Words).To(Equal([]string{"ERROR", "fatal"}))
	g.Expect(cfg.LinePattern).To(BeEmpty())
}

func TestResolveConfigReportsMissingFile(t *testing.T) {
	g := NewGomegaWithT(t)
	cmd := newRootCommand()
	g.Expect(cmd.Flags().Set("config", "/nope.yaml")).To(Succeed())

	_, err := resolveConfig(cmd, []string{"ERROR"}, afero.NewMemMapFs())
	g.Expect(err).To(HaveOccurred())
}

func TestCompileFailsWithoutWords(t *testing.T) {
	g := NewGomegaWithT(t)
	cmd := newRootCommand()

	cfg, err := resolveConfig(cmd, nil, afero.NewMemMapFs())
	g.Expect(err).ToNot(HaveOccurred())
	_, _, err = cfg.Compile()
	g.Expect(err).To(MatchError(ContainSubstring("no words")))
}
