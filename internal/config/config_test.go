package config

import (
	"os"
	"path/filepath"
	"runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/conic/conic"
)

// setEnv sets key for the running test only.
func setEnv(key, value string) {
	prev, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

// writeConfig writes a YAML config file into a fresh temp dir.
func writeConfig(body string) string {
	dir, err := os.MkdirTemp("", "conic-config-")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(os.RemoveAll, dir)

	path := filepath.Join(dir, "conic.yaml")
	Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())

	return path
}

func load(args ...string) (*Config, error) {
	return Load(NewFlagSet("conicclassify"), args)
}

var _ = Describe("Load", func() {
	Context("with no flags, env or file", func() {
		It("should return the defaults", func() {
			cfg, err := load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Epsilon).To(Equal(conic.DefaultEpsilon))
			Expect(cfg.Boundary).To(Equal(conic.BoundaryBanded))
			Expect(cfg.Workers).To(Equal(runtime.GOMAXPROCS(0)))
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.Input).To(BeEmpty())
			Expect(cfg.Coefficients).To(Equal([6]float64{}))
		})
	})

	Context("with flags", func() {
		It("should read coefficients and options", func() {
			cfg, err := load("--a=2", "--b=-3", "--c=4", "--d=6", "--e=-3", "--f=-4",
				"--epsilon=0.01", "--boundary=legacy", "--workers=3", "--log-level=debug")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Coefficients).To(Equal([6]float64{2, -3, 4, 6, -3, -4}))
			Expect(cfg.Epsilon).To(Equal(0.01))
			Expect(cfg.Boundary).To(Equal(conic.BoundaryLegacy))
			Expect(cfg.Workers).To(Equal(3))
			Expect(cfg.LogLevel).To(Equal("debug"))
		})

		It("should accept the input shorthand", func() {
			cfg, err := load("-i", "batch.yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Input).To(Equal("batch.yaml"))
		})

		It("should reject unknown flags", func() {
			_, err := load("--g=1")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("with environment variables", func() {
		It("should override defaults", func() {
			setEnv("CONIC_EPSILON", "0.5")
			setEnv("CONIC_LOG_LEVEL", "trace")
			setEnv("CONIC_A", "1")

			cfg, err := load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Epsilon).To(Equal(0.5))
			Expect(cfg.LogLevel).To(Equal("trace"))
			Expect(cfg.Coefficients[0]).To(Equal(1.0))
		})

		It("should lose to flags", func() {
			setEnv("CONIC_WORKERS", "7")

			cfg, err := load("--workers=2")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Workers).To(Equal(2))
		})
	})

	Context("with a config file", func() {
		It("should sit between env and defaults", func() {
			path := writeConfig("epsilon: 0.25\nboundary: legacy\nworkers: 5\n")
			setEnv("CONIC_WORKERS", "6")

			cfg, err := load("--config", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Epsilon).To(Equal(0.25))
			Expect(cfg.Boundary).To(Equal(conic.BoundaryLegacy))
			Expect(cfg.Workers).To(Equal(6))
		})

		It("should fail on a missing file", func() {
			_, err := load("--config", filepath.Join(os.TempDir(), "conic-does-not-exist.yaml"))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("with invalid values", func() {
		DescribeTable("should wrap ErrInvalidConfig",
			func(arg string) {
				_, err := load(arg)
				Expect(err).To(MatchError(ErrInvalidConfig))
			},
			Entry("negative epsilon", "--epsilon=-1"),
			Entry("unknown boundary", "--boundary=strict"),
			Entry("zero workers", "--workers=0"),
			Entry("unknown log level", "--log-level=loud"),
		)

		It("should reject non-finite coefficients for a single section", func() {
			setEnv("CONIC_D", "NaN")

			_, err := load()
			Expect(err).To(MatchError(ErrInvalidConfig))
			Expect(err).To(MatchError(conic.ErrNonFinite))
		})

		It("should ignore coefficients when an input file is given", func() {
			setEnv("CONIC_D", "NaN")

			_, err := load("--input", "batch.yaml")
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("Config", func() {
	It("should build the section with its options", func() {
		cfg := &Config{
			Epsilon:      0.25,
			Boundary:     conic.BoundaryLegacy,
			Workers:      1,
			LogLevel:     "info",
			Coefficients: [6]float64{1, 0, 0, 0, -1, 0},
		}
		Expect(cfg.Validate()).To(Succeed())

		s := cfg.Section()
		Expect(s.Options().Epsilon()).To(Equal(0.25))
		Expect(s.Classify()).To(Equal(conic.Classification(conic.Hyperbola)))
	})
})
