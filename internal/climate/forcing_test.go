package climate_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/climsim/internal/climate"
)

var _ = Describe("Forcing", func() {
	var p climate.Params

	BeforeEach(func() {
		p = climate.DefaultParams()
	})

	Describe("RampForcing", func() {
		It("starts at zero and reaches the plateau exactly", func() {
			Expect(p.RampForcing(0)).To(Equal(0.0))
			Expect(p.RampForcing(200)).To(Equal(p.Fmax))
		})

		It("is non-decreasing over the ramp", func() {
			prev := p.RampForcing(0)
			for t := 1.0; t <= 200; t++ {
				f := p.RampForcing(t)
				Expect(f).To(BeNumerically(">=", prev), "t=%g", t)
				prev = f
			}
		})

		It("holds the plateau after year 200", func() {
			Expect(p.RampForcing(200.001)).To(Equal(p.Fmax))
			Expect(p.RampForcing(500)).To(Equal(p.Fmax))
			Expect(p.RampForcing(1000)).To(Equal(p.Fmax))
		})
	})

	Describe("VolcanicForcing", func() {
		It("is zero outside every eruption window", func() {
			for _, t := range []float64{0, 99.999, 105.001, 300, 599.999, 605.001, 1000} {
				Expect(p.VolcanicForcing(t)).To(Equal(0.0), "t=%g", t)
			}
		})

		It("includes both window boundaries", func() {
			Expect(p.VolcanicForcing(100)).To(Equal(-2.0))
			Expect(p.VolcanicForcing(105)).To(Equal(-2.0))
			Expect(p.VolcanicForcing(600)).To(Equal(-3.0))
			Expect(p.VolcanicForcing(605)).To(Equal(-3.0))
		})

		It("holds the pulse inside each window", func() {
			Expect(p.VolcanicForcing(102.5)).To(Equal(-2.0))
			Expect(p.VolcanicForcing(603)).To(Equal(-3.0))
		})

		It("stacks overlapping windows", func() {
			p.Eruptions = []climate.Eruption{
				{Start: 10, End: 20, Forcing: -2.0},
				{Start: 15, End: 25, Forcing: -3.0},
			}
			Expect(p.VolcanicForcing(12)).To(Equal(-2.0))
			Expect(p.VolcanicForcing(17)).To(Equal(-5.0))
			Expect(p.VolcanicForcing(22)).To(Equal(-3.0))
		})
	})

	Describe("SolarCycleForcing", func() {
		It("has an 11-year period", func() {
			Expect(climate.SolarCycleForcing(0)).To(BeNumerically("~", 0, 1e-12))
			Expect(climate.SolarCycleForcing(11)).To(BeNumerically("~", 0, 1e-12))
			Expect(climate.SolarCycleForcing(2.75)).To(BeNumerically("~", 0.5, 1e-12))
		})

		It("never exceeds its amplitude", func() {
			for t := 0.0; t < 22; t += 0.25 {
				Expect(math.Abs(climate.SolarCycleForcing(t))).To(BeNumerically("<=", 0.5))
			}
		})
	})

	Describe("DeterministicForcing", func() {
		It("sums ramp, volcanic, and solar terms", func() {
			t := 102.0
			want := p.RampForcing(t) + p.VolcanicForcing(t) + climate.SolarCycleForcing(t)
			Expect(p.DeterministicForcing(t)).To(Equal(want))
		})
	})
})
