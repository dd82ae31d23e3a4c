package climate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/climsim/internal/climate"
)

var _ = Describe("Feedbacks", func() {
	var p climate.Params

	BeforeEach(func() {
		p = climate.DefaultParams()
	})

	Describe("Albedo", func() {
		It("returns the reference value at 288 K", func() {
			Expect(p.Albedo(288)).To(BeNumerically("~", 0.3, 1e-12))
		})

		It("stays inside the clamp band for extreme temperatures", func() {
			for _, ta := range []float64{-1e6, 0, 100, 250, 288, 320, 500, 1e6} {
				a := p.Albedo(ta)
				Expect(a).To(BeNumerically(">=", 0.1), "T_a=%g", ta)
				Expect(a).To(BeNumerically("<=", 0.7), "T_a=%g", ta)
			}
		})

		It("brightens as the planet cools", func() {
			Expect(p.Albedo(278)).To(BeNumerically(">", p.Albedo(288)))
			Expect(p.Albedo(298)).To(BeNumerically("<", p.Albedo(288)))
		})

		It("is constant when the feedback coefficient is zero", func() {
			p.AlbedoFeedback = 0
			Expect(p.Albedo(0)).To(Equal(0.3))
			Expect(p.Albedo(1e6)).To(Equal(0.3))
		})
	})

	Describe("OLRSlope", func() {
		It("equals B0 at the reference temperature", func() {
			Expect(p.OLRSlope(288)).To(Equal(p.B0))
		})

		It("never drops below the runaway floor", func() {
			for _, ta := range []float64{0, 288, 400, 1e6} {
				Expect(p.OLRSlope(ta)).To(BeNumerically(">=", 0.5), "T_a=%g", ta)
			}
		})

		It("weakens with warming", func() {
			Expect(p.OLRSlope(300)).To(BeNumerically("<", p.B0))
		})
	})

	Describe("OLRIntercept", func() {
		It("equals A at the reference temperature", func() {
			Expect(p.OLRIntercept(288)).To(Equal(p.A))
		})

		It("shifts by the cloud coefficient per kelvin", func() {
			Expect(p.OLRIntercept(290) - p.OLRIntercept(288)).To(BeNumerically("~", 2*p.CloudFeedback, 1e-12))
		})
	})

	Describe("ECS", func() {
		It("is Fmax over B0", func() {
			Expect(p.ECS()).To(Equal(1.85))
		})

		It("tracks parameter changes", func() {
			p.Fmax = 7.4
			Expect(p.ECS()).To(Equal(3.7))
		})
	})
})
