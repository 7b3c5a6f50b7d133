package control_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

func pressed(a ...control.Action) control.Input { return control.Input{Pressed: a} }
func held(a ...control.Action) control.Input    { return control.Input{Held: a} }

var _ = Describe("Controller", func() {
	var c *control.Controller

	BeforeEach(func() {
		c = control.New(control.DefaultSettings())
	})

	It("starts at the default view", func() {
		Expect(c.View()).To(Equal(viewport.Default()))
		Expect(c.View().Mode).To(Equal(palette.ModeGradient))
	})

	Describe("mode toggles", func() {
		It("turns grayscale on and off", func() {
			c.Step(pressed(control.ToggleGrayscale))
			Expect(c.View().Mode).To(Equal(palette.ModeGrayscale))

			c.Step(pressed(control.ToggleGrayscale))
			Expect(c.View().Mode).To(Equal(palette.ModeGradient))
		})

		It("turns hue on and off", func() {
			c.Step(pressed(control.ToggleHue))
			Expect(c.View().Mode).To(Equal(palette.ModeHue))

			c.Step(pressed(control.ToggleHue))
			Expect(c.View().Mode).To(Equal(palette.ModeGradient))
		})

		It("lets the most recent toggle win", func() {
			c.Step(pressed(control.ToggleHue))
			c.Step(pressed(control.ToggleGrayscale))
			Expect(c.View().Mode).To(Equal(palette.ModeGrayscale))
		})

		It("forces grayscale off when hue is enabled", func() {
			c.Step(pressed(control.ToggleGrayscale))
			c.Step(pressed(control.ToggleHue))
			Expect(c.View().Mode).To(Equal(palette.ModeHue))
		})

		It("applies several presses in one frame in order", func() {
			c.Step(pressed(control.ToggleHue, control.ToggleGrayscale))
			Expect(c.View().Mode).To(Equal(palette.ModeGrayscale))
		})

		It("ignores toggles delivered as held keys", func() {
			c.Step(held(control.ToggleGrayscale, control.ToggleHue))
			Expect(c.View().Mode).To(Equal(palette.ModeGradient))
		})
	})

	Describe("continuous controls", func() {
		It("pans by 0.15 times the zoom", func() {
			c.Step(held(control.PanRight))
			Expect(c.View().XOffset).To(BeNumerically("~", 0.15, 1e-12))

			c.Step(held(control.PanUp))
			Expect(c.View().YOffset).To(BeNumerically("~", -0.15, 1e-12))

			c.Step(held(control.ZoomIn))
			c.Step(held(control.PanLeft, control.PanDown))
			Expect(c.View().XOffset).To(BeNumerically("~", 0.15-0.225, 1e-12))
			Expect(c.View().YOffset).To(BeNumerically("~", -0.15+0.225, 1e-12))
		})

		It("compounds zoom in over held frames", func() {
			for i := 0; i < 3; i++ {
				c.Step(held(control.ZoomIn))
			}
			Expect(c.View().Zoom).To(BeNumerically("~", 3.375, 1e-12))
		})

		It("multiplies zoom by 0.9 for zoom out", func() {
			c.Step(held(control.ZoomOut))
			Expect(c.View().Zoom).To(BeNumerically("~", 0.9, 1e-12))
		})

		It("ignores pan and zoom delivered as presses", func() {
			c.Step(pressed(control.ZoomIn, control.PanLeft))
			Expect(c.View()).To(Equal(viewport.Default()))
		})

		It("never lets zoom reach zero", func() {
			for i := 0; i < 100000; i++ {
				c.Step(held(control.ZoomOut))
			}
			Expect(c.View().Zoom).To(BeNumerically(">", 0))
			Expect(c.View().Zoom).To(Equal(control.MinZoom))
		})

		It("keeps zoom finite", func() {
			for i := 0; i < 10000; i++ {
				c.Step(held(control.ZoomIn))
			}
			Expect(c.View().Zoom).To(Equal(control.MaxZoom))
		})
	})

	Describe("settings", func() {
		It("ignores non-positive zoom factors", func() {
			c = control.New(control.Settings{PanStep: 0.1, ZoomIn: -2, ZoomOut: 0})
			c.Step(held(control.ZoomIn, control.ZoomOut))
			Expect(c.View().Zoom).To(Equal(1.0))
		})
	})

	Describe("reset", func() {
		It("restores the starting view", func() {
			start := viewport.State{XOffset: -0.7, YOffset: 0.1, Zoom: 0.01, Mode: palette.ModeHue}
			c = control.NewWithView(control.DefaultSettings(), start)

			c.Step(control.Input{Pressed: []control.Action{control.ToggleGrayscale}, Held: []control.Action{control.ZoomIn, control.PanUp}})
			Expect(c.View()).NotTo(Equal(start))
			Expect(c.Frames()).To(Equal(1))

			c.Reset()
			Expect(c.View()).To(Equal(start))
			Expect(c.Frames()).To(BeZero())
		})

		It("clamps a non-positive starting zoom", func() {
			c = control.NewWithView(control.DefaultSettings(), viewport.State{Zoom: 0})
			Expect(c.View().Zoom).To(Equal(1.0))
		})
	})
})

var _ = DescribeTable("ParseAction",
	func(name string, want control.Action) {
		got, err := control.ParseAction(name)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
		Expect(got.String()).To(Equal(name))
	},
	Entry("grayscale", "grayscale", control.ToggleGrayscale),
	Entry("hue", "hue", control.ToggleHue),
	Entry("up", "up", control.PanUp),
	Entry("zoom in", "zoom_in", control.ZoomIn),
	Entry("zoom out", "zoom_out", control.ZoomOut),
)

var _ = It("rejects unknown actions", func() {
	_, err := control.ParseAction("teleport")
	Expect(err).To(HaveOccurred())
	Expect(control.ToggleHue.IsToggle()).To(BeTrue())
	Expect(control.PanUp.IsToggle()).To(BeFalse())
	Expect(control.Actions()).To(HaveLen(8))
})
