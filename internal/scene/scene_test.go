package scene_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/scene3d/internal/plot"
	"github.com/san-kum/scene3d/internal/scene"
	"github.com/san-kum/scene3d/internal/shape"
)

var _ = Describe("Scene", func() {
	var (
		sc *scene.Scene
		ax *plot.Axes
	)

	BeforeEach(func() {
		sc = scene.Default()
		ax = plot.NewAxes()
	})

	Describe("Render", func() {
		It("resets the axes to the fixed frame", func() {
			sc.Render(ax, 30, 3)

			for _, l := range ax.Limits() {
				Expect(l).To(Equal([2]float64{-10, 10}))
			}
			Expect(ax.Labels()).To(Equal([3]string{"X", "Y", "Z"}))
			elev, azim := ax.View()
			Expect(elev).To(Equal(30.0))
			Expect(azim).To(Equal(30.0))
		})

		It("submits one artist per polygon object and two for the sphere", func() {
			sc.Render(ax, 30, 3)
			Expect(ax.Artists()).To(Equal(4))
		})

		It("clears previous artists on every render", func() {
			sc.Render(ax, 30, 3)
			sc.Render(ax, 60, 2)
			Expect(ax.Artists()).To(Equal(4))
		})

		It("is deterministic for identical parameters", func() {
			sc.Render(ax, 45, 2)
			first := ax.Project(160, 96)
			sc.Render(ax, 45, 2)
			Expect(ax.Project(160, 96)).To(Equal(first))
		})

		It("only changes with scale through the prism", func() {
			a, b := plot.NewAxes(), plot.NewAxes()
			scene.New(shape.NewCuboid(shape.Vec3{2, 2, 2}, shape.Vec3{2, 2, 2})).Render(a, 30, 0.5)
			scene.New(shape.NewCuboid(shape.Vec3{2, 2, 2}, shape.Vec3{2, 2, 2})).Render(b, 30, 5)
			Expect(a.Project(100, 100)).To(Equal(b.Project(100, 100)))

			scene.New(shape.NewPrism(shape.Vec3{}, 5)).Render(a, 30, 0.5)
			scene.New(shape.NewPrism(shape.Vec3{}, 5)).Render(b, 30, 5)
			Expect(a.Project(100, 100)).NotTo(Equal(b.Project(100, 100)))
		})

		It("is what Redraw does", func() {
			scene.Redraw(sc, ax, 90, 1)
			elev, _ := ax.View()
			Expect(elev).To(Equal(90.0))
			Expect(ax.Artists()).To(Equal(4))
		})
	})

	Describe("MoveObject", func() {
		It("moves the sphere", func() {
			Expect(sc.MoveObject(2, shape.Vec3{1, 1, 1})).To(Succeed())
			s := sc.Objects()[2].(*shape.Sphere)
			Expect(s.Center).To(Equal(shape.Vec3{5, -2, 4}))
		})

		DescribeTable("rejects indexes outside the list",
			func(idx int) {
				err := sc.MoveObject(idx, shape.Vec3{1, 0, 0})
				Expect(errors.Is(err, scene.ErrIndexOutOfRange)).To(BeTrue())
				Expect(sc.Objects()[2].(*shape.Sphere).Center).To(Equal(shape.Vec3{4, -3, 3}))
			},
			Entry("negative", -1),
			Entry("one past the end", 3),
			Entry("far past the end", 100),
		)

		It("rejects objects that cannot move", func() {
			err := sc.MoveObject(0, shape.Vec3{1, 0, 0})
			Expect(err).To(MatchError(scene.ErrNotMovable))
			Expect(sc.Objects()[0].(*shape.Prism).BaseCenter).To(Equal(shape.Vec3{}))
		})
	})
})
