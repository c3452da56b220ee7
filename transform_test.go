package unveil

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func refresh(root *Node) {
	updateWorldTransform(root, identityTransform, identityTransform, 1, false)
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	assertMatrix(t, "identity", computeLocalTransform(n, true), identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.Y = 20
	assertMatrix(t, "translation", computeLocalTransform(n, true), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScaleWithPivot(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX, n.ScaleY = 2, 3
	n.PivotX, n.PivotY = 5, 10
	n.X, n.Y = 100, 100
	assertMatrix(t, "scale+pivot", computeLocalTransform(n, true), [6]float64{2, 0, 0, 3, 90, 70})
}

func TestLocalTransformOffset(t *testing.T) {
	n := NewContainer("test")
	n.Y = 100
	n.OffsetY = 60
	assertMatrix(t, "with offset", computeLocalTransform(n, true), [6]float64{1, 0, 0, 1, 0, 160})
	assertMatrix(t, "layout", computeLocalTransform(n, false), [6]float64{1, 0, 0, 1, 0, 100})
}

// --- Affine helpers ---

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "a*b", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

func TestInvertAffineRoundtrip(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, -6}
	inv := invertAffine(m)
	assertMatrix(t, "m*inv", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineSingular(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}

func TestWorldAABBScaled(t *testing.T) {
	r := worldAABB([6]float64{2, 0, 0, 2, 10, 10}, 5, 5)
	assertNear(t, "X", r.X, 10)
	assertNear(t, "Y", r.Y, 10)
	assertNear(t, "Width", r.Width, 10)
	assertNear(t, "Height", r.Height, 10)
}

// --- Hierarchy ---

func TestWorldTransformInheritsParent(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	parent.SetPosition(100, 200)
	child := NewContainer("child")
	child.SetPosition(10, 20)
	root.AddChild(parent)
	parent.AddChild(child)

	refresh(root)

	wx, wy := child.LocalToWorld(0, 0)
	assertNear(t, "wx", wx, 110)
	assertNear(t, "wy", wy, 220)
}

func TestWorldAlphaMultiplies(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	parent.SetAlpha(0.5)
	child := NewContainer("child")
	child.SetAlpha(0.5)
	root.AddChild(parent)
	parent.AddChild(child)

	refresh(root)

	assertNear(t, "worldAlpha", child.WorldAlpha(), 0.25)
}

func TestLayoutBoundsIgnoreOffsets(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	parent.SetPosition(0, 500)
	parent.SetOffsetY(60)
	child := NewBox("child", 100, 50, ColorWhite)
	child.SetPosition(0, 10)
	child.SetOffsetY(60)
	root.AddChild(parent)
	parent.AddChild(child)

	refresh(root)

	b := child.LayoutBounds()
	assertNear(t, "layout Y", b.Y, 510)
	assertNear(t, "layout H", b.Height, 50)

	_, wy := child.LocalToWorld(0, 0)
	assertNear(t, "visual Y", wy, 630)
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	root := NewContainer("root")
	n := NewContainer("n")
	n.SetPosition(30, 40)
	n.SetScale(2, 2)
	root.AddChild(n)
	refresh(root)

	wx, wy := n.LocalToWorld(7, 9)
	lx, ly := n.WorldToLocal(wx, wy)
	assertNear(t, "lx", lx, 7)
	assertNear(t, "ly", ly, 9)
}

func TestDirtyFlagClearedAfterUpdate(t *testing.T) {
	root := NewContainer("root")
	n := NewContainer("n")
	root.AddChild(n)
	refresh(root)
	if n.transformDirty {
		t.Error("transformDirty should be cleared after update")
	}
	n.SetOffsetY(3)
	if !n.transformDirty {
		t.Error("SetOffsetY should mark dirty")
	}
}
