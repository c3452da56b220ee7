package unveil

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultVariantNames(t *testing.T) {
	want := []string{
		VariantFadeIn, VariantFadeInUp, VariantFadeInUpSlow,
		VariantHeroSubtitle, VariantHeroTitle, VariantStaggerContainer,
	}
	if got := DefaultVariants().Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestDefaultVariantValues(t *testing.T) {
	set := DefaultVariants()

	up := set.MustGet(VariantFadeInUp)
	if up.Hidden != FadeOffset(0, 60) || up.Visible != FadeOffset(1, 0) {
		t.Errorf("fadeInUp = %+v -> %+v", up.Hidden, up.Visible)
	}
	if up.Transition.Duration != 0.6 || up.Staggers() {
		t.Errorf("fadeInUp transition = %+v, staggers = %v", up.Transition, up.Staggers())
	}

	in := set.MustGet(VariantFadeIn)
	if in.Hidden != Fade(0) || in.Visible != Fade(1) {
		t.Errorf("fadeIn = %+v -> %+v", in.Hidden, in.Visible)
	}
	if in.Visible.Has(FieldOffsetY) {
		t.Error("fadeIn must not set an offset")
	}

	sc := set.MustGet(VariantStaggerContainer)
	if !sc.Staggers() || sc.Stagger.Increment != 0.2 {
		t.Errorf("staggerContainer stagger = %+v", sc.Stagger)
	}
	if sc.Stagger.Delay(2) != 0.4 {
		t.Errorf("Delay(2) = %v, want 0.4", sc.Stagger.Delay(2))
	}
}

func TestVariantSetGetReturnsCopy(t *testing.T) {
	set := DefaultVariants()
	v := set.MustGet(VariantStaggerContainer)
	v.Stagger.Increment = 5
	v.Visible.Opacity = 0.1

	again := set.MustGet(VariantStaggerContainer)
	if again.Stagger.Increment != DefaultStaggerIncrement || again.Visible.Opacity != 1 {
		t.Errorf("mutating a returned variant leaked into the set: %+v", again)
	}
}

func TestVariantSetUnknown(t *testing.T) {
	_, err := DefaultVariants().Get("spin")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("err = %v, want ErrUnknownVariant", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet should panic on unknown names")
		}
	}()
	DefaultVariants().MustGet("spin")
}

func TestNewVariantSetValidation(t *testing.T) {
	ok := Variant{Name: "ok", Hidden: Fade(0), Visible: Fade(1)}
	tests := []struct {
		name     string
		variants []Variant
	}{
		{"empty name", []Variant{{Hidden: Fade(0), Visible: Fade(1)}}},
		{"opacity above one", []Variant{{Name: "x", Hidden: Fade(0), Visible: Fade(1.5)}}},
		{"negative opacity", []Variant{{Name: "x", Hidden: Fade(-0.1), Visible: Fade(1)}}},
		{"negative duration", []Variant{{Name: "x", Transition: Transition{Duration: -1}}}},
		{"negative delay", []Variant{{Name: "x", Transition: Transition{Delay: -1}}}},
		{"negative increment", []Variant{{Name: "x", Stagger: &StaggerPlan{Increment: -0.2}}}},
		{"duplicate", []Variant{ok, ok}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewVariantSet(tt.variants...); !errors.Is(err, ErrInvalidVariant) {
				t.Errorf("err = %v, want ErrInvalidVariant", err)
			}
		})
	}

	set, err := NewVariantSet(ok)
	if err != nil {
		t.Fatalf("valid set: %v", err)
	}
	if got := set.Names(); len(got) != 1 || got[0] != "ok" {
		t.Errorf("Names = %v", got)
	}
}

func TestResolve(t *testing.T) {
	v := DefaultVariants().MustGet(VariantFadeInUp)
	if Resolve(v, RevealHidden) != v.Hidden {
		t.Error("Resolve(hidden) should return the hidden state")
	}
	if Resolve(v, RevealVisible) != v.Visible {
		t.Error("Resolve(visible) should return the visible state")
	}
}

func TestRevealStateString(t *testing.T) {
	if RevealHidden.String() != "hidden" || RevealVisible.String() != "visible" {
		t.Errorf("String = %q, %q", RevealHidden.String(), RevealVisible.String())
	}
}
