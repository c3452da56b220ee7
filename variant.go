package unveil

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Field is a bitmask naming the properties a VisualState sets.
type Field uint8

const (
	FieldOpacity Field = 1 << iota // VisualState.Opacity is set
	FieldOffsetY                   // VisualState.OffsetY is set
)

// VisualState is a snapshot of the visual properties a reveal interpolates
// between. Properties not named in Fields are left untouched on the node.
type VisualState struct {
	Opacity float64
	OffsetY float64
	Fields  Field
}

// Fade returns a VisualState that sets only opacity.
func Fade(opacity float64) VisualState {
	return VisualState{Opacity: opacity, Fields: FieldOpacity}
}

// FadeOffset returns a VisualState that sets opacity and vertical offset.
func FadeOffset(opacity, offsetY float64) VisualState {
	return VisualState{Opacity: opacity, OffsetY: offsetY, Fields: FieldOpacity | FieldOffsetY}
}

// Has reports whether f is set on the state.
func (v VisualState) Has(f Field) bool {
	return v.Fields&f != 0
}

// apply writes the state's properties to n.
func (v VisualState) apply(n *Node) {
	if v.Has(FieldOpacity) {
		n.Alpha = v.Opacity
	}
	if v.Has(FieldOffsetY) {
		n.OffsetY = v.OffsetY
	}
	n.transformDirty = true
}

// Transition parameterizes the interpolation between two VisualStates.
// Durations and delays are in seconds.
type Transition struct {
	Duration float64
	Delay    float64
	Ease     ease.TweenFunc
}

// StaggerPlan delays each child's transition start by Index × Increment
// seconds, counted in document order from the container's transition start.
type StaggerPlan struct {
	Increment float64
}

// Delay returns the start offset of the child at index i.
func (p StaggerPlan) Delay(i int) float64 {
	return float64(i) * p.Increment
}

// Variant is a named pair of VisualStates plus the transition used to move
// from Hidden to Visible. A non-nil Stagger makes it a container variant.
type Variant struct {
	Name       string
	Hidden     VisualState
	Visible    VisualState
	Transition Transition
	Stagger    *StaggerPlan
}

// Staggers reports whether v sequences its children.
func (v Variant) Staggers() bool {
	return v.Stagger != nil
}

// clone returns a deep copy so the caller cannot reach shared stagger plans.
func (v Variant) clone() Variant {
	if v.Stagger != nil {
		p := *v.Stagger
		v.Stagger = &p
	}
	return v
}

// Resolve returns the VisualState v prescribes for state s.
func Resolve(v Variant, s RevealState) VisualState {
	if s == RevealVisible {
		return v.Visible
	}
	return v.Hidden
}

// Variant names in the default set.
const (
	VariantFadeInUp         = "fadeInUp"
	VariantFadeIn           = "fadeIn"
	VariantStaggerContainer = "staggerContainer"
	VariantFadeInUpSlow     = "fadeInUpSlow"
	VariantHeroTitle        = "heroTitle"
	VariantHeroSubtitle     = "heroSubtitle"
)

// defaultTransition is used by the default variants unless they say otherwise.
var defaultTransition = Transition{Duration: 0.6, Ease: ease.OutCubic}

// DefaultStaggerIncrement is the child delay step of staggerContainer.
const DefaultStaggerIncrement = 0.2

// VariantSet is an immutable table of variants keyed by name. Lookups return
// copies, so the table can be shared by every consumer without locking.
type VariantSet struct {
	byName map[string]Variant
}

// NewVariantSet validates the variants and builds a set. Names must be unique
// and non-empty, opacities within [0, 1], and durations, delays, and stagger
// increments non-negative.
func NewVariantSet(variants ...Variant) (*VariantSet, error) {
	set := &VariantSet{byName: make(map[string]Variant, len(variants))}
	for _, v := range variants {
		if err := validateVariant(v); err != nil {
			return nil, err
		}
		if _, dup := set.byName[v.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidVariant, v.Name)
		}
		set.byName[v.Name] = v.clone()
	}
	return set, nil
}

func validateVariant(v Variant) error {
	if v.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidVariant)
	}
	for _, s := range [2]VisualState{v.Hidden, v.Visible} {
		if s.Has(FieldOpacity) && (s.Opacity < 0 || s.Opacity > 1) {
			return fmt.Errorf("%w: %q opacity %v outside [0, 1]", ErrInvalidVariant, v.Name, s.Opacity)
		}
	}
	if v.Transition.Duration < 0 || v.Transition.Delay < 0 {
		return fmt.Errorf("%w: %q has negative timing", ErrInvalidVariant, v.Name)
	}
	if v.Stagger != nil && v.Stagger.Increment < 0 {
		return fmt.Errorf("%w: %q stagger increment %v is negative", ErrInvalidVariant, v.Name, v.Stagger.Increment)
	}
	return nil
}

// Get returns a copy of the named variant.
func (s *VariantSet) Get(name string) (Variant, error) {
	v, ok := s.byName[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v.clone(), nil
}

// MustGet is like Get but panics on unknown names. Intended for the built-in
// names of DefaultVariants.
func (s *VariantSet) MustGet(name string) Variant {
	v, err := s.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Names returns the variant names in sorted order.
func (s *VariantSet) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultVariants is built once at package init and never mutated.
var defaultVariants = mustVariantSet(
	Variant{
		Name:       VariantFadeInUp,
		Hidden:     FadeOffset(0, 60),
		Visible:    FadeOffset(1, 0),
		Transition: defaultTransition,
	},
	Variant{
		Name:       VariantFadeIn,
		Hidden:     Fade(0),
		Visible:    Fade(1),
		Transition: defaultTransition,
	},
	Variant{
		Name:       VariantStaggerContainer,
		Hidden:     Fade(0),
		Visible:    Fade(1),
		Transition: defaultTransition,
		Stagger:    &StaggerPlan{Increment: DefaultStaggerIncrement},
	},
	Variant{
		Name:       VariantFadeInUpSlow,
		Hidden:     FadeOffset(0, 60),
		Visible:    FadeOffset(1, 0),
		Transition: Transition{Duration: 0.9, Ease: ease.OutQuad},
	},
	Variant{
		Name:       VariantHeroTitle,
		Hidden:     FadeOffset(0, 50),
		Visible:    FadeOffset(1, 0),
		Transition: Transition{Duration: 1, Delay: 0.5, Ease: ease.OutCubic},
	},
	Variant{
		Name:       VariantHeroSubtitle,
		Hidden:     Fade(0),
		Visible:    Fade(1),
		Transition: Transition{Duration: 1, Delay: 1, Ease: ease.OutCubic},
	},
)

func mustVariantSet(variants ...Variant) *VariantSet {
	set, err := NewVariantSet(variants...)
	if err != nil {
		panic(err)
	}
	return set
}

// DefaultVariants returns the shared built-in variant set.
func DefaultVariants() *VariantSet {
	return defaultVariants
}
