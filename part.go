package reassemble

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPartSet reports a part set that cannot back a session: a missing,
// nil or repeated handle. It is detected once at startup.
var ErrInvalidPartSet = errors.New("invalid part set")

// ReferencePartNames lists the parts of the reference rescue robot in order.
var ReferencePartNames = []string{
	"leftArm", "rightArm",
	"armor_part_1", "armor_part_2", "armor_part_3", "armor_part_4", "armor_part_5",
	"head", "legs",
}

// part is one movable sub-object. The current pose lives in the handle.
type part struct {
	handle    Handle
	original  Vec3
	exploded  Vec3
	assembled bool
}

// PartRegistry owns the fixed, ordered set of parts for a session. The index
// of a part is its identity.
type PartRegistry struct {
	parts []part
}

// BuildPartSet resolves names through provider, in order. Every missing name
// is reported in a single error wrapping ErrInvalidPartSet.
func BuildPartSet(provider SceneObjectProvider, names []string) ([]Handle, error) {
	handles := make([]Handle, len(names))
	var missing []string
	for i, name := range names {
		h, ok := provider.Lookup(name)
		if !ok || h == nil {
			missing = append(missing, name)
			continue
		}
		handles[i] = h
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing parts %s", ErrInvalidPartSet, strings.Join(missing, ", "))
	}
	return handles, nil
}

// NewPartRegistry captures each handle's current local position as its
// original pose and computes the exploded pose from offsets. All parts start
// unassembled.
func NewPartRegistry(handles []Handle, offsets *OffsetTable) (*PartRegistry, error) {
	if len(handles) == 0 {
		return nil, fmt.Errorf("%w: no parts", ErrInvalidPartSet)
	}
	if offsets == nil {
		offsets = DefaultOffsetTable()
	}
	r := &PartRegistry{parts: make([]part, len(handles))}
	for i, h := range handles {
		if h == nil {
			return nil, fmt.Errorf("%w: part %d has no handle", ErrInvalidPartSet, i)
		}
		for j := 0; j < i; j++ {
			if handles[j] == h {
				return nil, fmt.Errorf("%w: part %d (%s) repeats part %d", ErrInvalidPartSet, i, h.Name(), j)
			}
		}
		orig := h.LocalPosition()
		r.parts[i] = part{
			handle:   h,
			original: orig,
			exploded: orig.Add(offsets.Offset(h.Name(), i)),
		}
	}
	return r, nil
}

// Len returns N, the fixed number of parts.
func (r *PartRegistry) Len() int { return len(r.parts) }

// Handle returns the handle of part i.
func (r *PartRegistry) Handle(i int) Handle { return r.parts[i].handle }

// Name returns the name of part i.
func (r *PartRegistry) Name(i int) string { return r.parts[i].handle.Name() }

// Current returns the live local position of part i.
func (r *PartRegistry) Current(i int) Vec3 { return r.parts[i].handle.LocalPosition() }

// SetCurrent sets the local position of part i.
func (r *PartRegistry) SetCurrent(i int, p Vec3) { r.parts[i].handle.SetLocalPosition(p) }

// Original returns the pose captured at initialization.
func (r *PartRegistry) Original(i int) Vec3 { return r.parts[i].original }

// Exploded returns the scattered pose computed at initialization.
func (r *PartRegistry) Exploded(i int) Vec3 { return r.parts[i].exploded }

// Assembled reports whether part i was released within snap distance.
func (r *PartRegistry) Assembled(i int) bool { return r.parts[i].assembled }

// SetAssembled sets the assembled flag of part i.
func (r *PartRegistry) SetAssembled(i int, v bool) { r.parts[i].assembled = v }

// AssembledCount counts the parts currently flagged assembled.
func (r *PartRegistry) AssembledCount() int {
	n := 0
	for i := range r.parts {
		if r.parts[i].assembled {
			n++
		}
	}
	return n
}

// IndexOf returns the index of h, or NotFound if h is not a member.
func (r *PartRegistry) IndexOf(h Handle) int {
	if h == nil {
		return NotFound
	}
	for i := range r.parts {
		if r.parts[i].handle == h {
			return i
		}
	}
	return NotFound
}
