package lottie

import (
	"fmt"
	"sort"
	"strings"
)

type validateOptions struct {
	rejectUnknownFields     bool
	requireSupportedVersion bool
	checkIndexes            bool
}

// ValidateOption configures Composition.Validate.
type ValidateOption func(*validateOptions)

// WithRejectUnknownFields reports keys of the root object and of layers that
// the model does not map. Unknown keys are preserved and allowed by default.
func WithRejectUnknownFields() ValidateOption {
	return func(o *validateOptions) { o.rejectUnknownFields = true }
}

// WithRequireSupportedVersion requires the bodymovin version to be within the
// supported range. By default any well-formed version is allowed.
func WithRequireSupportedVersion() ValidateOption {
	return func(o *validateOptions) { o.requireSupportedVersion = true }
}

// WithCheckIndexes requires every layer's "ind" to equal its position, which
// holds for any composition edited through this package.
func WithCheckIndexes() ValidateOption {
	return func(o *validateOptions) { o.checkIndexes = true }
}

// Validate checks the reference structure of the document: every refId
// resolves, asset ids are unique, layers have a type and parents exist. It
// is not schema validation.
func (c *Composition) Validate(opts ...ValidateOption) error {
	var o validateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var errs []string

	if v := c.Version(); v != "" {
		ok, err := IsSupportedVersion(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("v: %v", err))
		case !ok && o.requireSupportedVersion:
			errs = append(errs, fmt.Sprintf("v: unsupported version %q (supported %s-%s)", v, MinSupportedVersion, MaxTestedVersion))
		}
	} else if o.requireSupportedVersion {
		errs = append(errs, "v: required")
	}

	seen := map[string]int{}
	for i, a := range c.assets {
		id := a.ID()
		if strings.TrimSpace(id) == "" {
			errs = append(errs, fmt.Sprintf("assets[%d].id: required", i))
			continue
		}
		if first, dup := seen[id]; dup {
			errs = append(errs, fmt.Sprintf("assets[%d].id: duplicate id %q (first at assets[%d])", i, id, first))
			continue
		}
		seen[id] = i
	}

	for i, a := range c.assets {
		validateLayerRefs(&errs, fmt.Sprintf("assets[%d].layers", i), a.Layers(), seen)
	}

	top := make([]Object, len(c.layers))
	for i, l := range c.layers {
		top[i] = l.Source()
	}
	validateLayerRefs(&errs, "layers", top, seen)

	if o.checkIndexes {
		for i, l := range c.layers {
			if l.Index() != i {
				errs = append(errs, fmt.Sprintf("layers[%d].ind: is %d, want %d", i, l.Index(), i))
			}
		}
	}

	if o.rejectUnknownFields {
		appendUnknownFieldProblems(&errs, "", c.AdditionalProps())
		for i, l := range c.layers {
			appendUnknownFieldProblems(&errs, fmt.Sprintf("layers[%d]", i), l.AdditionalProps())
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Problems: errs}
}

// validateLayerRefs checks one layer list: types present, refIds resolving
// to assets and parents resolving to a layer of the same list.
func validateLayerRefs(errs *[]string, prefix string, layers []Object, assets map[string]int) {
	inds := map[int]bool{}
	for _, l := range layers {
		if ind, ok := intValue(l[LayerProps.Index.Key]); ok {
			inds[ind] = true
		}
	}
	for i, l := range layers {
		if _, ok := intValue(l[LayerProps.Type.Key]); !ok {
			*errs = append(*errs, fmt.Sprintf("%s[%d].ty: required", prefix, i))
		}
		if ref := stringValue(l[LayerProps.RefID.Key]); ref != "" {
			if _, ok := assets[ref]; !ok {
				*errs = append(*errs, fmt.Sprintf("%s[%d].refId: references unknown asset %q", prefix, i, ref))
			}
		}
		if p, ok := intValue(l[LayerProps.Parent.Key]); ok && !inds[p] {
			*errs = append(*errs, fmt.Sprintf("%s[%d].parent: no layer with ind %d", prefix, i, p))
		}
	}
}

func appendUnknownFieldProblems(errs *[]string, prefix string, unknown Object) {
	if len(unknown) == 0 {
		return
	}
	keys := make([]string, 0, len(unknown))
	for k := range unknown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if prefix == "" {
		*errs = append(*errs, fmt.Sprintf("unknown fields: %s", strings.Join(keys, ", ")))
		return
	}
	*errs = append(*errs, fmt.Sprintf("%s: unknown fields: %s", prefix, strings.Join(keys, ", ")))
}

// ValidationError is a deterministic, multi-problem validation error.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid composition"
	}
	return "invalid composition: " + strings.Join(e.Problems, "; ")
}
