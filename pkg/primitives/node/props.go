package node

import (
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// Inherit fills every unset field of dst from src. Fields dst already sets
// are kept. A non-nil TabIndex counts as set even when it points at zero.
// Data merges key by key: a key present in dst wins, including one mapped to
// the empty string.
func Inherit(dst *Props, src Props) {
	if dst == nil {
		return
	}
	data := maps.Clone(src.Data)
	if len(dst.Data) > 0 && data == nil {
		data = make(map[string]string, len(dst.Data))
	}
	maps.Copy(data, dst.Data)
	dst.Data, src.Data = nil, nil

	if dst.TabIndex != nil {
		src.TabIndex = nil
	}
	if err := mergo.Merge(dst, src, mergo.WithoutDereference); err != nil {
		// Both sides are Props values, mergo only fails on mismatched kinds.
		panic(fmt.Sprintf("node: inherit props: %v", err))
	}
	*dst = dst.Clone()
	dst.Data = data
}

// Clone copies props so the result can be modified without touching p.
func (p Props) Clone() Props {
	p.Data = maps.Clone(p.Data)
	if p.TabIndex != nil {
		index := *p.TabIndex
		p.TabIndex = &index
	}
	return p
}

// WithData returns a copy of p with one data attribute set.
func (p Props) WithData(key, value string) Props {
	p = p.Clone()
	if p.Data == nil {
		p.Data = make(map[string]string, 1)
	}
	p.Data[key] = value
	return p
}

// WithClass returns a copy of p with class appended to ClassName.
func (p Props) WithClass(class string) Props {
	if class == "" || p.HasClass(class) {
		return p
	}
	if p.ClassName == "" {
		p.ClassName = class
	} else {
		p.ClassName += " " + class
	}
	return p
}

// TabIndex returns a pointer suitable for Props.TabIndex.
func TabIndex(i int) *int {
	return &i
}
