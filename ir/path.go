package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is one step of a parsed path expression. Paths start at '$' and
// chain field selections (".name" or ".'quoted name'"), index
// selections ("[3]"), wildcard indices ("[*]"), and subtree recursion
// ("..").
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPath, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			next := &Path{}
			if err := parseFrag(frag[2:], next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// GetPath resolves a single-target path against v and returns a copy of
// the selected value. Wildcard and subtree steps are rejected; use
// ListPath for those. A path that walks off the document returns
// (nil, nil).
func (v *Value) GetPath(path string) (*Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := v
	for p != nil {
		if p.IndexAll {
			return nil, fmt.Errorf("%w: wildcard index in get", ErrPath)
		}
		if p.Subtree {
			return nil, fmt.Errorf("%w: subtree recursion in get", ErrPath)
		}
		if p.Index != nil {
			if res.kind != ArrayKind {
				return nil, fmt.Errorf("%w: expected array, got %s", ErrPath, res.kind)
			}
			index := *p.Index
			if index < 0 || index >= len(res.arrVal) {
				return nil, fmt.Errorf("%w: index %d out of bounds (len %d)", ErrPath, index, len(res.arrVal))
			}
			res = res.arrVal[index]
			p = p.Next
			continue
		}
		if p.Field != nil {
			if res.kind != ObjectKind {
				return nil, fmt.Errorf("%w: expected object, got %s", ErrPath, res.kind)
			}
			i := res.find(*p.Field)
			if i < 0 {
				return nil, nil
			}
			res = res.objVal[i].Value
			p = p.Next
			continue
		}
		if p.Next != nil {
			return nil, fmt.Errorf("%w: step without index or field", ErrPath)
		}
		return res.Clone(), nil
	}
	return res.Clone(), nil
}

// ListPath appends to dst a copy of every value selected by path,
// which may contain wildcard and subtree steps.
func (v *Value) ListPath(dst []*Value, path string) ([]*Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return v.listPath(dst, p)
}

func (v *Value) listPath(dst []*Value, p *Path) ([]*Value, error) {
	if p == nil {
		return append(dst, v.Clone()), nil
	}
	var err error
	if p.Subtree {
		if err := v.Visit(func(node *Value, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst, err = node.listPath(dst, p.Next)
			if err != nil {
				return false, err
			}
			return true, nil
		}); err != nil {
			return nil, err
		}
		return dst, nil
	}
	switch v.kind {
	case ObjectKind:
		if p.IndexAll || p.Index != nil {
			return dst, nil
		}
		if p.Field == nil && p.Next == nil {
			return append(dst, v.Clone()), nil
		}
		field := *p.Field
		for i := range v.objVal {
			if v.objVal[i].Key != field {
				continue
			}
			dst, err = v.objVal[i].Value.listPath(dst, p.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	case ArrayKind:
		if p.Field != nil {
			return dst, nil
		}
		if p.Index == nil && !p.IndexAll && p.Next == nil {
			return append(dst, v.Clone()), nil
		}
		if p.Index != nil {
			idx := *p.Index
			if 0 <= idx && idx < len(v.arrVal) {
				dst, err = v.arrVal[idx].listPath(dst, p.Next)
				if err != nil {
					return nil, err
				}
			}
			return dst, nil
		}
		if !p.IndexAll {
			return dst, nil
		}
		for _, elt := range v.arrVal {
			dst, err = elt.listPath(dst, p.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	default:
		if p.Field != nil || p.Index != nil || p.IndexAll {
			return dst, nil
		}
		if p.Next == nil {
			return append(dst, v.Clone()), nil
		}
		return dst, nil
	}
}
