package jot

import (
	"github.com/signadot/jot-format/jot/debug"
	"github.com/signadot/jot-format/jot/ir"
)

// Match reports whether doc structurally satisfies the pattern match.
// A null pattern matches any value, object patterns require their keys
// to be present and match while ignoring extra document keys, and
// array patterns match element-wise with equal lengths.
func Match(doc, match *ir.Value) (bool, error) {
	if debug.Match() {
		debug.Logf("match kind %s against %s\n", match.Kind(), doc.Kind())
	}
	if doc.Kind() != match.Kind() && match.Kind() != ir.NullKind {
		return false, nil
	}
	switch match.Kind() {
	case ir.ObjectKind:
		return matchObj(doc, match)
	case ir.ArrayKind:
		return matchArray(doc, match)
	case ir.StringKind:
		ds, _ := doc.AsString()
		ms, _ := match.AsString()
		return ds == ms, nil
	case ir.BoolKind:
		db, _ := doc.AsBool()
		mb, _ := match.AsBool()
		return db == mb, nil
	case ir.NullKind:
		return true, nil
	case ir.IntKind:
		di, _ := doc.AsInt()
		mi, _ := match.AsInt()
		return di == mi, nil
	case ir.FloatKind:
		df, _ := doc.AsFloat()
		mf, _ := match.AsFloat()
		return df == mf, nil
	case ir.UndefinedKind:
		return true, nil
	}
	return false, nil
}

func matchObj(doc, match *ir.Value) (bool, error) {
	members, _ := match.AsObject()
	for i := range members {
		dv := doc.Key(members[i].Key)
		if dv.IsUndefined() {
			return false, nil
		}
		subMatch, err := Match(dv, members[i].Value)
		if err != nil {
			return false, err
		}
		if !subMatch {
			return false, nil
		}
	}
	return true, nil
}

func matchArray(doc, match *ir.Value) (bool, error) {
	if doc.Len() != match.Len() {
		return false, nil
	}
	for i := 0; i < doc.Len(); i++ {
		subMatch, err := Match(doc.Index(i), match.Index(i))
		if err != nil {
			return false, err
		}
		if !subMatch {
			return false, nil
		}
	}
	return true, nil
}

// Trim filters doc down to what the pattern match selects: object
// members with no counterpart in the pattern are dropped, array
// elements are matched greedily against pattern elements, and leaves
// are cloned as-is.
func Trim(match, doc *ir.Value) *ir.Value {
	switch match.Kind() {
	case ir.ObjectKind:
		if !doc.IsObject() {
			return doc.Clone()
		}
		res := ir.EmptyObject()
		members, _ := doc.AsObject()
		for i := range members {
			mv := match.Key(members[i].Key)
			if mv.IsUndefined() {
				continue
			}
			res.Set(members[i].Key, Trim(mv, members[i].Value))
		}
		return res
	case ir.ArrayKind:
		if !doc.IsArray() {
			return doc.Clone()
		}
		res := ir.EmptyArray()
		used := make([]bool, doc.Len())
		mElts, _ := match.AsArray()
		dElts, _ := doc.AsArray()
		for _, mElt := range mElts {
			for i, dElt := range dElts {
				if used[i] {
					continue
				}
				matched, err := Match(dElt, mElt)
				if err != nil {
					continue
				}
				if matched {
					res.Append(Trim(mElt, dElt))
					used[i] = true
					break
				}
			}
		}
		return res
	default:
		return doc.Clone()
	}
}
