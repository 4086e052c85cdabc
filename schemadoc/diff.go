package schemadoc

import (
	"fmt"
	"io"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/friendsofgo/errors"
)

type DifferenceKind int

const (
	OnlyLeft DifferenceKind = iota
	OnlyRight
	TypeChanged
)

// Difference is a property present in only one of two listings, or declared with another type
type Difference struct {
	Kind      DifferenceKind
	Name      string
	LeftType  string
	RightType string
}

func (d Difference) String() string {
	switch d.Kind {
	case OnlyLeft:
		return "- " + Entry{Name: d.Name, Type: d.LeftType}.String()
	case OnlyRight:
		return "+ " + Entry{Name: d.Name, Type: d.RightType}.String()
	default:
		return fmt.Sprintf("~ %q: type - %s -> %s", d.Name, d.LeftType, d.RightType)
	}
}

// Diff compares two listings.
// Differences follow the declaration order of left, followed by right-only entries in the order of right.
func Diff(left, right *Listing) []Difference {
	leftEntries := left.comparable()
	rightEntries := right.comparable()

	rightTypes := make(map[string]string, len(rightEntries))
	for _, entry := range rightEntries {
		rightTypes[entry.Name] = entry.Type
	}
	leftNames := make(map[string]struct{}, len(leftEntries))

	var diffs []Difference
	for _, entry := range leftEntries {
		leftNames[entry.Name] = struct{}{}
		rightType, ok := rightTypes[entry.Name]
		switch {
		case !ok:
			diffs = append(diffs, Difference{Kind: OnlyLeft, Name: entry.Name, LeftType: entry.Type})
		case rightType != entry.Type:
			diffs = append(diffs, Difference{Kind: TypeChanged, Name: entry.Name, LeftType: entry.Type, RightType: rightType})
		}
	}

	for _, entry := range rightEntries {
		if _, ok := leftNames[entry.Name]; !ok {
			diffs = append(diffs, Difference{Kind: OnlyRight, Name: entry.Name, RightType: entry.Type})
		}
	}

	return diffs
}

// WriteDiff prints the differences followed by a blank line
func WriteDiff(w io.Writer, diffs []Difference) error {
	if len(diffs) == 0 {
		if _, err := fmt.Fprintln(w, "no differences"); err != nil {
			return err
		}
	}
	for _, diff := range diffs {
		if _, err := fmt.Fprintln(w, diff); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// MergePatch returns the RFC 7386 merge patch that turns left into right
func MergePatch(left, right *Document) ([]byte, error) {
	patch, err := jsonpatch.CreateMergePatch(left.Raw, right.Raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create merge patch")
	}
	return patch, nil
}
