package sortable

import "github.com/amp-labs/seqkit/compare"

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// HumanString orders strings with embedded numbers by value ("v2" < "v10").
type HumanString string

var _ Sortable[HumanString] = (*HumanString)(nil)

func (s HumanString) Equals(other HumanString) bool {
	return string(s) == string(other)
}

func (s HumanString) LessThan(other HumanString) bool {
	return compare.HumanString(string(s), string(other)) < 0
}
